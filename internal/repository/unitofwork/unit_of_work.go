package unitofwork

import (
	"context"

	"paddy-kbs-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	FactRepository() contract.FactRepository
	PipelineRunRepository() contract.PipelineRunRepository
}
