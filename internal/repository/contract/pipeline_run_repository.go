package contract

import (
	"context"

	"paddy-kbs-be/internal/entity"
)

type PipelineRunRepository interface {
	Create(ctx context.Context, run *entity.PipelineRun) error
	// FindLatestBySession returns nil, nil when the session has no run.
	FindLatestBySession(ctx context.Context, sessionId string) (*entity.PipelineRun, error)
	FindAllBySession(ctx context.Context, sessionId string) ([]*entity.PipelineRun, error)
}
