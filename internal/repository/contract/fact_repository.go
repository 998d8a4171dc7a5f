package contract

import (
	"context"

	"paddy-kbs-be/internal/entity"
	"paddy-kbs-be/internal/repository/specification"
)

type FactRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.Fact, error)
	CreateMany(ctx context.Context, facts []entity.Fact) error
	DeleteWhere(ctx context.Context, specs ...specification.Specification) (int64, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
