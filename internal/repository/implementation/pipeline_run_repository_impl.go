package implementation

import (
	"context"
	"errors"

	"paddy-kbs-be/internal/entity"
	"paddy-kbs-be/internal/mapper"
	"paddy-kbs-be/internal/model"
	"paddy-kbs-be/internal/repository/contract"
	"paddy-kbs-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PipelineRunRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PipelineRunMapper
}

func NewPipelineRunRepository(db *gorm.DB) contract.PipelineRunRepository {
	return &PipelineRunRepositoryImpl{
		db:     db,
		mapper: mapper.NewPipelineRunMapper(),
	}
}

func (r *PipelineRunRepositoryImpl) Create(ctx context.Context, run *entity.PipelineRun) error {
	m := r.mapper.ToModel(run)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*run = *r.mapper.ToEntity(m)
	return nil
}

func (r *PipelineRunRepositoryImpl) FindLatestBySession(ctx context.Context, sessionId string) (*entity.PipelineRun, error) {
	var m model.PipelineRun
	query := specification.BySessionId{SessionId: sessionId}.Apply(r.db.WithContext(ctx))
	query = specification.OrderBy{Field: "finished_at", Desc: true}.Apply(query)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PipelineRunRepositoryImpl) FindAllBySession(ctx context.Context, sessionId string) ([]*entity.PipelineRun, error) {
	var models []*model.PipelineRun
	query := specification.BySessionId{SessionId: sessionId}.Apply(r.db.WithContext(ctx))
	query = specification.OrderBy{Field: "finished_at", Desc: false}.Apply(query)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
