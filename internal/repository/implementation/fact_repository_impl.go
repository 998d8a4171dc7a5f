package implementation

import (
	"context"

	"paddy-kbs-be/internal/entity"
	"paddy-kbs-be/internal/mapper"
	"paddy-kbs-be/internal/model"
	"paddy-kbs-be/internal/repository/contract"
	"paddy-kbs-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FactRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FactMapper
}

func NewFactRepository(db *gorm.DB) contract.FactRepository {
	return &FactRepositoryImpl{
		db:     db,
		mapper: mapper.NewFactMapper(),
	}
}

func (r *FactRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FactRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.Fact, error) {
	var models []*model.Fact
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

// CreateMany inserts facts, skipping the ones already stored.
func (r *FactRepositoryImpl) CreateMany(ctx context.Context, facts []entity.Fact) error {
	if len(facts) == 0 {
		return nil
	}
	models := r.mapper.ToModels(facts)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "scope"}, {Name: "subject"}, {Name: "predicate"}, {Name: "object"}},
			DoNothing: true,
		}).
		CreateInBatches(models, 500).Error
}

func (r *FactRepositoryImpl) DeleteWhere(ctx context.Context, specs ...specification.Specification) (int64, error) {
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	result := query.Delete(&model.Fact{})
	return result.RowsAffected, result.Error
}

func (r *FactRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Fact{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
