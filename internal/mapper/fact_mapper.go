package mapper

import (
	"paddy-kbs-be/internal/entity"
	"paddy-kbs-be/internal/model"
)

type FactMapper struct{}

func NewFactMapper() *FactMapper {
	return &FactMapper{}
}

func (m *FactMapper) ToEntity(f *model.Fact) entity.Fact {
	return entity.Fact{
		Scope:     f.Scope,
		Subject:   f.Subject,
		Predicate: f.Predicate,
		Object:    f.Object,
		Ref:       f.IsRef,
	}
}

func (m *FactMapper) ToModel(f entity.Fact) *model.Fact {
	return &model.Fact{
		Scope:     f.Scope,
		Subject:   f.Subject,
		Predicate: f.Predicate,
		Object:    f.Object,
		IsRef:     f.Ref,
	}
}

func (m *FactMapper) ToEntities(models []*model.Fact) []entity.Fact {
	facts := make([]entity.Fact, 0, len(models))
	for _, f := range models {
		facts = append(facts, m.ToEntity(f))
	}
	return facts
}

func (m *FactMapper) ToModels(facts []entity.Fact) []*model.Fact {
	models := make([]*model.Fact, 0, len(facts))
	for _, f := range facts {
		models = append(models, m.ToModel(f))
	}
	return models
}
