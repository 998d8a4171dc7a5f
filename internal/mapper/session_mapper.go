package mapper

import (
	"github.com/shopspring/decimal"

	"paddy-kbs-be/internal/entity"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

// ToFacts renders the session node into its own scope.
func (m *SessionMapper) ToFacts(s *entity.Session) []entity.Fact {
	return []entity.Fact{
		entity.Link(s.Id, s.Id, entity.PredType, entity.ClassSession),
		entity.Link(s.Id, s.Id, entity.PredSessionDisease, s.DiseaseId),
		entity.Link(s.Id, s.Id, entity.PredSessionLocation, s.LocationId),
		entity.Literal(s.Id, s.Id, entity.PredSessionBudget, s.Budget.String()),
		entity.Literal(s.Id, s.Id, entity.PredSessionControlMethod, s.ControlMethodInput),
	}
}

// ToEntity rebuilds a session from the facts of its scope. It returns nil
// when the scope holds no session node.
func (m *SessionMapper) ToEntity(id string, facts []entity.Fact) *entity.Session {
	s := &entity.Session{Id: id}
	found := false
	for _, f := range facts {
		if f.Scope != id || f.Subject != id {
			continue
		}
		switch f.Predicate {
		case entity.PredType:
			found = found || f.Object == entity.ClassSession
		case entity.PredSessionDisease:
			s.DiseaseId = f.Object
			found = true
		case entity.PredSessionLocation:
			s.LocationId = f.Object
		case entity.PredSessionBudget:
			if b, err := decimal.NewFromString(f.Object); err == nil {
				s.Budget = b
			}
		case entity.PredSessionControlMethod:
			s.ControlMethodInput = f.Object
		}
	}
	if !found {
		return nil
	}
	return s
}
