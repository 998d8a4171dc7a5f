package specification

import (
	"paddy-kbs-be/internal/entity"

	"gorm.io/gorm"
)

// ByScope filters facts of one graph. The background graph is the empty scope.
type ByScope struct {
	Scope string
}

func (s ByScope) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("scope = ?", s.Scope)
}

type BySubject struct {
	Subject string
}

func (s BySubject) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subject = ?", s.Subject)
}

type ByPredicate struct {
	Predicate string
}

func (s ByPredicate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("predicate = ?", s.Predicate)
}

type ByObject struct {
	Object string
}

func (s ByObject) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("object = ?", s.Object)
}

// TripleOrder sorts by subject, predicate, object.
type TripleOrder struct{}

func (s TripleOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("subject ASC").Order("predicate ASC").Order("object ASC")
}

// FromPattern translates a pattern into filters. Scope is always included.
func FromPattern(p entity.Pattern) []Specification {
	specs := []Specification{ByScope{Scope: p.Scope}}
	if p.Subject != "" {
		specs = append(specs, BySubject{Subject: p.Subject})
	}
	if p.Predicate != "" {
		specs = append(specs, ByPredicate{Predicate: p.Predicate})
	}
	if p.Object != "" {
		specs = append(specs, ByObject{Object: p.Object})
	}
	return specs
}
