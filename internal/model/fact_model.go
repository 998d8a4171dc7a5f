package model

import (
	"time"

	"github.com/google/uuid"
)

type Fact struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Scope     string    `gorm:"type:varchar(128);not null;default:'';uniqueIndex:idx_facts_triple,priority:1"`
	Subject   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_facts_triple,priority:2"`
	Predicate string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_facts_triple,priority:3;index"`
	Object    string    `gorm:"type:text;not null;uniqueIndex:idx_facts_triple,priority:4"`
	IsRef     bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Fact) TableName() string {
	return "facts"
}
