package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PipelineRun struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId  string         `gorm:"type:varchar(128);not null;index"`
	Status     string         `gorm:"type:varchar(20);not null"`
	Error      *string        `gorm:"type:text"`
	Stages     datatypes.JSON `gorm:"type:jsonb"`
	StartedAt  time.Time      `gorm:"not null"`
	FinishedAt time.Time      `gorm:"not null;index"`
}

func (PipelineRun) TableName() string {
	return "pipeline_runs"
}
