package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// StageReport summarises one applied stage of a pipeline run.
type StageReport struct {
	Name       string        `json:"name"`
	Asserted   int           `json:"asserted"`
	Retracted  int           `json:"retracted"`
	Duration   time.Duration `json:"duration_ns"`
	FailureMsg string        `json:"failure,omitempty"`
}

// PipelineRun is the audit record of one evaluation of a session.
type PipelineRun struct {
	Id         uuid.UUID
	SessionId  string
	Status     string
	Error      string
	Stages     []StageReport
	StartedAt  time.Time
	FinishedAt time.Time
}
