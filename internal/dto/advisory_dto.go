// FILE: internal/dto/advisory_dto.go
package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Amount accepts a JSON number or a numeric string and keeps its text so
// the budget can be parsed without going through float64.
type Amount string

var ErrAmountType = errors.New("budget must be a number or a numeric string")

func (a *Amount) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "null":
		*a = ""
		return nil
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Amount(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return ErrAmountType
	}
	*a = Amount(n.String())
	return nil
}

func (a Amount) String() string {
	return string(a)
}

type SubmitInputRequest struct {
	Disease       string `json:"disease" validate:"required"`
	Budget        Amount `json:"budget" validate:"required"`
	Location      string `json:"location" validate:"required"`
	ControlMethod string `json:"controlMethod"`
}

type SubmitInputResponse struct {
	Success  bool   `json:"success"`
	Instance string `json:"instance"`
}

type StageReportResponse struct {
	Name       string `json:"name"`
	Asserted   int    `json:"asserted"`
	Retracted  int    `json:"retracted"`
	DurationMs int64  `json:"duration_ms"`
	Failure    string `json:"failure,omitempty"`
}

type PipelineRunResponse struct {
	Id         uuid.UUID             `json:"id"`
	SessionId  string                `json:"session_id"`
	Status     string                `json:"status"`
	Error      string                `json:"error,omitempty"`
	Stages     []StageReportResponse `json:"stages"`
	StartedAt  time.Time             `json:"started_at"`
	FinishedAt time.Time             `json:"finished_at"`
}

// PipelineRunMessage is the in-process audit message published after every run.
type PipelineRunMessage struct {
	Id         uuid.UUID             `json:"id"`
	SessionId  string                `json:"session_id"`
	Status     string                `json:"status"`
	Error      string                `json:"error,omitempty"`
	Stages     []StageReportResponse `json:"stages"`
	StartedAt  time.Time             `json:"started_at"`
	FinishedAt time.Time             `json:"finished_at"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	FactStore string `json:"fact_store"`
}
