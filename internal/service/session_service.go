// FILE: internal/service/session_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"paddy-kbs-be/internal/constant"
	"paddy-kbs-be/internal/dto"
	"paddy-kbs-be/internal/entity"
	"paddy-kbs-be/internal/mapper"
	"paddy-kbs-be/internal/pkg/logger"
	"paddy-kbs-be/internal/repository/contract"
)

type ISessionService interface {
	// Load validates a submission and writes its session node. Nothing else
	// in the store is touched.
	Load(ctx context.Context, req *dto.SubmitInputRequest) (*entity.Session, error)
	// Find rebuilds a stored session. Fails with SessionNotFound.
	Find(ctx context.Context, sessionId string) (*entity.Session, error)
}

type sessionService struct {
	store  contract.FactStore
	mapper *mapper.SessionMapper
	logger logger.ILogger
	newId  func() string
	now    func() time.Time
}

type SessionOption func(*sessionService)

// WithSessionIds replaces the id generator. Tests use it to get stable ids.
func WithSessionIds(next func() string) SessionOption {
	return func(s *sessionService) {
		s.newId = next
	}
}

func NewSessionService(store contract.FactStore, log logger.ILogger, opts ...SessionOption) ISessionService {
	s := &sessionService{
		store:  store,
		mapper: mapper.NewSessionMapper(),
		logger: log,
		newId: func() string {
			return constant.SessionIdPrefix + uuid.NewString()
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *sessionService) Load(ctx context.Context, req *dto.SubmitInputRequest) (*entity.Session, error) {
	diseaseId, ok := constant.Diseases[req.Disease]
	if !ok {
		return nil, entity.NewError(entity.KindUnknownDisease, fmt.Sprintf("unknown disease %q", req.Disease), nil)
	}
	locationId, ok := constant.Locations[req.Location]
	if !ok {
		return nil, entity.NewError(entity.KindUnknownLocation, fmt.Sprintf("unknown location %q", req.Location), nil)
	}

	budget, err := ParseBudget(req.Budget.String())
	if err != nil {
		return nil, err
	}

	session := &entity.Session{
		Id:                 s.newId(),
		DiseaseId:          diseaseId,
		LocationId:         locationId,
		Budget:             budget,
		ControlMethodInput: req.ControlMethod,
		CreatedAt:          s.now(),
	}

	if err := s.store.Update(ctx, entity.Statement{Assert: s.mapper.ToFacts(session)}); err != nil {
		s.logger.Error("SESSION", "Failed to write session", map[string]interface{}{
			"session_id": session.Id,
			"error":      err,
		})
		return nil, fmt.Errorf("session: %w", err)
	}

	s.logger.Info("SESSION", "Session created", map[string]interface{}{
		"session_id": session.Id,
		"disease":    diseaseId,
		"location":   locationId,
		"budget":     budget.String(),
	})
	return session, nil
}

func (s *sessionService) Find(ctx context.Context, sessionId string) (*entity.Session, error) {
	if sessionId == "" {
		return nil, entity.NewError(entity.KindSessionNotFound, "session id is required", nil)
	}
	if !constant.IsSessionId(sessionId) {
		return nil, entity.NewError(entity.KindSessionNotFound, "session not found", nil)
	}

	facts, err := s.store.Query(ctx, entity.Pattern{Scope: sessionId, Subject: sessionId})
	if err != nil {
		return nil, err
	}

	session := s.mapper.ToEntity(sessionId, facts)
	if session == nil {
		return nil, entity.NewError(entity.KindSessionNotFound, fmt.Sprintf("session %s not found", sessionId), nil)
	}
	return session, nil
}

// ParseBudget accepts a non-negative decimal amount.
func ParseBudget(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, entity.NewError(entity.KindInvalidBudget, "budget is required", nil)
	}
	budget, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, entity.NewError(entity.KindInvalidBudget, fmt.Sprintf("budget %q is not a number", raw), err)
	}
	if budget.IsNegative() {
		return decimal.Zero, entity.NewError(entity.KindInvalidBudget, "budget must not be negative", nil)
	}
	return budget, nil
}
