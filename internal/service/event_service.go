// FILE: internal/service/event_service.go
package service

import (
	"context"
	"time"

	"paddy-kbs-be/internal/constant"
	"paddy-kbs-be/internal/entity"
	"paddy-kbs-be/internal/pkg/logger"
	"paddy-kbs-be/pkg/events"
)

// EventPublisher is satisfied by the NATS publisher.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type IEventService interface {
	SessionEvaluated(ctx context.Context, session *entity.Session, run *entity.PipelineRun)
}

type eventService struct {
	publisher EventPublisher
	logger    logger.ILogger
}

// NewEventService returns a service that drops every event when publisher
// is nil, so the advisor runs without a broker.
func NewEventService(publisher EventPublisher, log logger.ILogger) IEventService {
	return &eventService{publisher: publisher, logger: log}
}

func (s *eventService) SessionEvaluated(ctx context.Context, session *entity.Session, run *entity.PipelineRun) {
	if s.publisher == nil {
		return
	}

	event := events.BaseEvent{
		Type: constant.SubjectSessionEvaluated,
		Data: map[string]interface{}{
			"session_id": session.Id,
			"disease":    session.DiseaseId,
			"location":   session.LocationId,
			"budget":     session.Budget.String(),
			"run_id":     run.Id.String(),
			"status":     run.Status,
		},
		OccurredAt: time.Now(),
	}

	// best effort: the evaluation already succeeded
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("EVENTS", "Failed to publish event", map[string]interface{}{
			"type":       event.Type,
			"session_id": session.Id,
			"error":      err,
		})
	}
}
