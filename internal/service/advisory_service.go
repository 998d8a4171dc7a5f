// FILE: internal/service/advisory_service.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"paddy-kbs-be/internal/dto"
	"paddy-kbs-be/internal/entity"
	"paddy-kbs-be/internal/pkg/logger"
	"paddy-kbs-be/internal/repository/contract"
	"paddy-kbs-be/pkg/inference"
)

type IAdvisoryService interface {
	// Submit creates a session from the request and evaluates it.
	Submit(ctx context.Context, req *dto.SubmitInputRequest) (*dto.SubmitInputResponse, error)
	// Reevaluate runs the pipeline again for a stored session. Running it
	// any number of times leaves the same derived facts.
	Reevaluate(ctx context.Context, sessionId string) (*dto.PipelineRunResponse, error)
}

type advisoryService struct {
	store     contract.FactStore
	sessions  ISessionService
	graph     IGraphService
	pipeline  *inference.Pipeline
	publisher IPublisherService
	events    IEventService
	logger    logger.ILogger
}

func NewAdvisoryService(
	store contract.FactStore,
	sessions ISessionService,
	graph IGraphService,
	pipeline *inference.Pipeline,
	publisher IPublisherService,
	events IEventService,
	log logger.ILogger,
) IAdvisoryService {
	return &advisoryService{
		store:     store,
		sessions:  sessions,
		graph:     graph,
		pipeline:  pipeline,
		publisher: publisher,
		events:    events,
		logger:    log,
	}
}

func (s *advisoryService) Submit(ctx context.Context, req *dto.SubmitInputRequest) (*dto.SubmitInputResponse, error) {
	g, err := s.graph.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.Load(ctx, req)
	if err != nil {
		return nil, err
	}

	if _, err := s.evaluate(ctx, session, g); err != nil {
		return nil, err
	}

	return &dto.SubmitInputResponse{
		Success:  true,
		Instance: session.Id,
	}, nil
}

func (s *advisoryService) Reevaluate(ctx context.Context, sessionId string) (*dto.PipelineRunResponse, error) {
	session, err := s.sessions.Find(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	g, err := s.graph.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	run, err := s.evaluate(ctx, session, g)
	if err != nil {
		return nil, err
	}
	return toPipelineRunResponse(run), nil
}

func (s *advisoryService) evaluate(ctx context.Context, session *entity.Session, g *entity.Graph) (*entity.PipelineRun, error) {
	ctx, span := otel.Tracer("paddy-kbs-be/advisory").Start(ctx, "pipeline.run")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", session.Id),
		attribute.String("session.disease", session.DiseaseId),
		attribute.String("session.location", session.LocationId),
	)

	started := time.Now()
	res, runErr := s.pipeline.Run(ctx, session, g, s.store)

	run := &entity.PipelineRun{
		Id:         uuid.New(),
		SessionId:  session.Id,
		Status:     entity.RunStatusCompleted,
		StartedAt:  started,
		FinishedAt: time.Now(),
	}
	if res != nil {
		run.Stages = res.Stages
	}
	if runErr != nil {
		run.Status = entity.RunStatusFailed
		run.Error = runErr.Error()
		span.RecordError(runErr)
		span.SetStatus(codes.Error, "pipeline run failed")
		s.logger.Error("ADVISORY", "Pipeline run failed", map[string]interface{}{
			"session_id": session.Id,
			"stages":     len(run.Stages),
			"error":      runErr,
		})
	}

	s.recordRun(ctx, run)

	if runErr != nil {
		return run, runErr
	}

	s.events.SessionEvaluated(ctx, session, run)
	s.logger.Info("ADVISORY", "Session evaluated", map[string]interface{}{
		"session_id": session.Id,
		"derived":    res.Derived.Len(),
		"elapsed_ms": run.FinishedAt.Sub(run.StartedAt).Milliseconds(),
	})
	return run, nil
}

// recordRun hands the audit record to the consumer. A lost audit record
// never fails the request.
func (s *advisoryService) recordRun(ctx context.Context, run *entity.PipelineRun) {
	payload, err := json.Marshal(toPipelineRunMessage(run))
	if err != nil {
		s.logger.Warn("ADVISORY", "Failed to marshal pipeline run", map[string]interface{}{"error": err})
		return
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.logger.Warn("ADVISORY", "Failed to publish pipeline run", map[string]interface{}{
			"run_id": run.Id,
			"error":  err,
		})
	}
}
