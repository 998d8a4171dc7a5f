// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"paddy-kbs-be/internal/dto"
	"paddy-kbs-be/internal/entity"
	"paddy-kbs-be/internal/pkg/logger"
	"paddy-kbs-be/internal/repository/contract"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService stores the audit record of every pipeline run published on
// the in-process bus and mirrors it to the pipeline log.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	runs      contract.PipelineRunRepository
	audit     logger.ILogger
	retry     middleware.Retry
}

// DefaultStoreRetry bounds how long one audit record is retried before it
// is dropped.
var DefaultStoreRetry = middleware.Retry{
	MaxRetries:      3,
	InitialInterval: 200 * time.Millisecond,
	MaxInterval:     2 * time.Second,
	Multiplier:      2,
}

type ConsumerOption func(*consumerService)

func WithStoreRetry(retry middleware.Retry) ConsumerOption {
	return func(cs *consumerService) {
		cs.retry = retry
	}
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	runs contract.PipelineRunRepository,
	audit logger.ILogger,
	opts ...ConsumerOption,
) IConsumerService {
	cs := &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		runs:      runs,
		audit:     audit,
		retry:     DefaultStoreRetry,
	}
	for _, opt := range opts {
		opt(cs)
	}
	return cs
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PipelineRunMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.audit.Error("AUDIT", "Failed to unmarshal pipeline run message", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err,
		})
		msg.Ack() // a malformed message never becomes valid
		return
	}

	run := toPipelineRun(payload)
	attempts := 0
	store := cs.retry.Middleware(func(*message.Message) ([]*message.Message, error) {
		attempts++
		return nil, cs.runs.Create(ctx, run)
	})
	// a record that still fails is dropped; redelivering it would spin while
	// the database is down
	if _, err := store(msg); err != nil {
		cs.audit.Error("AUDIT", "Failed to store pipeline run, dropping it", map[string]interface{}{
			"run_id":     run.Id,
			"session_id": run.SessionId,
			"attempts":   attempts,
			"error":      err,
		})
		msg.Ack()
		return
	}

	details := map[string]interface{}{
		"run_id":     run.Id,
		"session_id": run.SessionId,
		"status":     run.Status,
		"stages":     len(run.Stages),
		"elapsed_ms": run.FinishedAt.Sub(run.StartedAt).Milliseconds(),
	}
	if run.Status == entity.RunStatusFailed {
		details["failure"] = run.Error
		cs.audit.Warn("AUDIT", "Pipeline run failed", details)
	} else {
		cs.audit.Info("AUDIT", "Pipeline run completed", details)
	}
	msg.Ack()
}
