package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paddy-kbs-be/internal/constant"
	"paddy-kbs-be/internal/dto"
	"paddy-kbs-be/internal/entity"
	"paddy-kbs-be/pkg/inference"
)

func blastRequest(budget dto.Amount, method string) *dto.SubmitInputRequest {
	return &dto.SubmitInputRequest{Disease: "Rice Blast", Budget: budget, Location: "Kandy", ControlMethod: method}
}

func derivedView(t *testing.T, store interface {
	Query(context.Context, entity.Pattern) ([]entity.Fact, error)
}, sessionId string) *inference.View {
	t.Helper()
	facts, err := store.Query(context.Background(), entity.Pattern{Scope: sessionId})
	require.NoError(t, err)
	return inference.NewView(sessionId, facts...)
}

func TestAdvisoryService_Submit(t *testing.T) {
	store := newSeededStore(t)
	h := newHarness(store)

	res, err := h.advisory.Submit(context.Background(), blastRequest("100", "chemical"))
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, firstSession, res.Instance)

	view := derivedView(t, store, res.Instance)
	assert.True(t, view.Has("T_Tricyclazole", entity.PredPriority, entity.PriorityHigh))
	assert.True(t, view.Has("T_Isoprothiolane", entity.PredPriority, entity.PriorityLow))
	assert.Equal(t, []string{"T_Isoprothiolane", "T_Sanitation", "T_Tricyclazole", "T_Unrated"},
		view.Subjects(entity.PredIsSuitable, entity.True))
	assert.Equal(t, []string{"Airborne Spores"}, view.Values("Rice_Blast", entity.PredHasPrimarySource))
	assert.Equal(t, []string{"Sym_LeafLesion"}, view.Subjects(entity.PredIsSpecific, entity.True))

	require.Len(t, h.publisher.payloads, 1)
	var msg dto.PipelineRunMessage
	require.NoError(t, json.Unmarshal(h.publisher.payloads[0], &msg))
	assert.Equal(t, res.Instance, msg.SessionId)
	assert.Equal(t, entity.RunStatusCompleted, msg.Status)
	assert.Len(t, msg.Stages, len(inference.DefaultStages()))

	require.Len(t, h.events.events, 1)
	assert.Equal(t, constant.SubjectSessionEvaluated, h.events.events[0].EventType())
	assert.Equal(t, res.Instance, h.events.events[0].Payload()["session_id"])
}

func TestAdvisoryService_Submit_SessionsAreIsolated(t *testing.T) {
	store := newSeededStore(t)
	h := newHarness(store)
	ctx := context.Background()

	rich, err := h.advisory.Submit(ctx, blastRequest("1000", "chemical"))
	require.NoError(t, err)
	poor, err := h.advisory.Submit(ctx, blastRequest("50", "biological"))
	require.NoError(t, err)
	require.NotEqual(t, rich.Instance, poor.Instance)

	richView := derivedView(t, store, rich.Instance)
	poorView := derivedView(t, store, poor.Instance)

	assert.Len(t, richView.Subjects(entity.PredIsSuitable, entity.True), 4)
	assert.Empty(t, poorView.Subjects(entity.PredIsSuitable, entity.True))
	assert.True(t, poorView.Has("T_Tricyclazole", entity.PredIsAffordable, entity.False))
	assert.True(t, richView.Has("T_Tricyclazole", entity.PredPriority, entity.PriorityHigh))
}

func TestAdvisoryService_Submit_StageFailure(t *testing.T) {
	// 1 session, 2 reset, 3 budget tier
	store := &failingStore{
		FactStore: newSeededStore(t),
		failAt:    3,
		err:       entity.NewError(entity.KindStoreRejected, "status 400", nil),
	}
	h := newHarness(store)

	_, err := h.advisory.Submit(context.Background(), blastRequest("100", "chemical"))
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrStoreRejected)
	assert.Contains(t, err.Error(), inference.StageBudgetTier)
	assert.Equal(t, 3, store.calls, "no retry after a failed stage")

	session, err := h.sessions.Find(context.Background(), firstSession)
	require.NoError(t, err, "session write is not rolled back")
	assert.Equal(t, "Rice_Blast", session.DiseaseId)

	require.Len(t, h.publisher.payloads, 1)
	var msg dto.PipelineRunMessage
	require.NoError(t, json.Unmarshal(h.publisher.payloads[0], &msg))
	assert.Equal(t, entity.RunStatusFailed, msg.Status)
	assert.Len(t, msg.Stages, 2)
	assert.Empty(t, h.events.events)
}

func TestAdvisoryService_Submit_RejectedInputWritesNothing(t *testing.T) {
	store := newSeededStore(t)
	h := newHarness(store)
	before := store.Len()

	_, err := h.advisory.Submit(context.Background(), &dto.SubmitInputRequest{Disease: "Rice Blast", Budget: "100", Location: "Narnia"})

	assert.ErrorIs(t, err, entity.ErrUnknownLocation)
	assert.Equal(t, before, store.Len())
	assert.Empty(t, h.publisher.payloads)
}

func TestAdvisoryService_Reevaluate(t *testing.T) {
	store := newSeededStore(t)
	h := newHarness(store)
	ctx := context.Background()

	res, err := h.advisory.Submit(ctx, blastRequest("100", "Chemical"))
	require.NoError(t, err)
	first := derivedView(t, store, res.Instance).Facts()

	run, err := h.advisory.Reevaluate(ctx, res.Instance)
	require.NoError(t, err)
	assert.Equal(t, entity.RunStatusCompleted, run.Status)
	assert.Equal(t, first, derivedView(t, store, res.Instance).Facts())

	_, err = h.advisory.Reevaluate(ctx, "UserInput_nope")
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestEventService_NilPublisher(t *testing.T) {
	svc := NewEventService(nil, nil)
	assert.NotPanics(t, func() {
		svc.SessionEvaluated(context.Background(), &entity.Session{Id: "UserInput_x"}, &entity.PipelineRun{})
	})
}
