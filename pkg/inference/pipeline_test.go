package inference

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paddy-kbs-be/internal/entity"
)

func TestReset_Idempotent(t *testing.T) {
	session := testSessionFor("Rice_Blast", "Kandy", "100", "spray")
	view := NewView(testSession,
		entity.Literal(testSession, testSession, entity.PredSessionBudget, "100"),
		entity.Literal(testSession, "T_Tricyclazole", entity.PredPriority, entity.PriorityHigh),
		entity.Literal(testSession, "Rice_Blast", entity.PredHasPrimarySource, "Airborne Spores"),
		entity.Literal(testSession, "Sym_LeafLesion", entity.PredIsSpecific, entity.True),
	)

	view.Apply(Reset(Input{Session: session, Derived: view}))
	once := view.Facts()
	view.Apply(Reset(Input{Session: session, Derived: view}))

	assert.Equal(t, once, view.Facts())
	assert.Equal(t, []entity.Fact{entity.Literal(testSession, testSession, entity.PredSessionBudget, "100")}, once)
}

func TestReset_RetractsEveryDerivedPredicate(t *testing.T) {
	stmt := Reset(Input{Session: testSessionFor("Rice_Blast", "Kandy", "100", "")})

	var preds []string
	for _, p := range stmt.Retract {
		assert.Equal(t, testSession, p.Scope)
		assert.Empty(t, p.Subject)
		assert.Empty(t, p.Object)
		preds = append(preds, p.Predicate)
	}
	assert.ElementsMatch(t, entity.DerivedPredicates, preds)
	assert.Empty(t, stmt.Assert)
}

func TestPipeline_Run(t *testing.T) {
	applier := newRecordingApplier()
	session := testSessionFor("Rice_Blast", "Kandy", "100", "Spray")

	res, err := NewPipeline().Run(context.Background(), session, testGraph(), applier)
	require.NoError(t, err)

	view := applier.view
	assert.True(t, view.Has("T_Tricyclazole", entity.PredPriority, entity.PriorityHigh))
	assert.True(t, view.Has("T_Isoprothiolane", entity.PredPriority, entity.PriorityLow))
	assert.True(t, view.Has("T_Burning", entity.PredIsAffordable, entity.False))
	assert.True(t, view.Has("T_Tricyclazole", entity.PredIsSuitable, entity.True))
	assert.True(t, view.Has("T_Isoprothiolane", entity.PredIsSuitable, entity.True))
	assert.False(t, view.Has("T_Burning", entity.PredIsSuitable, entity.True))
	assert.Equal(t, []string{"Airborne Spores"}, view.Values("Rice_Blast", entity.PredHasPrimarySource))
	assert.True(t, view.Has("Sym_LeafLesion", entity.PredIsSpecific, entity.True))
	assert.False(t, view.Has("Sym_NodeRot", entity.PredIsSpecific, entity.True))

	assert.Equal(t, view.Facts(), res.Derived.Facts())

	var names []string
	for _, s := range res.Stages {
		assert.Empty(t, s.FailureMsg)
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		StageReset, StageBudgetTier, StageAffordability, StageControlMethod,
		StageSuitability, StagePrimarySource, StageSymptomSpecificity,
	}, names)
}

func TestPipeline_RerunDoesNotAccumulate(t *testing.T) {
	applier := newRecordingApplier()
	graph := testGraph()

	_, err := NewPipeline().Run(context.Background(), testSessionFor("Rice_Blast", "Kandy", "100", "Spray"), graph, applier)
	require.NoError(t, err)
	first := applier.view.Facts()

	_, err = NewPipeline().Run(context.Background(), testSessionFor("Rice_Blast", "Kandy", "100", "Spray"), graph, applier)
	require.NoError(t, err)

	assert.Equal(t, first, applier.view.Facts())
}

func TestPipeline_StopsOnFirstFailure(t *testing.T) {
	applier := newRecordingApplier()
	applier.failAt = 3 // affordability
	applier.err = entity.NewError(entity.KindStoreRejected, "status 400", nil)

	res, err := NewPipeline().Run(context.Background(), testSessionFor("Rice_Blast", "Kandy", "100", "Spray"), testGraph(), applier)

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrStoreRejected)
	assert.Contains(t, err.Error(), StageAffordability)
	assert.Equal(t, 3, applier.calls, "no retry and no later stage")

	// budget-tier writes stay in place
	assert.True(t, applier.view.Has("T_Tricyclazole", entity.PredPriority, entity.PriorityHigh))
	assert.Empty(t, applier.view.Subjects(entity.PredIsAffordable, entity.True))

	require.Len(t, res.Stages, 3)
	assert.NotEmpty(t, res.Stages[2].FailureMsg)
}

func TestPipeline_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	applier := newRecordingApplier()
	_, err := NewPipeline().Run(ctx, testSessionFor("Rice_Blast", "Kandy", "100", ""), testGraph(), applier)

	assert.ErrorIs(t, err, entity.ErrStoreUnavailable)
	assert.Zero(t, applier.calls)
}

func TestPipeline_SkipsEmptyStatements(t *testing.T) {
	applier := newRecordingApplier()
	p := NewPipeline(WithStages(
		Stage{Name: "noop", Eval: func(Input) entity.Statement { return entity.Statement{} }},
		Stage{Name: StageReset, Eval: Reset},
	))

	res, err := p.Run(context.Background(), testSessionFor("Rice_Blast", "Kandy", "100", ""), testGraph(), applier)
	require.NoError(t, err)
	assert.Equal(t, 1, applier.calls)
	assert.Len(t, res.Stages, 2)
}
