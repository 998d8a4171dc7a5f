package factstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paddy-kbs-be/internal/entity"
)

func TestMemoryStore_QueryOrdersAndFilters(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Update(ctx, entity.Statement{Assert: []entity.Fact{
		entity.Link("", "Rice_Blast", entity.PredControlMethods, "CM_Spray"),
		entity.Literal("", "Rice_Blast", entity.PredName, "Rice Blast"),
		entity.Link("", "Kandy", entity.PredType, entity.ClassLocation),
		entity.Literal("UserInput_1", "T1", entity.PredPriority, entity.PriorityHigh),
	}}))

	all, err := s.Query(ctx, entity.Pattern{Scope: entity.BackgroundScope})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Kandy", all[0].Subject)
	assert.Equal(t, entity.PredControlMethods, all[1].Predicate)
	assert.True(t, all[1].Ref)
	assert.False(t, all[2].Ref)

	byPred, err := s.Query(ctx, entity.Pattern{Scope: entity.BackgroundScope, Predicate: entity.PredName})
	require.NoError(t, err)
	assert.Equal(t, []entity.Fact{entity.Literal("", "Rice_Blast", entity.PredName, "Rice Blast")}, byPred)

	session, err := s.Query(ctx, entity.Pattern{Scope: "UserInput_1"})
	require.NoError(t, err)
	assert.Len(t, session, 1)
}

func TestMemoryStore_SetSemantics(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	f := entity.Literal("UserInput_1", "Rice_Blast", entity.PredHasPrimarySource, "Airborne Spores")

	require.NoError(t, s.Update(ctx, entity.Statement{Assert: []entity.Fact{f, f}}))
	require.NoError(t, s.Update(ctx, entity.Statement{Assert: []entity.Fact{f}}))
	require.NoError(t, s.Update(ctx, entity.Statement{Assert: []entity.Fact{
		entity.Literal("UserInput_1", "Rice_Blast", entity.PredHasPrimarySource, "Soil and Water"),
	}}))

	facts, err := s.Query(ctx, entity.Pattern{Scope: "UserInput_1", Predicate: entity.PredHasPrimarySource})
	require.NoError(t, err)
	require.Len(t, facts, 2)
	assert.Equal(t, "Airborne Spores", facts[0].Object)
	assert.Equal(t, "Soil and Water", facts[1].Object)
	assert.Equal(t, 2, s.Len())
}

func TestMemoryStore_RetractBeforeAssert(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	scope := "UserInput_1"

	require.NoError(t, s.Update(ctx, entity.Statement{Assert: []entity.Fact{
		entity.Literal(scope, "T1", entity.PredPriority, entity.PriorityHigh),
		entity.Literal(scope, "T2", entity.PredPriority, entity.PriorityLow),
		entity.Literal(scope, scope, entity.PredSessionBudget, "100"),
		entity.Literal("UserInput_2", "T1", entity.PredPriority, entity.PriorityMedium),
	}}))

	require.NoError(t, s.Update(ctx, entity.Statement{
		Retract: []entity.Pattern{{Scope: scope, Predicate: entity.PredPriority}},
		Assert:  []entity.Fact{entity.Literal(scope, "T1", entity.PredPriority, entity.PriorityMedium)},
	}))

	facts, err := s.Query(ctx, entity.Pattern{Scope: scope})
	require.NoError(t, err)
	assert.Equal(t, []entity.Fact{
		entity.Literal(scope, "T1", entity.PredPriority, entity.PriorityMedium),
		entity.Literal(scope, scope, entity.PredSessionBudget, "100"),
	}, facts)

	other, err := s.Query(ctx, entity.Pattern{Scope: "UserInput_2"})
	require.NoError(t, err)
	assert.Len(t, other, 1, "retraction is scope bound")
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewMemoryStore()
	err := s.Update(ctx, entity.Statement{Assert: []entity.Fact{entity.Literal("", "a", "b", "c")}})
	assert.ErrorIs(t, err, entity.ErrStoreUnavailable)
	assert.Zero(t, s.Len())

	_, err = s.Query(ctx, entity.Pattern{})
	assert.ErrorIs(t, err, entity.ErrStoreUnavailable)
}

func TestMemoryStore_ConcurrentScopes(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for _, scope := range []string{"UserInput_a", "UserInput_b", "UserInput_c", "UserInput_d"} {
		wg.Add(1)
		go func(scope string) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				_ = s.Update(ctx, entity.Statement{
					Retract: []entity.Pattern{{Scope: scope, Predicate: entity.PredPriority}},
					Assert:  []entity.Fact{entity.Literal(scope, "T1", entity.PredPriority, entity.PriorityHigh)},
				})
			}
		}(scope)
	}
	wg.Wait()

	assert.Equal(t, 4, s.Len())
}
