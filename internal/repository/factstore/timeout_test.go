package factstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"paddy-kbs-be/internal/entity"
)

type blockingStore struct{}

func (blockingStore) Query(ctx context.Context, _ entity.Pattern) ([]entity.Fact, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingStore) Update(ctx context.Context, _ entity.Statement) error {
	<-ctx.Done()
	return ctx.Err()
}

func (blockingStore) Ping(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestTimeoutStore(t *testing.T) {
	store := WithTimeout(blockingStore{}, 10*time.Millisecond)

	err := store.Update(context.Background(), entity.Statement{})
	assert.ErrorIs(t, err, entity.ErrStoreUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = store.Query(context.Background(), entity.Pattern{})
	assert.ErrorIs(t, err, entity.ErrStoreUnavailable)

	assert.ErrorIs(t, store.Ping(context.Background()), entity.ErrStoreUnavailable)
}

func TestTimeoutStore_PassesThrough(t *testing.T) {
	mem := NewMemoryStore()
	store := WithTimeout(mem, time.Second)

	err := store.Update(context.Background(), entity.Statement{Assert: []entity.Fact{entity.Literal("", "a", "b", "c")}})
	assert.NoError(t, err)

	facts, err := store.Query(context.Background(), entity.Pattern{})
	assert.NoError(t, err)
	assert.Len(t, facts, 1)

	assert.Same(t, mem, WithTimeout(mem, 0))
}
