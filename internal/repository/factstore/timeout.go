package factstore

import (
	"context"
	"errors"
	"time"

	"paddy-kbs-be/internal/entity"
	"paddy-kbs-be/internal/repository/contract"
)

// TimeoutStore bounds every call of the wrapped store.
type TimeoutStore struct {
	next    contract.FactStore
	timeout time.Duration
}

func WithTimeout(next contract.FactStore, timeout time.Duration) contract.FactStore {
	if timeout <= 0 {
		return next
	}
	return &TimeoutStore{next: next, timeout: timeout}
}

func (s *TimeoutStore) Query(ctx context.Context, p entity.Pattern) ([]entity.Fact, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	facts, err := s.next.Query(ctx, p)
	return facts, s.wrap(ctx, err)
}

func (s *TimeoutStore) Update(ctx context.Context, stmt entity.Statement) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.wrap(ctx, s.next.Update(ctx, stmt))
}

func (s *TimeoutStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.wrap(ctx, s.next.Ping(ctx))
}

func (s *TimeoutStore) wrap(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if entity.KindOf(err) == "" && (errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)) {
		return entity.NewError(entity.KindStoreUnavailable, "store call timed out after "+s.timeout.String(), err)
	}
	return err
}
