package contract

import (
	"context"

	"paddy-kbs-be/internal/entity"
)

// FactStore is the triple store the advisor reads the knowledge base from
// and writes session facts into.
//
// Query returns the facts matching the pattern ordered by subject,
// predicate, object. Update applies the statement's retractions and then
// its assertions as one write; when it returns an error the statement must
// be treated as not applied. Asserting a fact that already exists is a
// no-op.
type FactStore interface {
	Query(ctx context.Context, pattern entity.Pattern) ([]entity.Fact, error)
	Update(ctx context.Context, stmt entity.Statement) error
	Ping(ctx context.Context) error
}
