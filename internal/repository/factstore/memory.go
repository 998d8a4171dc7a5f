package factstore

import (
	"context"
	"sort"
	"sync"

	"github.com/google/mangle/ast"
	"github.com/google/mangle/factstore"

	"paddy-kbs-be/internal/entity"
	"paddy-kbs-be/internal/repository/contract"
)

const (
	factPredicate = "fact"
	objectRef     = "ref"
	objectLiteral = "lit"
)

var factSym = ast.PredicateSym{Symbol: factPredicate, Arity: 5}

// MemoryStore keeps every fact as a fact(scope, subject, predicate, object,
// kind) atom in a mangle in-memory store.
type MemoryStore struct {
	mu    sync.RWMutex
	store factstore.FactStoreWithRemove
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{store: factstore.NewSimpleInMemoryStore()}
}

var _ contract.FactStore = (*MemoryStore)(nil)

func toAtom(f entity.Fact) ast.Atom {
	kind := objectLiteral
	if f.Ref {
		kind = objectRef
	}
	return ast.NewAtom(factPredicate,
		ast.String(f.Scope),
		ast.String(f.Subject),
		ast.String(f.Predicate),
		ast.String(f.Object),
		ast.String(kind),
	)
}

func fromAtom(a ast.Atom) (entity.Fact, bool) {
	if len(a.Args) != 5 {
		return entity.Fact{}, false
	}
	var vals [5]string
	for i, arg := range a.Args {
		c, ok := arg.(ast.Constant)
		if !ok || c.Type != ast.StringType {
			return entity.Fact{}, false
		}
		vals[i] = c.Symbol
	}
	return entity.Fact{
		Scope:     vals[0],
		Subject:   vals[1],
		Predicate: vals[2],
		Object:    vals[3],
		Ref:       vals[4] == objectRef,
	}, true
}

func (s *MemoryStore) matching(p entity.Pattern) []ast.Atom {
	var atoms []ast.Atom
	_ = s.store.GetFacts(ast.NewQuery(factSym), func(a ast.Atom) error {
		if f, ok := fromAtom(a); ok && p.Matches(f) {
			atoms = append(atoms, a)
		}
		return nil
	})
	return atoms
}

func (s *MemoryStore) Query(ctx context.Context, p entity.Pattern) ([]entity.Fact, error) {
	if err := ctx.Err(); err != nil {
		return nil, entity.NewError(entity.KindStoreUnavailable, "query", err)
	}

	s.mu.RLock()
	atoms := s.matching(p)
	s.mu.RUnlock()

	facts := make([]entity.Fact, 0, len(atoms))
	for _, a := range atoms {
		f, _ := fromAtom(a)
		facts = append(facts, f)
	}
	sort.Slice(facts, func(i, j int) bool { return entity.FactLess(facts[i], facts[j]) })
	return facts, nil
}

// Update holds the write lock for the whole statement so readers never see
// the retractions without the assertions.
func (s *MemoryStore) Update(ctx context.Context, stmt entity.Statement) error {
	if err := ctx.Err(); err != nil {
		return entity.NewError(entity.KindStoreUnavailable, "update", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range stmt.Retract {
		for _, a := range s.matching(p) {
			s.store.Remove(a)
		}
	}
	for _, f := range stmt.Assert {
		// a literal and a link with the same text are one fact
		for _, a := range s.matching(entity.Pattern{Scope: f.Scope, Subject: f.Subject, Predicate: f.Predicate, Object: f.Object}) {
			s.store.Remove(a)
		}
		s.store.Add(toAtom(f))
	}
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Len reports the number of stored facts across every scope.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	_ = s.store.GetFacts(ast.NewQuery(factSym), func(ast.Atom) error {
		n++
		return nil
	})
	return n
}
