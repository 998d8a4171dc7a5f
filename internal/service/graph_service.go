// FILE: internal/service/graph_service.go
package service

import (
	"context"
	"sync"

	"paddy-kbs-be/internal/entity"
	"paddy-kbs-be/internal/mapper"
	"paddy-kbs-be/internal/pkg/logger"
	"paddy-kbs-be/internal/repository/contract"
	"paddy-kbs-be/internal/repository/memory"
)

type IGraphService interface {
	// Snapshot returns the decoded background graph. Callers must treat it
	// as read-only.
	Snapshot(ctx context.Context) (*entity.Graph, error)
	Invalidate()
}

type graphService struct {
	store  contract.FactStore
	cache  *memory.SnapshotCache
	mapper *mapper.GraphMapper
	logger logger.ILogger

	// serialises reloads so a cold cache costs one store query
	mu sync.Mutex
}

func NewGraphService(store contract.FactStore, cache *memory.SnapshotCache, log logger.ILogger) IGraphService {
	return &graphService{
		store:  store,
		cache:  cache,
		mapper: mapper.NewGraphMapper(),
		logger: log,
	}
}

func (s *graphService) Snapshot(ctx context.Context) (*entity.Graph, error) {
	if g, ok := s.cache.Get(); ok {
		return g, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if g, ok := s.cache.Get(); ok {
		return g, nil
	}

	facts, err := s.store.Query(ctx, entity.Pattern{Scope: entity.BackgroundScope})
	if err != nil {
		s.logger.Error("GRAPH", "Failed to read background graph", map[string]interface{}{"error": err})
		return nil, err
	}

	g := s.mapper.ToGraph(facts)
	s.cache.Save(g)

	s.logger.Info("GRAPH", "Background graph loaded", map[string]interface{}{
		"facts":      len(facts),
		"diseases":   len(g.Diseases),
		"treatments": len(g.Treatments),
		"locations":  len(g.Locations),
	})
	return g, nil
}

func (s *graphService) Invalidate() {
	s.cache.Invalidate()
}
