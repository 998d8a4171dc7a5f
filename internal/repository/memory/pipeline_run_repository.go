package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"paddy-kbs-be/internal/entity"
	"paddy-kbs-be/internal/repository/contract"
)

// PipelineRunRepository keeps run records per session for a day. It serves
// the memory store driver where no database is configured.
type PipelineRunRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewPipelineRunRepository() *PipelineRunRepository {
	return &PipelineRunRepository{
		cache: cache.New(24*time.Hour, time.Hour),
	}
}

var _ contract.PipelineRunRepository = (*PipelineRunRepository)(nil)

func (r *PipelineRunRepository) Create(_ context.Context, run *entity.PipelineRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if run.Id == uuid.Nil {
		run.Id = uuid.New()
	}
	var runs []*entity.PipelineRun
	if x, found := r.cache.Get(run.SessionId); found {
		runs = x.([]*entity.PipelineRun)
	}
	stored := *run
	runs = append(runs, &stored)
	r.cache.Set(run.SessionId, runs, cache.DefaultExpiration)
	return nil
}

func (r *PipelineRunRepository) FindAllBySession(_ context.Context, sessionId string) ([]*entity.PipelineRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	x, found := r.cache.Get(sessionId)
	if !found {
		return []*entity.PipelineRun{}, nil
	}
	stored := x.([]*entity.PipelineRun)
	runs := make([]*entity.PipelineRun, 0, len(stored))
	for _, run := range stored {
		c := *run
		runs = append(runs, &c)
	}
	sort.SliceStable(runs, func(i, j int) bool { return runs[i].FinishedAt.Before(runs[j].FinishedAt) })
	return runs, nil
}

func (r *PipelineRunRepository) FindLatestBySession(ctx context.Context, sessionId string) (*entity.PipelineRun, error) {
	runs, err := r.FindAllBySession(ctx, sessionId)
	if err != nil || len(runs) == 0 {
		return nil, err
	}
	return runs[len(runs)-1], nil
}
