package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"paddy-kbs-be/internal/entity"
)

const snapshotKey = "graph:background"

// SnapshotCache holds the decoded background graph between store reads.
type SnapshotCache struct {
	cache *cache.Cache
}

// NewSnapshotCache keeps a snapshot for ttl. A ttl of zero disables caching.
func NewSnapshotCache(ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		return &SnapshotCache{}
	}
	return &SnapshotCache{cache: cache.New(ttl, 2*ttl)}
}

func (c *SnapshotCache) Save(g *entity.Graph) {
	if c.cache == nil {
		return
	}
	c.cache.Set(snapshotKey, g, cache.DefaultExpiration)
}

func (c *SnapshotCache) Get() (*entity.Graph, bool) {
	if c.cache == nil {
		return nil, false
	}
	if x, found := c.cache.Get(snapshotKey); found {
		return x.(*entity.Graph), true
	}
	return nil, false
}

func (c *SnapshotCache) Invalidate() {
	if c.cache == nil {
		return
	}
	c.cache.Delete(snapshotKey)
}
