package memory

import (
	"time"

	"focuscam-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// RowCache keeps each user's joined session rows for a short staleness
// window so repeated page loads don't refetch both collections.
type RowCache struct {
	cache *cache.Cache
}

func NewRowCache() *RowCache {
	// 60s staleness window, purge sweep every 5 minutes
	c := cache.New(60*time.Second, 5*time.Minute)
	return &RowCache{
		cache: c,
	}
}

func (r *RowCache) Save(userId uuid.UUID, rows []*entity.SessionRow) {
	r.cache.Set(userId.String(), rows, cache.DefaultExpiration)
}

func (r *RowCache) Get(userId uuid.UUID) ([]*entity.SessionRow, bool) {
	if x, found := r.cache.Get(userId.String()); found {
		return x.([]*entity.SessionRow), true
	}
	return nil, false
}

func (r *RowCache) Invalidate(userId uuid.UUID) {
	r.cache.Delete(userId.String())
}
