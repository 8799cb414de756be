package counts

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Store caches per-category published-book counts. Counts are derived
// data; a stale read is acceptable, a wrong invalidation is not, so
// writers blow away the whole cache instead of patching entries.
type Store interface {
	Get(categorySlug string) (int64, bool)
	Set(categorySlug string, count int64)
	InvalidateAll()
}

type memoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore builds an in-process store. Entries expire on their
// own after ttl, catalog writes invalidate eagerly.
func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (s *memoryStore) Get(categorySlug string) (int64, bool) {
	v, ok := s.cache.Get(categorySlug)
	if !ok {
		return 0, false
	}
	count, ok := v.(int64)
	return count, ok
}

func (s *memoryStore) Set(categorySlug string, count int64) {
	s.cache.SetDefault(categorySlug, count)
}

func (s *memoryStore) InvalidateAll() {
	s.cache.Flush()
}
