package cache

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore keeps entries in-process with go-cache handling expiry and a
// side index mapping tags to live keys.
type MemoryStore struct {
	entries *gocache.Cache

	mu   sync.Mutex
	tags map[string]map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		entries: gocache.New(TTLCatalog, 10*time.Minute),
		tags:    make(map[string]map[string]struct{}),
	}
	// Keep the tag index from accumulating keys go-cache already expired.
	s.entries.OnEvicted(func(key string, _ interface{}) {
		s.mu.Lock()
		for _, keys := range s.tags {
			delete(keys, key)
		}
		s.mu.Unlock()
	})
	return s
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := s.entries.Get(key)
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration, tags ...string) {
	s.entries.Set(key, value, ttl)

	s.mu.Lock()
	for _, tag := range tags {
		keys, ok := s.tags[tag]
		if !ok {
			keys = make(map[string]struct{})
			s.tags[tag] = keys
		}
		keys[key] = struct{}{}
	}
	s.mu.Unlock()
}

func (s *MemoryStore) DeleteByTag(_ context.Context, tag string) {
	s.mu.Lock()
	keys := s.tags[tag]
	delete(s.tags, tag)
	s.mu.Unlock()

	for key := range keys {
		s.entries.Delete(key)
	}
}

func (s *MemoryStore) Flush(_ context.Context) {
	s.entries.Flush()
	s.mu.Lock()
	s.tags = make(map[string]map[string]struct{})
	s.mu.Unlock()
}
