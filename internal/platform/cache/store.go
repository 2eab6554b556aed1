package cache

import (
	"context"
	"sync"

	"github.com/afthonia/elo-dashboard/internal/platform/resilience"
)

// Store is a fill-once in-memory cache. Entries never expire and are never
// replaced; it exists for data that is immutable once loaded, such as a
// season's rating log.
type Store struct {
	mu      sync.RWMutex
	entries map[string]any
	flight  resilience.SingleFlight
}

func NewStore() *Store {
	return &Store{entries: make(map[string]any)}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()
	return v, ok
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	s.mu.Lock()
	if _, ok := s.entries[key]; !ok {
		s.entries[key] = value
	}
	s.mu.Unlock()
}

// GetOrLoad returns the cached value for key, loading it at most once.
// Concurrent callers for the same missing key share a single load; a
// failed load is not cached, so a later call may retry.
func (s *Store) GetOrLoad(ctx context.Context, key string, load func() (any, error)) (any, error) {
	if v, ok := s.Get(ctx, key); ok {
		return v, nil
	}

	v, err, _ := s.flight.Do(key, func() (any, error) {
		if v, ok := s.Get(ctx, key); ok {
			return v, nil
		}
		v, err := load()
		if err != nil {
			return nil, err
		}
		s.Set(ctx, key, v)
		return v, nil
	})
	return v, err
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
