package kvstore

import (
	"context"
	"sync"

	"github.com/selfjournal/journal-api/pkg/register"
)

func init() {
	register.RegisterFunc[*Registry](RegisterKey{}, func(r *Registry) {
		r.Register(DRIVER_MEMORY, func(cfg Config) (Store, error) {
			return NewMemoryStore(), nil
		})
	})
}

// MemoryStore is the in-process slot used by tests and throwaway setups.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}
