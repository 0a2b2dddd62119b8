package config

import (
	"context"
	"sync"
)

// Store is the singleton configuration resource. Load returns the live
// configuration, seeding the default when nothing has been stored yet.
// Replace swaps the whole configuration; last write wins.
type Store interface {
	Load(ctx context.Context) (StepConfig, error)
	Replace(ctx context.Context, cfg StepConfig) (StepConfig, error)
}

// MemoryStore keeps the configuration in process memory. Used by tests and
// when the server runs without a database.
type MemoryStore struct {
	mu  sync.RWMutex
	cfg StepConfig
}

// NewMemoryStore creates a store seeded with the default configuration.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cfg: Default()}
}

func (s *MemoryStore) Load(ctx context.Context) (StepConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg, nil
}

func (s *MemoryStore) Replace(ctx context.Context, cfg StepConfig) (StepConfig, error) {
	normalized := cfg.Normalized()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = normalized
	return normalized, nil
}
