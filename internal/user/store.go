package user

import (
	"context"
	"sync"
	"time"
)

// Store persists submitted onboarding records. Records are append-only:
// nothing in the exposed contract updates or deletes them.
type Store interface {
	Create(ctx context.Context, sub Submission) (Record, error)
	List(ctx context.Context) ([]Record, error)
}

type memoryRecord struct {
	Record
	password string
}

// MemoryStore keeps records in process memory with monotonically increasing
// numeric ids. Used by tests and when the server runs without a database.
type MemoryStore struct {
	mu      sync.RWMutex
	nextID  int64
	records []memoryRecord
}

// NewMemoryStore creates an empty in-memory record store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) Create(ctx context.Context, sub Submission) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Record{
		ID:        s.nextID,
		Email:     sub.Email,
		AboutMe:   sub.AboutMe,
		Address:   sub.Address(),
		Birthdate: sub.Birthdate,
		CreatedAt: time.Now().UTC(),
	}
	s.nextID++
	s.records = append(s.records, memoryRecord{Record: rec, password: sub.Password})
	return rec, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.Record)
	}
	return out, nil
}
