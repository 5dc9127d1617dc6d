package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/aretw0/turing/pkg/domain"
)

// Store implements ports.ResultStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.RunRecord
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.RunRecord),
	}
}

// Save persists a copy of the record.
func (s *Store) Save(ctx context.Context, record *domain.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[record.ID] = *record
	return nil
}

// Load returns a copy so callers can't mutate the stored record.
func (s *Store) Load(ctx context.Context, id string) (*domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.data[id]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	return &record, nil
}

// Delete removes the record. Deleting a missing run is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns the stored run IDs, oldest first.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.RunRecord, 0, len(s.data))
	for _, r := range s.data {
		records = append(records, r)
	}
	slices.SortFunc(records, func(a, b domain.RunRecord) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return compareIDs(a.ID, b.ID)
	})

	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids, nil
}

func compareIDs(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
