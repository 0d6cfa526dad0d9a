package inventory

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is a slice-backed Store implementation. It is safe for
// concurrent access and best suited for tests, demos and as the default
// collaborator when no database is configured. Returned slices are copies,
// so callers can't mutate the underlying inventory.
type MemoryStore struct {
	mu       sync.RWMutex
	vehicles []Vehicle
}

// NewMemoryStore constructs a store over the given records.
func NewMemoryStore(vehicles []Vehicle) *MemoryStore {
	s := &MemoryStore{vehicles: make([]Vehicle, len(vehicles))}
	copy(s.vehicles, vehicles)
	return s
}

// Add appends records to the store.
func (s *MemoryStore) Add(vehicles ...Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles = append(s.vehicles, vehicles...)
}

// FetchVehicles returns up to limit matching records ordered by price
// ascending. A cancelled context maps to ErrUnavailable, mirroring how a
// real backend's timeout surfaces to the orchestrator.
func (s *MemoryStore) FetchVehicles(ctx context.Context, f Filter, limit int) ([]Vehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrUnavailable
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []Vehicle
	for _, v := range s.vehicles {
		if f.Matches(v) {
			matched = append(matched, v)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price < matched[j].Price })
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}
