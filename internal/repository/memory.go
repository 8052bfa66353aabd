package repository

import (
	"context"
	"sync"

	"github.com/iliyamo/bus-seat-roster/internal/model"
)

// MemoryRosterStore keeps the current roster in process memory.  It is
// used when no database is configured and in tests.
type MemoryRosterStore struct {
	mu      sync.RWMutex
	current *model.Roster
}

func NewMemoryRosterStore() *MemoryRosterStore {
	return &MemoryRosterStore{}
}

func (s *MemoryRosterStore) Replace(_ context.Context, r *model.Roster) error {
	cp := cloneRoster(r)
	s.mu.Lock()
	s.current = cp
	s.mu.Unlock()
	return nil
}

func (s *MemoryRosterStore) Current(_ context.Context) (*model.Roster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, ErrRosterNotFound
	}
	return cloneRoster(s.current), nil
}

func (s *MemoryRosterStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return nil
}

// cloneRoster deep-copies r so callers never share seat pointers with the
// stored roster.
func cloneRoster(r *model.Roster) *model.Roster {
	cp := *r
	cp.Passengers = make([]model.Passenger, len(r.Passengers))
	for i, p := range r.Passengers {
		if p.SeatNumber != nil {
			p.SeatNumber = model.SeatPtr(*p.SeatNumber)
		}
		cp.Passengers[i] = p
	}
	return &cp
}
