package memory

import (
	"sync"

	"ecosim/internal/app/ports"
)

type Store struct {
	mu    sync.RWMutex
	turns map[string][]ports.TurnRecord
}

func NewStore() *Store {
	return &Store{
		turns: make(map[string][]ports.TurnRecord),
	}
}

// SeedTurns replaces the log of one world, oldest record first.
func (s *Store) SeedTurns(worldID string, records []ports.TurnRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns[worldID] = append([]ports.TurnRecord(nil), records...)
}
