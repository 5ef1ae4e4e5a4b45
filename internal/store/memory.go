package store

import (
	"sync"
)

// MemorySlot keeps slot contents in process memory. Nothing survives a
// restart, which makes it the slot of choice for tests and throwaway sessions.
type MemorySlot struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{
		slots: map[string][]byte{},
	}
}

func (s *MemorySlot) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.slots[key]
	if !ok {
		return nil, false, nil
	}
	// callers may hold on to the result; don't hand out our buffer
	return append([]byte(nil), data...), true, nil
}

func (s *MemorySlot) Set(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = append([]byte(nil), data...)
	return nil
}

// Seed stores raw contents under key, bypassing serialization. Useful for
// planting legacy or corrupt mirrors.
func (s *MemorySlot) Seed(key string, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = []byte(raw)
}
