package store

import (
	"sort"
	"sync"

	"encircle/internal/shared"
)

type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[string]*shared.Room
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms: map[string]*shared.Room{},
	}
}

func (m *MemoryStore) GetRoom(code string) (*shared.Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[code]
	return r, ok
}

func (m *MemoryStore) SaveRoom(r *shared.Room) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms[r.Code] = r
}

func (m *MemoryStore) DeleteRoom(code string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[code]; !ok {
		return false
	}
	delete(m.rooms, code)
	return true
}

// ListRooms returns every room ordered by code.
func (m *MemoryStore) ListRooms() []*shared.Room {
	m.mu.RLock()
	out := make([]*shared.Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		out = append(out, r)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(a, b int) bool { return out[a].Code < out[b].Code })
	return out
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}
