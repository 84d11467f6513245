package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store. Entries expire ttl after their last
// Put; a zero ttl keeps them forever.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *MemoryStore) Put(_ context.Context, s *Session) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	prepare(s, now)

	entry := memoryEntry{session: *s}
	if m.ttl > 0 {
		entry.expiresAt = now.Add(m.ttl)
	}
	m.entries[s.ID] = entry
	m.sweep(now)
	return s.ID, nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.lookup(id)
	if !ok {
		return nil, ErrNotFound
	}
	s := entry.session
	return &s, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.lookup(id); !ok {
		return ErrNotFound
	}
	delete(m.entries, id)
	return nil
}

// Len returns the number of live sessions.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweep(m.now())
	return len(m.entries)
}

// lookup must be called with mu held.
func (m *MemoryStore) lookup(id string) (memoryEntry, bool) {
	entry, ok := m.entries[id]
	if !ok {
		return memoryEntry{}, false
	}
	if m.expired(entry, m.now()) {
		delete(m.entries, id)
		return memoryEntry{}, false
	}
	return entry, true
}

// sweep drops expired entries. Must be called with mu held.
func (m *MemoryStore) sweep(now time.Time) {
	for id, entry := range m.entries {
		if m.expired(entry, now) {
			delete(m.entries, id)
		}
	}
}

func (m *MemoryStore) expired(entry memoryEntry, now time.Time) bool {
	return !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt)
}
