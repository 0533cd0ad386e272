package sessionstore

import (
	"context"
	"maps"
	"sync"
	"time"

	"builder_estimates/internal/domain/session"
	"builder_estimates/internal/usecase/interfaces"
)

// sweepInterval bounds how often Save scans the whole map for expired entries.
const sweepInterval = time.Minute

type memoryEntry struct {
	data      session.Data
	expiresAt time.Time
}

// MemoryStore is a process-local session store for development and tests.
// Expired entries are dropped on Load and by a periodic sweep on Save, so
// abandoned sessions do not accumulate.
type MemoryStore struct {
	mu        sync.Mutex
	entries   map[string]memoryEntry
	now       func() time.Time
	lastSweep time.Time
}

var _ interfaces.ISessionStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[string]memoryEntry{}, now: time.Now}
}

func (s *MemoryStore) Load(_ context.Context, id string) (session.Data, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return session.Data{}, false, nil
	}
	if e.expired(s.now()) {
		delete(s.entries, id)
		return session.Data{}, false, nil
	}
	return cloneData(e.data), true, nil
}

func (s *MemoryStore) Save(_ context.Context, id string, data session.Data, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= sweepInterval {
		s.sweep(now)
	}

	e := memoryEntry{data: cloneData(data)}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}
	s.entries[id] = e
	return nil
}

// sweep removes every expired entry. The caller holds mu.
func (s *MemoryStore) sweep(now time.Time) {
	for id, e := range s.entries {
		if e.expired(now) {
			delete(s.entries, id)
		}
	}
	s.lastSweep = now
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
	return nil
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// cloneData copies the cart map so callers never share it with the store.
func cloneData(d session.Data) session.Data {
	if d.Cart == nil {
		return d
	}
	return session.Data{Cart: maps.Clone(d.Cart)}
}
