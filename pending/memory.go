package pending

import (
	"context"
	"sync"
	"time"

	"avisame/constants"
	"avisame/types"
)

type memoryEntry struct {
	reminder  types.PendingReminder
	expiresAt time.Time
}

// MemoryStore is an in-process Store with the same TTL semantics as the
// Redis backing. It exists for tests; production always runs on Redis.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry

	// Now is the clock used for expiry checks, overridable in tests.
	Now func() time.Time
}

func NewMemory() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		Now:     time.Now,
	}
}

func (s *MemoryStore) Put(_ context.Context, sender string, p types.PendingReminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sender] = memoryEntry{
		reminder:  p,
		expiresAt: s.Now().Add(constants.PendingReminderTTL),
	}

	return nil
}

func (s *MemoryStore) Get(_ context.Context, sender string) (*types.PendingReminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sender]

	if !ok {
		return nil, nil
	}

	if !s.Now().Before(entry.expiresAt) {
		delete(s.entries, sender)
		return nil, nil
	}

	reminder := entry.reminder

	return &reminder, nil
}

func (s *MemoryStore) Clear(_ context.Context, sender string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sender)

	return nil
}
