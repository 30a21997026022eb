package session

import (
	"context"
	"sync"
	"time"

	"shootbook/models"
)

type memoryEntry struct {
	session   models.BookingSession
	expiresAt time.Time
}

// MemoryDraftStore is an in-process DraftStore for local runs and tests.
// Sessions expire after TTL like their Redis counterparts.
type MemoryDraftStore struct {
	TTL time.Duration
	Now func() time.Time

	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryDraftStore(ttl time.Duration) *MemoryDraftStore {
	return &MemoryDraftStore{TTL: ttl, Now: time.Now, entries: make(map[string]memoryEntry)}
}

func (s *MemoryDraftStore) Save(_ context.Context, sess models.BookingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sess.SessionID] = memoryEntry{session: sess, expiresAt: s.Now().Add(s.TTL)}
	return nil
}

func (s *MemoryDraftStore) Load(_ context.Context, id string) (*models.BookingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.TTL > 0 && !s.Now().Before(e.expiresAt) {
		delete(s.entries, id)
		return nil, ErrSessionNotFound
	}
	sess := e.session
	return &sess, nil
}

func (s *MemoryDraftStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}
