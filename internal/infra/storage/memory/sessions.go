package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"hotelfront/internal/app/flow"
)

// ErrSessionNotFound is returned when a flow session is missing or expired.
var ErrSessionNotFound = errors.New("memory: session not found")

// SessionStore keeps live flow sessions in memory. Sessions are created fresh
// per journey and discarded on completion, cancellation or TTL expiry; no
// state survives a restart on purpose.
type SessionStore struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]sessionEntry
}

type sessionEntry struct {
	session   *flow.Session
	expiresAt time.Time
}

// NewSessionStore builds an empty store with a sliding TTL per session.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:   ttl,
		items: make(map[string]sessionEntry),
	}
}

// Put registers a session under its own ID.
func (s *SessionStore) Put(sess *flow.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[sess.ID()] = sessionEntry{session: sess, expiresAt: time.Now().Add(s.ttl)}
}

// Get returns a live session and slides its expiry.
func (s *SessionStore) Get(id string) (*flow.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.items[id]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.items, id)
		return nil, ErrSessionNotFound
	}
	entry.expiresAt = time.Now().Add(s.ttl)
	s.items[id] = entry
	return entry.session, nil
}

// Delete discards a session, e.g. when the user cancels the journey.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
}

// Sweep removes expired sessions and reports how many were dropped.
func (s *SessionStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	dropped := 0
	for id, entry := range s.items {
		if now.After(entry.expiresAt) {
			delete(s.items, id)
			dropped++
		}
	}
	return dropped
}

// StartSweeper runs Sweep on an interval until the context is cancelled.
func (s *SessionStore) StartSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Sweep(now)
		}
	}
}
