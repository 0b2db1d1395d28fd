package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Jayani-123/tasbot/internal/core"
)

// Store keeps per-session conversation history in process memory. Sessions
// are created lazily on first append and live until Clear. All access goes
// through the store; callers never hold references to the backing slices.
type Store struct {
	mu       sync.RWMutex
	sessions map[string][]core.Message
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string][]core.Message),
	}
}

// NewSessionID mints an opaque session key for transports that do not
// bring their own.
func NewSessionID() string {
	return uuid.NewString()
}

func (s *Store) Append(ctx context.Context, sessionID string, msg core.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], msg)
	return nil
}

// Messages returns a copy of the session's last limit turns in insertion
// order. limit <= 0 returns the full history. An unknown session is an
// empty history, not an error.
func (s *Store) Messages(ctx context.Context, sessionID string, limit int) ([]core.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := s.sessions[sessionID]
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}

	out := make([]core.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (s *Store) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Len reports the number of live sessions, for metrics.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
