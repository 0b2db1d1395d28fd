package core

import "context"

// History is the per-session conversation memory contract. Implementations
// must isolate sessions by key: a session id only ever sees its own turns.
type History interface {
	Append(ctx context.Context, sessionID string, msg Message) error
	Messages(ctx context.Context, sessionID string, limit int) ([]Message, error)
	Clear(ctx context.Context, sessionID string) error
}
