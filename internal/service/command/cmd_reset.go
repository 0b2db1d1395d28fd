package command

import (
	"context"
)

// SessionResetter drops one session's conversation state.
type SessionResetter interface {
	Reset(ctx context.Context, sessionID string) string
}

type ResetCommand struct {
	sessions  SessionResetter
	formatter *ResponseFormatter
}

func NewResetCommand(sessions SessionResetter) *ResetCommand {
	return &ResetCommand{
		sessions:  sessions,
		formatter: NewResponseFormatter(),
	}
}

func (c *ResetCommand) Name() string {
	return "reset"
}

func (c *ResetCommand) Description() string {
	return "Clear this session's chat memory"
}

func (c *ResetCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	return c.formatter.Success(c.sessions.Reset(ctx, sessionID)), nil
}
