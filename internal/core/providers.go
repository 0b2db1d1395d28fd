package core

import "context"

type AIProvider interface {
	Chat(ctx context.Context, history []Message, tools []Tool) (Message, error)
	Models(ctx context.Context) ([]Model, error)
}

// ToolProvider exposes the callable capability registry to the agent loop.
type ToolProvider interface {
	GetTools(ctx context.Context) ([]Tool, error)
	CallTool(ctx context.Context, name string, args string) (string, error)
}
