// Package agent drives the tool-calling reasoning loop. A Loop is bound to
// a single session's history; the orchestrator caches one per live session
// and never shares it across sessions.
package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jayani-123/tasbot/internal/config"
	"github.com/Jayani-123/tasbot/internal/core"
	"github.com/Jayani-123/tasbot/pkg/log"
)

var (
	// ErrTurnLimit means the model was still requesting tools when the
	// turn ceiling was reached.
	ErrTurnLimit = errors.New("turn limit reached")
	// ErrDeadline means the loop ran out of wall-clock time.
	ErrDeadline = errors.New("deadline exceeded")
)

// Step records one tool invocation. Observation holds the full tool output,
// before the truncation applied to the conversation copy.
type Step struct {
	Action      string
	Input       string
	Observation string
}

type Result struct {
	Answer string
	Steps  []Step
}

type Loop struct {
	sessionID string
	cfg       *config.AssistantConfig
	appCfg    *config.AppConfig
	ai        core.AIProvider
	tools     core.ToolProvider
	history   core.History
	executor  *Executor
	packer    *Packer
}

func NewLoop(
	sessionID string,
	cfg *config.AssistantConfig,
	appCfg *config.AppConfig,
	ai core.AIProvider,
	tools core.ToolProvider,
	history core.History,
	packer *Packer,
) *Loop {
	return &Loop{
		sessionID: sessionID,
		cfg:       cfg,
		appCfg:    appCfg,
		ai:        ai,
		tools:     tools,
		history:   history,
		executor:  NewExecutor(tools),
		packer:    packer,
	}
}

// Run drives the model until it answers without tool calls, the turn
// ceiling is hit, or the deadline expires. Steps taken so far are returned
// alongside the sentinel errors so callers can still extract sources.
func (l *Loop) Run(ctx context.Context, input string) (Result, error) {
	logger := log.FromCtx(ctx)

	ctx, cancel := context.WithTimeout(ctx, l.cfg.Deadline)
	defer cancel()

	var result Result

	userMsg := core.Message{Role: core.RoleUser, Content: input}
	if err := l.history.Append(ctx, l.sessionID, userMsg); err != nil {
		return result, fmt.Errorf("failed to save user message: %w", err)
	}

	for turn := 0; turn < l.cfg.TurnLimit; turn++ {
		tools, err := l.tools.GetTools(ctx)
		if err != nil {
			return result, fmt.Errorf("failed to get tools: %w", err)
		}

		history, err := l.history.Messages(ctx, l.sessionID, l.appCfg.GetContextWindowSize())
		if err != nil {
			return result, fmt.Errorf("failed to fetch history: %w", err)
		}
		messages := sanitizeToolCalls(ctx, l.packer.Pack(systemMessages(l.appCfg), history))

		responseMsg, err := l.ai.Chat(ctx, messages, tools)
		if err != nil {
			if ctx.Err() != nil {
				return result, ErrDeadline
			}
			return result, fmt.Errorf("ai chat error: %w", err)
		}

		if err := l.history.Append(ctx, l.sessionID, responseMsg); err != nil {
			logger.Error().Err(err).Msg("failed to save assistant message")
		}

		if responseMsg.Content != "" {
			result.Answer = responseMsg.Content
		}

		if len(responseMsg.ToolCalls) == 0 {
			return result, nil
		}

		steps, toolMsgs := l.executor.Execute(ctx, responseMsg.ToolCalls)
		result.Steps = append(result.Steps, steps...)
		for _, msg := range toolMsgs {
			if err := l.history.Append(ctx, l.sessionID, msg); err != nil {
				logger.Error().Err(err).Msg("failed to save tool message")
			}
		}

		if ctx.Err() != nil {
			return result, ErrDeadline
		}
	}

	return result, ErrTurnLimit
}

// sanitizeToolCalls drops tool messages whose call id was not announced by
// the assistant message directly before them. Orphans appear when the
// packer trims the middle of a tool exchange, and providers reject them.
func sanitizeToolCalls(ctx context.Context, messages []core.Message) []core.Message {
	var out []core.Message
	valid := make(map[string]bool)

	for _, msg := range messages {
		switch msg.Role {
		case core.RoleAssistant:
			valid = make(map[string]bool)
			for _, tc := range msg.ToolCalls {
				valid[tc.ID] = true
			}
		case core.RoleUser:
			valid = make(map[string]bool)
		case core.RoleTool:
			if !valid[msg.ToolCallID] {
				log.FromCtx(ctx).Debug().Str("tool_call_id", msg.ToolCallID).Msg("dropping orphaned tool message")
				continue
			}
		}
		out = append(out, msg)
	}
	return out
}
