package agent

import (
	"context"
	"fmt"

	"github.com/Jayani-123/tasbot/internal/core"
	"github.com/Jayani-123/tasbot/pkg/log"
)

type Executor struct {
	tools core.ToolProvider
}

func NewExecutor(tools core.ToolProvider) *Executor {
	return &Executor{
		tools: tools,
	}
}

// Execute runs each requested call in order. Steps carry the full output
// for source extraction; the conversation copy is truncated so one huge
// observation cannot crowd out the context window.
func (e *Executor) Execute(ctx context.Context, toolCalls []core.ToolCall) ([]Step, []core.Message) {
	logger := log.FromCtx(ctx)

	var steps []Step
	var results []core.Message
	for _, tc := range toolCalls {
		logger.Info().Str("tool", tc.Function.Name).Msg("executing tool")

		res, err := e.tools.CallTool(ctx, tc.Function.Name, tc.Function.Arguments)
		if err != nil {
			res = fmt.Sprintf("Error executing tool: %v", err)
		}

		steps = append(steps, Step{
			Action:      tc.Function.Name,
			Input:       tc.Function.Arguments,
			Observation: res,
		})
		results = append(results, core.Message{
			Role:       core.RoleTool,
			Content:    e.truncate(res),
			ToolCallID: tc.ID,
		})
	}
	return steps, results
}

func (e *Executor) truncate(input string) string {
	const maxLen = 2000
	if len(input) <= maxLen {
		return input
	}

	head := input[:500]
	tail := input[len(input)-(maxLen-500):]
	return fmt.Sprintf("%s\n\n... [TRUNCATED %d bytes] ...\n\n%s", head, len(input)-maxLen, tail)
}
