package command

import (
	"context"
	"fmt"

	"github.com/Jayani-123/tasbot/internal/core"
)

type HelpCommand struct {
	commands  []core.Command
	formatter *ResponseFormatter
}

// NewHelpCommand lists the given commands plus itself.
func NewHelpCommand(commands []core.Command) *HelpCommand {
	return &HelpCommand{
		commands:  commands,
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "List available commands"
}

func (c *HelpCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	items := make([]string, 0, len(c.commands)+1)
	for _, cmd := range c.commands {
		items = append(items, fmt.Sprintf("`/%s`  %s", cmd.Name(), cmd.Description()))
	}
	items = append(items, fmt.Sprintf("`/%s`  %s", c.Name(), c.Description()))

	return c.formatter.Combine(
		c.formatter.Info("Commands"),
		c.formatter.List(items),
		c.formatter.Tip("Anything else goes straight to TasBot."),
	), nil
}
