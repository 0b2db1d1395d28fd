package command

import (
	"context"
	"fmt"

	"github.com/Jayani-123/tasbot/internal/core"
)

// ModelSwitcher is the runtime model-management surface of the LLM
// provider.
type ModelSwitcher interface {
	GetModel() string
	SetModel(ctx context.Context, model string) error
	Models(ctx context.Context) ([]core.Model, error)
}

type ModelCommand struct {
	cfg       core.ProviderConfig
	provider  ModelSwitcher
	formatter *ResponseFormatter
}

func NewModelCommand(
	cfg core.ProviderConfig,
	provider ModelSwitcher,
) *ModelCommand {
	return &ModelCommand{
		cfg:       cfg,
		provider:  provider,
		formatter: NewResponseFormatter(),
	}
}

func (c *ModelCommand) Name() string {
	return "model"
}

func (c *ModelCommand) Description() string {
	return "Show, list, or change the active model"
}

func (c *ModelCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	if len(args) == 0 {
		return c.formatter.Combine(
			c.formatter.Info("Current Model"),
			c.formatter.Label("Provider", c.cfg.GetProvider()),
			c.formatter.Label("Model", c.provider.GetModel()),
			c.formatter.Usage("/model list | /model [model]"),
			c.formatter.Examples([]string{
				"/model list",
				"/model gpt-4o-mini",
				"/model llama3.2",
			}),
		), nil
	}

	if args[0] == "list" {
		models, err := c.provider.Models(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to list models: %w", err)
		}
		if len(models) == 0 {
			return c.formatter.Combine(
				c.formatter.Info("Available Models"),
				"The provider did not report any models.",
			), nil
		}

		items := make([]string, 0, len(models))
		for _, m := range models {
			items = append(items, m.ID)
		}
		return c.formatter.Combine(
			c.formatter.Info("Available Models"),
			c.formatter.List(items),
		), nil
	}

	if err := c.provider.SetModel(ctx, args[0]); err != nil {
		return "", fmt.Errorf("failed to set model: %w", err)
	}

	return c.formatter.Success(
		fmt.Sprintf("Model changed to: `%s/%s`", c.cfg.GetProvider(), c.provider.GetModel()),
	), nil
}
