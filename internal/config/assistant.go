package config

import (
	"context"
	"time"

	"github.com/Jayani-123/tasbot/pkg/log"
	"github.com/caarlos0/env/v11"
)

type AssistantConfig struct {
	// Ceilings on one reasoning-loop invocation.
	TurnLimit int           `env:"ASSISTANT_TURN_LIMIT" envDefault:"6"`
	Deadline  time.Duration `env:"ASSISTANT_DEADLINE" envDefault:"90s"`

	// Optional YAML file overriding the routing keyword lists.
	KeywordsFile string `env:"ASSISTANT_KEYWORDS_FILE"`
}

func NewAssistantConfig(ctx context.Context) *AssistantConfig {
	c := &AssistantConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Assistant config")
	}
	return c
}
