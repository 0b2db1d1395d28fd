package config

import (
	"context"

	"github.com/Jayani-123/tasbot/pkg/log"
	"github.com/caarlos0/env/v11"
)

type SearchConfig struct {
	Backend      string `env:"SEARCH_BACKEND" envDefault:"duckduckgo"`
	TavilyAPIKey string `env:"TAVILY_API_KEY"`
	MaxResults   int    `env:"SEARCH_MAX_RESULTS" envDefault:"3"`
}

func NewSearchConfig(ctx context.Context) *SearchConfig {
	c := &SearchConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Search config")
	}
	return c
}
