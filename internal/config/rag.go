package config

import (
	"context"
	"time"

	"github.com/Jayani-123/tasbot/pkg/log"
	"github.com/caarlos0/env/v11"
)

// RetrievalConfig points at the external document-retrieval service that
// produces grounded answers over the travel corpus.
type RetrievalConfig struct {
	BaseURL string        `env:"RETRIEVAL_BASE_URL,required,notEmpty"`
	APIKey  string        `env:"RETRIEVAL_API_KEY"`
	Timeout time.Duration `env:"RETRIEVAL_TIMEOUT" envDefault:"45s"`
}

func NewRetrievalConfig(ctx context.Context) *RetrievalConfig {
	cfg := &RetrievalConfig{}
	if err := env.Parse(cfg); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Retrieval config")
	}
	return cfg
}
