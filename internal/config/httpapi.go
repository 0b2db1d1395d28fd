package config

import (
	"context"
	"time"

	"github.com/Jayani-123/tasbot/pkg/log"
	"github.com/caarlos0/env/v11"
)

type HTTPConfig struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	EnableMetrics   bool          `env:"HTTP_ENABLE_METRICS" envDefault:"true"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func NewHTTPConfig(ctx context.Context) *HTTPConfig {
	c := &HTTPConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse HTTP config")
	}
	return c
}
