package config

import (
	"context"
	"path/filepath"

	"github.com/Jayani-123/tasbot/pkg/log"
	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	RuntimePath string `env:"TASBOT_RUNTIME_PATH" envDefault:".tasbot"`

	// Transport Flags
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"ENABLE_CLI" envDefault:"true"`
	EnableHTTP     bool `env:"ENABLE_HTTP" envDefault:"false"`

	// Context Management
	ContextWindowSize int    `env:"CONTEXT_WINDOW_SIZE" envDefault:"30"`
	TokenBudget       int    `env:"TOKEN_BUDGET" envDefault:"6000"`
	TokenEncoding     string `env:"TOKEN_ENCODING" envDefault:"cl100k_base"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetSystemPath() string {
	return filepath.Join(c.RuntimePath, "SYSTEM.md")
}

func (c AppConfig) GetMCPConfigPath() string {
	return filepath.Join(c.RuntimePath, "mcp_config.json")
}

func (c AppConfig) GetContextWindowSize() int {
	return c.ContextWindowSize
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}
