package llm

import (
	"context"
	"fmt"

	"github.com/Jayani-123/tasbot/internal/core"
	"github.com/Jayani-123/tasbot/pkg/log"
	"github.com/Jayani-123/tasbot/pkg/retry"
)

// NewProvider creates the appropriate AIProvider based on configuration.
// Chat calls are wrapped with the configured retry budget; rate limits and
// server errors are retried, other client errors fail fast.
func NewProvider(ctx context.Context, cfg core.ProviderConfig) (core.AIProvider, error) {
	log.FromCtx(ctx).Info().
		Str("provider", cfg.GetProvider()).
		Str("model", cfg.GetModel()).
		Msg("starting llm provider")

	var provider core.AIProvider
	switch cfg.GetProvider() {
	case "openai":
		provider = NewOpenAI(cfg.GetOpenAIAPIKey(), cfg.GetModel())
	case "anthropic":
		provider = NewAnthropic(cfg.GetAnthropicAPIKey(), cfg.GetModel())
	case "openrouter":
		provider = NewOpenRouter(cfg.GetOpenRouterAPIKey(), cfg.GetModel())
	case "gemini":
		provider = NewGemini(cfg.GetGeminiAPIKey(), cfg.GetModel())
	case "ollama":
		provider = NewOllama(cfg.GetOllamaBaseURL(), cfg.GetOllamaAPIKey(), cfg.GetModel())
	case "custom":
		provider = NewCustomOpenAI(cfg.GetCustomOpenAIBaseURL(), cfg.GetCustomOpenAIAPIKey(), cfg.GetModel())
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.GetProvider())
	}

	retryCfg := retry.NewDefaultConfig()
	retryCfg.MaxRetries = cfg.GetMaxRetries()
	return withRetry(provider, retry.NewRetrier(retryCfg)), nil
}
