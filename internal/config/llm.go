package config

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Jayani-123/tasbot/pkg/log"
	"github.com/caarlos0/env/v11"
)

// LLMConfig selects the chat-completions provider driving the agent loop.
// Model is mutable at runtime through the /model command; everything else is
// fixed at startup.
type LLMConfig struct {
	Provider string `env:"LLM_PROVIDER" envDefault:"gemini"`
	Model    string `env:"LLM_MODEL" envDefault:"gemini-2.0-flash"`

	MaxRetries int `env:"LLM_MAX_RETRIES" envDefault:"2"`

	OpenAIAPIKey        string `env:"OPENAI_API_KEY"`
	AnthropicAPIKey     string `env:"ANTHROPIC_API_KEY"`
	OpenRouterAPIKey    string `env:"OPENROUTER_API_KEY"`
	GeminiAPIKey        string `env:"GEMINI_API_KEY"`
	OllamaBaseURL       string `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	OllamaAPIKey        string `env:"OLLAMA_API_KEY"`
	CustomOpenAIBaseURL string `env:"CUSTOM_OPENAI_BASE_URL"`
	CustomOpenAIAPIKey  string `env:"CUSTOM_OPENAI_API_KEY"`

	mu sync.RWMutex
}

func NewLLMConfig(ctx context.Context) *LLMConfig {
	c := &LLMConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse LLM config")
	}
	return c
}

func (c *LLMConfig) GetModel() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Model
}

// SetModel accepts either "model" or "provider/model". A provider prefix is
// honored only when it names a known provider; otherwise the whole string is
// the model id (OpenRouter ids contain slashes themselves).
func (c *LLMConfig) SetModel(model string) error {
	model = strings.TrimSpace(model)
	if model == "" {
		return fmt.Errorf("model must not be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if prov, rest, ok := strings.Cut(model, "/"); ok {
		switch prov {
		case "openai", "anthropic", "openrouter", "gemini", "ollama", "custom":
			c.Provider = prov
			c.Model = rest
			return nil
		}
	}
	c.Model = model
	return nil
}

func (c *LLMConfig) GetProvider() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Provider
}

func (c *LLMConfig) GetMaxRetries() int { return c.MaxRetries }

func (c *LLMConfig) GetOpenAIAPIKey() string { return c.OpenAIAPIKey }

func (c *LLMConfig) GetAnthropicAPIKey() string { return c.AnthropicAPIKey }

func (c *LLMConfig) GetOpenRouterAPIKey() string { return c.OpenRouterAPIKey }

func (c *LLMConfig) GetGeminiAPIKey() string { return c.GeminiAPIKey }

func (c *LLMConfig) GetOllamaAPIKey() string { return c.OllamaAPIKey }

func (c *LLMConfig) GetOllamaBaseURL() string { return c.OllamaBaseURL }

func (c *LLMConfig) GetCustomOpenAIBaseURL() string { return c.CustomOpenAIBaseURL }

func (c *LLMConfig) GetCustomOpenAIAPIKey() string { return c.CustomOpenAIAPIKey }
