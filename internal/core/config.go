package core

type ProviderConfig interface {
	GetModel() string
	SetModel(model string) error
	GetProvider() string
	GetMaxRetries() int
	GetAnthropicAPIKey() string
	GetOpenAIAPIKey() string
	GetOpenRouterAPIKey() string
	GetGeminiAPIKey() string
	GetOllamaAPIKey() string
	GetOllamaBaseURL() string
	GetCustomOpenAIBaseURL() string
	GetCustomOpenAIAPIKey() string
}
