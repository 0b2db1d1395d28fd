package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/Jayani-123/tasbot/internal/config"
	"github.com/Jayani-123/tasbot/internal/providers/llm"
	"github.com/Jayani-123/tasbot/internal/providers/mcp"
	"github.com/Jayani-123/tasbot/internal/providers/rag"
	"github.com/Jayani-123/tasbot/internal/providers/search"
	"github.com/Jayani-123/tasbot/internal/providers/tools"
	"github.com/Jayani-123/tasbot/internal/providers/weather"
	"github.com/Jayani-123/tasbot/internal/service/agent"
	"github.com/Jayani-123/tasbot/internal/service/assistant"
	"github.com/Jayani-123/tasbot/internal/service/command"
	"github.com/Jayani-123/tasbot/internal/storage/memory"
	"github.com/Jayani-123/tasbot/internal/transport/cli"
	"github.com/Jayani-123/tasbot/internal/transport/httpapi"
	"github.com/Jayani-123/tasbot/internal/transport/telegram"
	"github.com/Jayani-123/tasbot/pkg/log"
	"github.com/Jayani-123/tasbot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	err := initEnv(ctx, config.GetRuntimePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	assistantCfg := config.NewAssistantConfig(ctx)
	llmCfg := config.NewLLMConfig(ctx)
	retrievalCfg := config.NewRetrievalConfig(ctx)
	searchCfg := config.NewSearchConfig(ctx)
	weatherCfg := config.NewWeatherConfig(ctx)

	// 2. Session storage
	history := memory.NewStore()

	// 3. AI Provider, switchable at runtime through /model
	aiProvider, err := llm.NewDynamicProvider(ctx, llmCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	// 4. Domain providers behind the capability facade
	guide := rag.NewClient(retrievalCfg)
	searcher, err := search.NewSearcher(searchCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize web search")
	}
	facade := tools.NewTools(
		guide,
		weather.NewOpenWeather(weatherCfg),
		weather.NewOpenMeteo(),
		searcher,
		searchCfg.MaxResults,
	)

	// 5. Tool registry: native tools plus optional external MCP servers
	registry, err := initMCP(appCfg, facade)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize MCP manager")
	}
	services = append(services, registry)

	// 6. Token packing for the loop's context window
	packer, err := agent.NewPacker(appCfg.TokenEncoding, appCfg.TokenBudget)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize token packer")
	}

	// 7. Routing keywords; a wizard-written file wins over the built-ins
	if assistantCfg.KeywordsFile == "" {
		candidate := filepath.Join(config.GetRuntimePath(), "keywords.yaml")
		if _, err := os.Stat(candidate); err == nil {
			assistantCfg.KeywordsFile = candidate
		}
	}
	keywords, err := config.LoadKeywords(assistantCfg.KeywordsFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load routing keywords")
	}

	// 8. Assistant Service
	asst := assistant.New(assistantCfg, appCfg, aiProvider, registry, facade, history, packer, keywords)

	// 9. Slash commands shared by the interactive transports
	router := command.New(command.NewCommands(llmCfg, aiProvider, asst))

	// 10. Transports
	transports, err := initTransports(ctx, appCfg, asst, router)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func initMCP(cfg *config.AppConfig, facade *tools.Tools) (*mcp.Manager, error) {
	mgr, err := mcp.NewManager(cfg.GetMCPConfigPath())
	if err != nil {
		return nil, err
	}

	for name, def := range facade.GetDefinitions() {
		mgr.RegisterNativeTool(name, def.Description, json.RawMessage(def.Schema), def.Handler)
	}

	return mgr, nil
}

func initTransports(ctx context.Context, cfg *config.AppConfig, asst *assistant.Assistant, router *command.Router) ([]srv.Service, error) {
	var services []srv.Service

	// Telegram Bot
	if cfg.IsTelegramSelected() {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, asst, router)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	// HTTP API
	if cfg.EnableHTTP {
		services = append(services, httpapi.NewServer(ctx, config.NewHTTPConfig(ctx), asst))
	}

	// Interactive terminal
	if cfg.EnableCLI {
		repl, err := cli.NewReadLine(asst, router, cfg)
		if err != nil {
			return nil, err
		}
		services = append(services, repl)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
