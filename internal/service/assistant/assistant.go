// Package assistant orchestrates query handling: classify, serve the
// weather and budget fast paths directly, or hand the query to the
// session's reasoning loop and post-process its outcome.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Jayani-123/tasbot/internal/config"
	"github.com/Jayani-123/tasbot/internal/core"
	"github.com/Jayani-123/tasbot/internal/metrics"
	"github.com/Jayani-123/tasbot/internal/providers/tools"
	"github.com/Jayani-123/tasbot/internal/service/agent"
	"github.com/Jayani-123/tasbot/pkg/log"
)

// budgetInstruction is appended to the query on the loop path when budget
// hints are present.
const budgetInstruction = "\n\n(When answering, include an itemized cost breakdown with any prices the guides mention, and cite the guide sources.)"

// Reply is one structured answer. Sources may be a tool display name, a
// newline-separated citation list, or empty.
type Reply struct {
	Answer  string
	Sources string
}

// Format renders the transport-facing reply text.
func (r Reply) Format() string {
	out := fmt.Sprintf("**Answer:** %s", r.Answer)
	if r.Sources != "" {
		out += fmt.Sprintf("\n\n**Sources:** %s", r.Sources)
	}
	return out
}

type Assistant struct {
	cfg        *config.AssistantConfig
	appCfg     *config.AppConfig
	ai         core.AIProvider
	registry   core.ToolProvider
	facade     *tools.Tools
	history    core.History
	packer     *agent.Packer
	classifier *Classifier

	mu    sync.RWMutex
	loops map[string]*agent.Loop
}

func New(
	cfg *config.AssistantConfig,
	appCfg *config.AppConfig,
	ai core.AIProvider,
	registry core.ToolProvider,
	facade *tools.Tools,
	history core.History,
	packer *agent.Packer,
	keywords config.Keywords,
) *Assistant {
	return &Assistant{
		cfg:        cfg,
		appCfg:     appCfg,
		ai:         ai,
		registry:   registry,
		facade:     facade,
		history:    history,
		packer:     packer,
		classifier: NewClassifier(keywords),
		loops:      make(map[string]*agent.Loop),
	}
}

// Chat runs one query end to end and renders the reply.
func (a *Assistant) Chat(ctx context.Context, sessionID, query string) string {
	return a.Process(ctx, sessionID, query).Format()
}

// Process classifies the query and serves it. Fast-path turns are answered
// by the facade alone and leave no trace in session history.
func (a *Assistant) Process(ctx context.Context, sessionID, query string) Reply {
	logger := log.FromCtx(ctx)

	route := a.classifier.Classify(query)
	metrics.QueriesByRoute.WithLabelValues(route.String()).Inc()

	switch route {
	case RouteWeather:
		logger.Info().Str("route", route.String()).Msg("fast-path query")
		return Reply{Answer: a.facade.Weather(ctx, query), Sources: "WeatherTool"}
	case RouteForecast:
		logger.Info().Str("route", route.String()).Msg("fast-path query")
		return Reply{Answer: a.facade.Forecast(ctx, query), Sources: "WeatherTool"}
	case RouteBudget:
		logger.Info().Str("route", route.String()).Msg("fast-path query")
		return a.planBudget(ctx, query)
	}

	return a.reason(ctx, sessionID, query)
}

func (a *Assistant) planBudget(ctx context.Context, query string) Reply {
	budgetErr := func(err error) Reply {
		return Reply{
			Answer:  fmt.Sprintf("Budget planning failed: %v", err),
			Sources: "TripBudgetPlanner Tool error",
		}
	}

	raw, err := json.Marshal(tools.ExtractBudgetInput(query))
	if err != nil {
		return budgetErr(err)
	}

	answer, err := a.facade.PlanTripBudget(ctx, raw)
	if err != nil {
		return budgetErr(err)
	}
	return Reply{Answer: answer, Sources: "TripBudgetPlanner Tool"}
}

func (a *Assistant) reason(ctx context.Context, sessionID, query string) Reply {
	logger := log.FromCtx(ctx)

	input := query
	if a.classifier.WantsBudgetDetail(query) {
		input += budgetInstruction
	}

	result, err := a.loopFor(sessionID).Run(ctx, input)
	if err != nil {
		if errors.Is(err, agent.ErrTurnLimit) || errors.Is(err, agent.ErrDeadline) {
			logger.Warn().Err(err).Msg("reasoning loop gave up, falling back to web search")
			metrics.FallbacksTotal.WithLabelValues("limit").Inc()
			return Reply{Answer: a.facade.WebSearch(ctx, query), Sources: "DuckDuckGo Search  (timeout fallback)"}
		}
		logger.Error().Err(err).Msg("reasoning loop failed")
		return Reply{Answer: fmt.Sprintf("Unexpected error: %v", err), Sources: "No sources due to error."}
	}

	answer := strings.TrimSpace(result.Answer)
	if len(answer) < 10 || strings.Contains(answer, "No answer") {
		logger.Info().Msg("weak loop answer, falling back to web search")
		metrics.FallbacksTotal.WithLabelValues("quality").Inc()
		return Reply{Answer: a.facade.WebSearch(ctx, query), Sources: "DuckDuckGo Search "}
	}

	return Reply{Answer: answer, Sources: cleanSources(ExtractSources(result.Steps))}
}

// Reset drops the session's stored history and cached loop.
func (a *Assistant) Reset(ctx context.Context, sessionID string) string {
	a.mu.Lock()
	delete(a.loops, sessionID)
	metrics.ActiveLoops.Set(float64(len(a.loops)))
	a.mu.Unlock()

	if err := a.history.Clear(ctx, sessionID); err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("session", sessionID).Msg("failed to clear history")
		return "Could not clear chat memory."
	}
	return "Chat memory cleared."
}

func (a *Assistant) loopFor(sessionID string) *agent.Loop {
	a.mu.RLock()
	loop, ok := a.loops[sessionID]
	a.mu.RUnlock()
	if ok {
		return loop
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if loop, ok := a.loops[sessionID]; ok {
		return loop
	}
	loop := agent.NewLoop(sessionID, a.cfg, a.appCfg, a.ai, a.registry, a.history, a.packer)
	a.loops[sessionID] = loop
	metrics.ActiveLoops.Set(float64(len(a.loops)))
	return loop
}
