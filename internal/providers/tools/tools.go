// Package tools is the assistant's capability facade: document-grounded
// answers, current weather, multi-day forecasts, trip budgets, and web
// search. Every function returns text, converting internal failures into
// error-labeled replies instead of propagating them.
package tools

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Jayani-123/tasbot/internal/providers/rag"
	"github.com/Jayani-123/tasbot/internal/providers/search"
	"github.com/Jayani-123/tasbot/internal/providers/weather"
)

const guideSchema = `
{
  "type": "object",
  "properties": {
    "query": { "type": "string", "description": "The travel question to answer from the guides" }
  },
  "required": ["query"]
}
`

const weatherSchema = `
{
  "type": "object",
  "properties": {
    "query": { "type": "string", "description": "Free text naming the location, e.g. 'weather in Hobart tomorrow'" }
  },
  "required": ["query"]
}
`

const webSearchSchema = `
{
  "type": "object",
  "properties": {
    "query": { "type": "string", "description": "The web search query" }
  },
  "required": ["query"]
}
`

// GuideAnswerer is the retrieval service surface the facade needs.
type GuideAnswerer interface {
	Answer(ctx context.Context, query string) (rag.Response, error)
	Facts(ctx context.Context, query string) (string, error)
}

// ConditionsProvider reports current weather for a location string.
type ConditionsProvider interface {
	Current(ctx context.Context, location string) (weather.Conditions, error)
}

// ForecastProvider geocodes place names and fetches daily forecasts.
type ForecastProvider interface {
	Locate(ctx context.Context, name string) (weather.Place, bool, error)
	DailyForecast(ctx context.Context, lat, lon float64) (weather.Daily, error)
}

type Tools struct {
	guide      GuideAnswerer
	conditions ConditionsProvider
	forecast   ForecastProvider
	searcher   search.Searcher

	maxSearchResults int
	now              func() time.Time
}

func NewTools(guide GuideAnswerer, conditions ConditionsProvider, forecast ForecastProvider, searcher search.Searcher, maxSearchResults int) *Tools {
	if maxSearchResults <= 0 {
		maxSearchResults = 3
	}
	return &Tools{
		guide:            guide,
		conditions:       conditions,
		forecast:         forecast,
		searcher:         searcher,
		maxSearchResults: maxSearchResults,
		now:              time.Now,
	}
}

// GetDefinitions lists the tools the reasoning loop may call. The budget
// planner is deliberately absent: it is reachable only through the
// classifier's fast path.
func (t *Tools) GetDefinitions() map[string]struct {
	Description string
	Schema      string
	Handler     func(context.Context, json.RawMessage) (string, error)
} {
	return map[string]struct {
		Description string
		Schema      string
		Handler     func(context.Context, json.RawMessage) (string, error)
	}{
		"tassie_search": {
			"Answer questions from the Tasmania backpacker guides. Ideal for travel routes, campsites, fees, safety tips, or attractions. Cites document sources.",
			guideSchema,
			t.handleGuide,
		},
		"weather": {
			"Current weather or forecast for a location. Combine with tassie_search for broader travel answers.",
			weatherSchema,
			t.handleWeather,
		},
		"web_search": {
			"Web facts that are not in the guides or need fresh, live info. Returns snippets and URLs.",
			webSearchSchema,
			t.handleWebSearch,
		},
	}
}

func (t *Tools) handleGuide(ctx context.Context, args json.RawMessage) (string, error) {
	query, err := queryArg(args)
	if err != nil {
		return "", err
	}
	return t.Guide(ctx, query), nil
}

func (t *Tools) handleWeather(ctx context.Context, args json.RawMessage) (string, error) {
	query, err := queryArg(args)
	if err != nil {
		return "", err
	}
	if IsForecastQuery(query) {
		return t.Forecast(ctx, query), nil
	}
	return t.Weather(ctx, query), nil
}

func (t *Tools) handleWebSearch(ctx context.Context, args json.RawMessage) (string, error) {
	query, err := queryArg(args)
	if err != nil {
		return "", err
	}
	return t.WebSearch(ctx, query), nil
}

func queryArg(args json.RawMessage) (string, error) {
	var input struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal(args, &input); err != nil {
		return "", err
	}
	return input.Query, nil
}
