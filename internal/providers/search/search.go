// Package search provides the web-search backends exposed to the assistant.
// DuckDuckGo's Instant Answer API is the keyless default; Tavily is opt-in.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jayani-123/tasbot/internal/config"
)

// Result is one search hit.
type Result struct {
	Title   string
	Snippet string
	URL     string
}

type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
}

func NewSearcher(cfg *config.SearchConfig) (Searcher, error) {
	switch cfg.Backend {
	case "", "duckduckgo":
		return NewDuckDuckGo(), nil
	case "tavily":
		if cfg.TavilyAPIKey == "" {
			return nil, errors.New("tavily backend requires TAVILY_API_KEY")
		}
		return NewTavily(cfg.TavilyAPIKey), nil
	default:
		return nil, fmt.Errorf("unknown search backend: %s", cfg.Backend)
	}
}
