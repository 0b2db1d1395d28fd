package assistant

import (
	"strings"

	"github.com/Jayani-123/tasbot/internal/config"
)

// Route is the classifier's verdict for one query.
type Route int

const (
	RouteGeneral Route = iota
	RouteWeather
	RouteForecast
	RouteBudget
)

func (r Route) String() string {
	switch r {
	case RouteWeather:
		return "weather"
	case RouteForecast:
		return "forecast"
	case RouteBudget:
		return "budget"
	default:
		return "general"
	}
}

// Classifier routes queries by case-insensitive keyword containment.
// Weather outranks budget; no match falls through to the reasoning loop.
type Classifier struct {
	keywords config.Keywords
}

func NewClassifier(keywords config.Keywords) *Classifier {
	return &Classifier{keywords: keywords}
}

func (c *Classifier) Classify(query string) Route {
	q := strings.ToLower(query)

	if containsAny(q, c.keywords.Weather) {
		if containsAny(q, c.keywords.Forecast) {
			return RouteForecast
		}
		return RouteWeather
	}
	if containsAny(q, c.keywords.Budget) {
		return RouteBudget
	}
	return RouteGeneral
}

// WantsBudgetDetail reports whether a loop-path query should be steered
// toward an itemized cost answer.
func (c *Classifier) WantsBudgetDetail(query string) bool {
	q := strings.ToLower(query)
	return containsAny(q, c.keywords.Budget) || containsAny(q, c.keywords.BudgetHints)
}

func containsAny(q string, words []string) bool {
	for _, w := range words {
		if strings.Contains(q, w) {
			return true
		}
	}
	return false
}
