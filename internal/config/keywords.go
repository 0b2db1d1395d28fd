package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Keywords are the routing lists the intent classifier matches against.
// Matching is case-insensitive substring containment, so entries should be
// lowercase. Order inside a list does not matter; the weather list always
// outranks the budget list.
type Keywords struct {
	Weather []string `yaml:"weather"`
	Budget  []string `yaml:"budget"`
	// Forecast selects the multi-day tool within the weather route.
	Forecast []string `yaml:"forecast"`
	// BudgetHints widen the query-augmentation trigger on the loop path
	// without affecting routing.
	BudgetHints []string `yaml:"budget_hints"`
}

func DefaultKeywords() Keywords {
	return Keywords{
		Weather: []string{
			"weather", "temperature", "rain", "forecast", "wind", "climate",
			"humidity", "snow", "storm", "tomorrow", "next week",
		},
		Budget: []string{
			"budget", "cost", "plan my trip", "trip plan", "itinerary",
			"estimate", "calculate", "expenses",
		},
		Forecast: []string{
			"tomorrow", "forecast", "next", "week", "day after",
		},
		BudgetHints: []string{
			"how much", "price", "prices", "cheap", "afford", "spend",
		},
	}
}

// LoadKeywords merges the YAML file at path over the defaults. An empty path
// returns the defaults; a missing or unreadable file is an error so a typoed
// path does not silently fall back.
func LoadKeywords(path string) (Keywords, error) {
	kw := DefaultKeywords()
	if path == "" {
		return kw, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return kw, fmt.Errorf("read keywords file: %w", err)
	}

	var override Keywords
	if err := yaml.Unmarshal(data, &override); err != nil {
		return kw, fmt.Errorf("parse keywords file: %w", err)
	}

	if len(override.Weather) > 0 {
		kw.Weather = override.Weather
	}
	if len(override.Budget) > 0 {
		kw.Budget = override.Budget
	}
	if len(override.Forecast) > 0 {
		kw.Forecast = override.Forecast
	}
	if len(override.BudgetHints) > 0 {
		kw.BudgetHints = override.BudgetHints
	}
	return kw, nil
}
