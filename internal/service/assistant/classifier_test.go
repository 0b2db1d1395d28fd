package assistant

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jayani-123/tasbot/internal/config"
)

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier(config.DefaultKeywords())

	tests := []struct {
		name  string
		query string
		want  Route
	}{
		{"plain weather", "what is the weather in Hobart", RouteWeather},
		{"temperature", "current TEMPERATURE please", RouteWeather},
		{"forecast subroute", "weather forecast for Launceston", RouteForecast},
		{"tomorrow subroute", "will it rain tomorrow", RouteForecast},
		{"next week subroute", "how cold is it next week", RouteForecast},
		{"budget keyword", "calculate my trip expenses", RouteBudget},
		{"itinerary keyword", "suggest an itinerary", RouteBudget},
		{"weather beats budget", "trip plan and weather for Strahan", RouteWeather},
		{"no match", "best places to see wombats", RouteGeneral},
		{"empty query", "", RouteGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, c.Classify(tt.query))
		})
	}
}

func TestClassifier_WantsBudgetDetail(t *testing.T) {
	c := NewClassifier(config.DefaultKeywords())

	require.True(t, c.WantsBudgetDetail("how much is the Bruny Island ferry"))
	require.True(t, c.WantsBudgetDetail("any CHEAP hostels around"))
	require.True(t, c.WantsBudgetDetail("what does the bus cost"))
	require.False(t, c.WantsBudgetDetail("best places to see wombats"))
}

func TestRoute_String(t *testing.T) {
	require.Equal(t, "weather", RouteWeather.String())
	require.Equal(t, "forecast", RouteForecast.String())
	require.Equal(t, "budget", RouteBudget.String())
	require.Equal(t, "general", RouteGeneral.String())
}
