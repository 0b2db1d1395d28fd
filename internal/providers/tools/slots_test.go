package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractBudgetInput(t *testing.T) {
	tests := []struct {
		name  string
		query string
		place string
		days  int
	}{
		{"place and days", "plan a 5 day trip to Hobart", "Hobart", 5},
		{"place only", "budget for Launceston", "Launceston", 3},
		{"days only", "plan my trip, 7 days", "Tasmania", 7},
		{"empty", "", "Tasmania", 3},
		{"noise only", "!!! 123", "Tasmania", 3},
		{"stop words only", "plan my trip budget", "Tasmania", 3},
		{"huge day count falls back", "plan a 99999999999999999999 day trip to Hobart", "Hobart", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractBudgetInput(tt.query)
			assert.Contains(t, got.Place, tt.place)
			assert.Equal(t, tt.days, got.Days)
		})
	}
}

func TestCleanWeatherLocation(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"what is the weather in hobart", "Hobart"},
		{"Will it rain tomorrow in Strahan?", "Strahan"},
		{"weather", "Hobart, AU"},
		{"", "Hobart, AU"},
		{"tell me about the forecast", "Hobart, AU"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanWeatherLocation(tt.query))
		})
	}
}

func TestIsForecastQuery(t *testing.T) {
	assert.True(t, IsForecastQuery("weather tomorrow"))
	assert.True(t, IsForecastQuery("5 day FORECAST please"))
	assert.True(t, IsForecastQuery("the day after"))
	assert.False(t, IsForecastQuery("current weather in Hobart"))
	assert.False(t, IsForecastQuery(""))
}

func TestForecastDayCount(t *testing.T) {
	assert.Equal(t, 3, forecastDayCount("forecast for Hobart"))
	assert.Equal(t, 5, forecastDayCount("5 day forecast"))
	assert.Equal(t, 7, forecastDayCount("12 days of weather"))
	assert.Equal(t, 1, forecastDayCount("0 day forecast"))
}

func TestForecastLocation(t *testing.T) {
	assert.Equal(t, "Launceston", forecastLocation("forecast for Launceston"))
	assert.Equal(t, "Devonport", forecastLocation("3 day forecast in devonport"))
	assert.Equal(t, "Strahan", forecastLocation("will it rain next week in Strahan"))
	assert.Equal(t, "Hobart", forecastLocation("forecast for next week"))
}
