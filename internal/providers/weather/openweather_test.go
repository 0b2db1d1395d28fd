package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jayani-123/tasbot/internal/config"
)

func TestOpenWeather_Current(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/data/2.5/weather", r.URL.Path)
		assert.Equal(t, "Hobart, AU", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		_, _ = w.Write([]byte(`{
			"name": "Hobart",
			"weather": [{"description": "light rain"}],
			"main": {"temp": 12.5, "feels_like": 11.9, "temp_min": 11.1, "temp_max": 13.3, "humidity": 73},
			"wind": {"speed": 5.66, "deg": 230},
			"clouds": {"all": 75}
		}`))
	}))
	defer srv.Close()

	ow := NewOpenWeather(&config.WeatherConfig{OpenWeatherAPIKey: "test-key", Units: "metric"})
	ow.baseURL = srv.URL

	c, err := ow.Current(context.Background(), "Hobart, AU")

	require.NoError(t, err)
	assert.Equal(t, "Hobart", c.Location)
	assert.Equal(t, "light rain", c.Description)
	assert.InDelta(t, 12.5, c.TempC, 0.001)
	assert.InDelta(t, 11.9, c.FeelsLikeC, 0.001)
	assert.Equal(t, 73, c.Humidity)
	assert.InDelta(t, 5.66, c.WindSpeed, 0.001)
	assert.Equal(t, 230, c.WindDeg)
	assert.Equal(t, 75, c.CloudCover)
}

func TestOpenWeather_CurrentUnknownLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod":"404","message":"city not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	ow := NewOpenWeather(&config.WeatherConfig{OpenWeatherAPIKey: "k", Units: "metric"})
	ow.baseURL = srv.URL

	_, err := ow.Current(context.Background(), "Nowheresville")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestOpenWeather_CurrentServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	}))
	defer srv.Close()

	ow := NewOpenWeather(&config.WeatherConfig{OpenWeatherAPIKey: "k", Units: "metric"})
	ow.baseURL = srv.URL

	_, err := ow.Current(context.Background(), "Hobart")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 502")
}
