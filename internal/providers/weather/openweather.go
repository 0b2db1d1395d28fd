// Package weather wraps the two public weather APIs the assistant reports
// from: OpenWeatherMap for current conditions and Open-Meteo for geocoding
// plus the daily forecast.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Jayani-123/tasbot/internal/config"
	"github.com/Jayani-123/tasbot/internal/core"
)

const openWeatherBaseURL = "https://api.openweathermap.org"

// Conditions is one current-weather observation for a location.
type Conditions struct {
	Location    string
	Description string
	TempC       float64
	FeelsLikeC  float64
	TempMinC    float64
	TempMaxC    float64
	Humidity    int
	WindSpeed   float64
	WindDeg     int
	CloudCover  int
}

type OpenWeather struct {
	client  *http.Client
	baseURL string
	apiKey  string
	units   string
}

func NewOpenWeather(cfg *config.WeatherConfig) *OpenWeather {
	return &OpenWeather{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: openWeatherBaseURL,
		apiKey:  cfg.OpenWeatherAPIKey,
		units:   cfg.Units,
	}
}

// Current fetches present conditions for a free-form location string
// ("Hobart, AU", "Launceston").
func (w *OpenWeather) Current(ctx context.Context, location string) (Conditions, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("units", w.units)
	q.Set("appid", w.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.baseURL+"/data/2.5/weather?"+q.Encode(), nil)
	if err != nil {
		return Conditions{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", core.TasUserAgent)

	resp, err := w.client.Do(req)
	if err != nil {
		return Conditions{}, fmt.Errorf("failed to fetch weather: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Conditions{}, fmt.Errorf("failed to read body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return Conditions{}, fmt.Errorf("location %q not found", location)
	}
	if resp.StatusCode != http.StatusOK {
		return Conditions{}, fmt.Errorf("openweathermap http %d: %s", resp.StatusCode, string(body))
	}

	var parsed struct {
		Name    string `json:"name"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			TempMin   float64 `json:"temp_min"`
			TempMax   float64 `json:"temp_max"`
			Humidity  int     `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
			Deg   int     `json:"deg"`
		} `json:"wind"`
		Clouds struct {
			All int `json:"all"`
		} `json:"clouds"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Conditions{}, fmt.Errorf("failed to parse weather response: %w", err)
	}

	c := Conditions{
		Location:   parsed.Name,
		TempC:      parsed.Main.Temp,
		FeelsLikeC: parsed.Main.FeelsLike,
		TempMinC:   parsed.Main.TempMin,
		TempMaxC:   parsed.Main.TempMax,
		Humidity:   parsed.Main.Humidity,
		WindSpeed:  parsed.Wind.Speed,
		WindDeg:    parsed.Wind.Deg,
		CloudCover: parsed.Clouds.All,
	}
	if len(parsed.Weather) > 0 {
		c.Description = parsed.Weather[0].Description
	}
	if c.Location == "" {
		c.Location = location
	}
	return c, nil
}
