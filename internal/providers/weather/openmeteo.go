package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Jayani-123/tasbot/internal/core"
)

const (
	geocodeBaseURL  = "https://geocoding-api.open-meteo.com"
	forecastBaseURL = "https://api.open-meteo.com"

	// Appended on the second geocode attempt. The corpus is Tasmania, so an
	// unqualified town name should resolve inside Australia.
	countrySuffix = ", AU"
)

// Place is a geocoded location.
type Place struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// Daily holds aligned per-day forecast arrays. Index 0 is today.
type Daily struct {
	Dates  []time.Time
	MinC   []float64
	MaxC   []float64
	RainMM []float64
}

type OpenMeteo struct {
	client      *http.Client
	geocodeURL  string
	forecastURL string
}

func NewOpenMeteo() *OpenMeteo {
	return &OpenMeteo{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		geocodeURL:  geocodeBaseURL,
		forecastURL: forecastBaseURL,
	}
}

// Locate geocodes a place name, retrying exactly once with the country
// suffix appended when the bare name matches nothing.
func (m *OpenMeteo) Locate(ctx context.Context, name string) (Place, bool, error) {
	place, found, err := m.Geocode(ctx, name)
	if err != nil || found {
		return place, found, err
	}
	if strings.HasSuffix(strings.ToLower(name), strings.ToLower(countrySuffix)) {
		return Place{}, false, nil
	}
	return m.Geocode(ctx, name+countrySuffix)
}

// Geocode resolves a place name to coordinates. found is false when the
// service knows no such place.
func (m *OpenMeteo) Geocode(ctx context.Context, name string) (Place, bool, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("count", "1")

	body, err := m.get(ctx, m.geocodeURL+"/v1/search?"+q.Encode())
	if err != nil {
		return Place{}, false, err
	}

	var parsed struct {
		Results []struct {
			Name      string  `json:"name"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Place{}, false, fmt.Errorf("failed to parse geocode response: %w", err)
	}
	if len(parsed.Results) == 0 {
		return Place{}, false, nil
	}

	r := parsed.Results[0]
	return Place{Name: r.Name, Latitude: r.Latitude, Longitude: r.Longitude}, true, nil
}

// DailyForecast fetches min/max temperature and precipitation per day for
// the given coordinates. The service decides the horizon (7 days).
func (m *OpenMeteo) DailyForecast(ctx context.Context, lat, lon float64) (Daily, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum")
	q.Set("timezone", "auto")

	body, err := m.get(ctx, m.forecastURL+"/v1/forecast?"+q.Encode())
	if err != nil {
		return Daily{}, err
	}

	var parsed struct {
		Daily struct {
			Time             []string  `json:"time"`
			TemperatureMax   []float64 `json:"temperature_2m_max"`
			TemperatureMin   []float64 `json:"temperature_2m_min"`
			PrecipitationSum []float64 `json:"precipitation_sum"`
		} `json:"daily"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Daily{}, fmt.Errorf("failed to parse forecast response: %w", err)
	}

	d := parsed.Daily
	n := len(d.Time)
	if n == 0 || len(d.TemperatureMax) != n || len(d.TemperatureMin) != n || len(d.PrecipitationSum) != n {
		return Daily{}, fmt.Errorf("forecast arrays misaligned: %d dates, %d max, %d min, %d rain",
			n, len(d.TemperatureMax), len(d.TemperatureMin), len(d.PrecipitationSum))
	}

	out := Daily{
		Dates:  make([]time.Time, 0, n),
		MinC:   d.TemperatureMin,
		MaxC:   d.TemperatureMax,
		RainMM: d.PrecipitationSum,
	}
	for _, s := range d.Time {
		day, err := time.Parse("2006-01-02", s)
		if err != nil {
			return Daily{}, fmt.Errorf("failed to parse forecast date %q: %w", s, err)
		}
		out.Dates = append(out.Dates, day)
	}
	return out, nil
}

func (m *OpenMeteo) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", core.TasUserAgent)

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open-meteo http %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
