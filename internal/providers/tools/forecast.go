package tools

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	minForecastDays     = 1
	maxForecastDays     = 7
	defaultForecastDays = 3
)

var (
	forecastDaysRe  = regexp.MustCompile(`(\d+)\s*day`)
	trailingPlaceRe = regexp.MustCompile(`(?i)\b(?:for|in)\s+([a-zA-Z][a-zA-Z\s]*)$`)
)

// Forecast answers a multi-day forecast question. Day count and location
// are parsed from the text; the reply carries one line per day.
func (t *Tools) Forecast(ctx context.Context, query string) string {
	days := forecastDayCount(query)
	location := forecastLocation(query)

	header := fmt.Sprintf("Forecast for %s (as of %s):\n", location, t.now().Format(reportTimeLayout))

	place, found, err := t.forecast.Locate(ctx, location)
	if err != nil {
		return header + fmt.Sprintf("Forecast unavailable: %v", err)
	}
	if !found {
		return header + fmt.Sprintf("Could not locate city '%s'. Try 'Hobart' or 'Launceston'.", location)
	}

	daily, err := t.forecast.DailyForecast(ctx, place.Latitude, place.Longitude)
	if err != nil {
		return header + fmt.Sprintf("Forecast unavailable: %v", err)
	}

	// Index 0 is today; the forecast starts tomorrow.
	lines := []string{fmt.Sprintf("**%d-Day Forecast for %s**", days, location)}
	for i := 1; i <= days && i < len(daily.Dates); i++ {
		lines = append(lines, fmt.Sprintf("• **%s** — Low: %.1f°C | High: %.1f°C | Rain: %.1f mm",
			daily.Dates[i].Format("Mon, 02 Jan"), daily.MinC[i], daily.MaxC[i], daily.RainMM[i]))
	}
	if len(lines) == 1 {
		return header + "Forecast unavailable: no daily data returned"
	}

	return header + strings.Join(lines, "\n")
}

func forecastDayCount(query string) int {
	m := forecastDaysRe.FindStringSubmatch(strings.ToLower(query))
	if m == nil {
		return defaultForecastDays
	}
	days, err := strconv.Atoi(m[1])
	if err != nil {
		return defaultForecastDays
	}
	if days < minForecastDays {
		return minForecastDays
	}
	if days > maxForecastDays {
		return maxForecastDays
	}
	return days
}

func forecastLocation(query string) string {
	if m := trailingPlaceRe.FindStringSubmatch(query); m != nil {
		if loc := stripWeatherStopWords(m[1]); loc != "" {
			return loc
		}
	}
	if loc := stripWeatherStopWords(query); loc != "" {
		return loc
	}
	return defaultForecastCity
}
