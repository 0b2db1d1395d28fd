package tools

import (
	"context"
	"fmt"
	"strings"
)

const reportTimeLayout = "Monday, 02 January 2006, 03:04 PM"

// Weather answers a current-conditions question. Failures become a reply
// suggesting a known-good location instead of an error.
func (t *Tools) Weather(ctx context.Context, query string) string {
	location := CleanWeatherLocation(query)

	cond, err := t.conditions.Current(ctx, location)
	if err != nil {
		return fmt.Sprintf("Unable to fetch weather for '%s': %v. Try 'Hobart, AU'.", query, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Current Weather for %s (as of %s):\n", location, t.now().Format(reportTimeLayout))
	fmt.Fprintf(&b, "Detailed status: %s\n", cond.Description)
	fmt.Fprintf(&b, "Wind speed: %.2f m/s, direction: %d°\n", cond.WindSpeed, cond.WindDeg)
	fmt.Fprintf(&b, "Humidity: %d%%\n", cond.Humidity)
	b.WriteString("Temperature:\n")
	fmt.Fprintf(&b, "  - Current: %.1f°C\n", cond.TempC)
	fmt.Fprintf(&b, "  - High: %.1f°C\n", cond.TempMaxC)
	fmt.Fprintf(&b, "  - Low: %.1f°C\n", cond.TempMinC)
	fmt.Fprintf(&b, "  - Feels like: %.1f°C\n", cond.FeelsLikeC)
	fmt.Fprintf(&b, "Cloud cover: %d%%", cond.CloudCover)
	return b.String()
}
