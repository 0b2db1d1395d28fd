package tools

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// BudgetInput is the structured slot record the budget planner consumes.
type BudgetInput struct {
	Place string `json:"place"`
	Days  int    `json:"days"`
}

const (
	defaultBudgetPlace = "Tasmania"
	defaultBudgetDays  = 3

	defaultWeatherLocation = "Hobart, AU"
	defaultForecastCity    = "Hobart"
)

var (
	daysRe = regexp.MustCompile(`(\d+)\s*(?:day|days)`)

	budgetStopWordsRe = regexp.MustCompile(`\b(plan|my|trip|budget|budgets|cost|costs|cheap|estimate|calculate|expenses|itinerary|visit|travel|stay|around|a|an|the|in|to|at|of|and|with|for|on|is|what|how|much|would|will|it|be|me|about|please|day|days|week|weeks)\b`)

	weatherStopWordsRe = regexp.MustCompile(`\b(what|is|the|current|today|tomorrow|weather|in|at|for|forecast|next|week|rain|will|it|be|day|after|like|tell|me|about)\b`)

	digitsRe      = regexp.MustCompile(`\d+`)
	punctuationRe = regexp.MustCompile(`[^\w\s]`)
)

var forecastTerms = []string{"tomorrow", "forecast", "next", "week", "day after"}

// IsForecastQuery reports whether the text asks about future weather rather
// than present conditions.
func IsForecastQuery(query string) bool {
	q := strings.ToLower(query)
	for _, term := range forecastTerms {
		if strings.Contains(q, term) {
			return true
		}
	}
	return false
}

// ExtractBudgetInput pulls (place, days) out of free text. It cannot fail:
// anything unparseable collapses to the Tasmania / 3 day defaults.
func ExtractBudgetInput(query string) BudgetInput {
	input := BudgetInput{Place: defaultBudgetPlace, Days: defaultBudgetDays}
	q := strings.ToLower(query)

	if m := daysRe.FindStringSubmatch(q); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			input.Days = days
		}
	}

	place := budgetStopWordsRe.ReplaceAllString(q, "")
	place = digitsRe.ReplaceAllString(place, "")
	place = punctuationRe.ReplaceAllString(place, "")
	if place = titleCase(place); place != "" {
		input.Place = place
	}
	return input
}

// CleanWeatherLocation strips question words from free text and returns the
// remainder as a location, defaulting to Hobart.
func CleanWeatherLocation(query string) string {
	if loc := stripWeatherStopWords(query); loc != "" {
		return loc
	}
	return defaultWeatherLocation
}

func stripWeatherStopWords(text string) string {
	cleaned := weatherStopWordsRe.ReplaceAllString(strings.ToLower(text), "")
	cleaned = punctuationRe.ReplaceAllString(cleaned, "")
	return titleCase(cleaned)
}

// titleCase uppercases the first letter of each word, collapsing whitespace.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
