package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Matches "$70", "aud 50", "40 per night", "from 60". First hit wins.
var priceRe = regexp.MustCompile(`(?:\$|aud\s*)?(\d{2,3})(?:\s*per\s*(?:night|day))?`)

type budgetComponent struct {
	label    string
	summary  string
	price    int
	hasPrice bool
}

// PlanTripBudget builds a trip budget from guide data: three scoped lookups,
// price extraction per component, subtotals only for components where a real
// price appeared. The signature matches NativeHandler but the fast path is
// the only caller.
func (t *Tools) PlanTripBudget(ctx context.Context, args json.RawMessage) (string, error) {
	var input BudgetInput
	if err := json.Unmarshal(args, &input); err != nil {
		input = BudgetInput{Place: defaultBudgetPlace, Days: defaultBudgetDays}
	}
	if input.Place == "" {
		input.Place = defaultBudgetPlace
	}
	if input.Days < 0 {
		input.Days = 0
	}

	stay := t.budgetComponent(ctx, "Accommodation", fmt.Sprintf("accommodation or camping options in %s", input.Place))
	food := t.budgetComponent(ctx, "Food", fmt.Sprintf("cheap food or cafes in %s", input.Place))
	rental := t.budgetComponent(ctx, "Vehicle Rental", fmt.Sprintf("vehicle or car rental in %s", input.Place))

	var b strings.Builder
	fmt.Fprintf(&b, "**Trip Budget & Planner for %s (%d days)**\n\n", input.Place, input.Days)
	fmt.Fprintf(&b, "**Accommodation / Camping:** %s\n", stay.summary)
	fmt.Fprintf(&b, "**Food Options:** %s\n", food.summary)
	fmt.Fprintf(&b, "**Vehicle Rentals:** %s\n\n", rental.summary)
	b.WriteString("**Estimated Cost Breakdown:**\n")

	total := 0
	priced := false
	for _, c := range []budgetComponent{food, stay, rental} {
		switch {
		case !c.hasPrice:
			fmt.Fprintf(&b, "• %s: no price found in the guides\n", c.label)
		case input.Days == 0:
			fmt.Fprintf(&b, "• %s: $%d per day\n", c.label, c.price)
			priced = true
		default:
			subtotal := c.price * input.Days
			fmt.Fprintf(&b, "• %s: $%d × %d = $%d\n", c.label, c.price, input.Days, subtotal)
			total += subtotal
			priced = true
		}
	}

	b.WriteString("----------------------------------\n")
	switch {
	case input.Days == 0:
		b.WriteString("**No total estimate: trip length unknown.**")
	case !priced:
		b.WriteString("**No price data found in the guides; total unavailable.**")
	default:
		fmt.Fprintf(&b, "**Estimated Total: $%d AUD**", total)
	}

	return b.String(), nil
}

func (t *Tools) budgetComponent(ctx context.Context, label, query string) budgetComponent {
	c := budgetComponent{label: label, summary: "No data found."}

	text, err := t.guide.Facts(ctx, query)
	if err != nil || strings.TrimSpace(text) == "" {
		return c
	}

	c.summary = summarize(text)
	c.price, c.hasPrice = extractPrice(text)
	return c
}

func extractPrice(text string) (int, bool) {
	m := priceRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return 0, false
	}
	price, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return price, true
}

// summarize keeps the first two lines of a guide answer, capped at 180 runes.
func summarize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return "No data found."
	}
	lines := strings.Split(text, "\n")
	if len(lines) > 2 {
		lines = lines[:2]
	}
	s := strings.Join(lines, " ")
	if runes := []rune(s); len(runes) > 180 {
		s = string(runes[:180])
	}
	return s
}
