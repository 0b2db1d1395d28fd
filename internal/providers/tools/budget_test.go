package tools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func budgetGuide() *fakeGuide {
	return &fakeGuide{facts: map[string]string{
		"accommodation": "Hostels in Hobart from $70 per night.\nCamping is cheaper out of town.",
		"food":          "Cheap cafes around $50 a day near Salamanca.",
		"vehicle":       "Car rental from aud 60 per day at the airport.",
	}}
}

func planBudget(t *testing.T, tl *Tools, input BudgetInput) string {
	t.Helper()
	raw, err := json.Marshal(input)
	require.NoError(t, err)
	out, err := tl.PlanTripBudget(context.Background(), raw)
	require.NoError(t, err)
	return out
}

func TestPlanTripBudget_PricedComponents(t *testing.T) {
	guide := budgetGuide()
	tl := newTestTools(guide, nil, nil, nil)

	out := planBudget(t, tl, BudgetInput{Place: "Hobart", Days: 4})

	assert.Contains(t, out, "**Trip Budget & Planner for Hobart (4 days)**")
	assert.Contains(t, out, "• Food: $50 × 4 = $200")
	assert.Contains(t, out, "• Accommodation: $70 × 4 = $280")
	assert.Contains(t, out, "• Vehicle Rental: $60 × 4 = $240")
	assert.Contains(t, out, "**Estimated Total: $720 AUD**")

	require.Len(t, guide.factQueries, 3)
	assert.Equal(t, "accommodation or camping options in Hobart", guide.factQueries[0])
	assert.Equal(t, "cheap food or cafes in Hobart", guide.factQueries[1])
	assert.Equal(t, "vehicle or car rental in Hobart", guide.factQueries[2])
}

func TestPlanTripBudget_UnpricedComponentExcludedFromTotal(t *testing.T) {
	guide := budgetGuide()
	guide.facts["food"] = "Plenty of nice cafes near the waterfront."
	tl := newTestTools(guide, nil, nil, nil)

	out := planBudget(t, tl, BudgetInput{Place: "Hobart", Days: 4})

	assert.Contains(t, out, "• Food: no price found in the guides")
	assert.Contains(t, out, "**Estimated Total: $520 AUD**")
}

func TestPlanTripBudget_ZeroDays(t *testing.T) {
	tl := newTestTools(budgetGuide(), nil, nil, nil)

	out := planBudget(t, tl, BudgetInput{Place: "Hobart", Days: 0})

	assert.Contains(t, out, "• Food: $50 per day")
	assert.Contains(t, out, "**No total estimate: trip length unknown.**")
	assert.NotContains(t, out, "×")
	assert.NotContains(t, out, "Estimated Total:")
}

func TestPlanTripBudget_NoPricesAnywhere(t *testing.T) {
	guide := &fakeGuide{facts: map[string]string{
		"accommodation": "Lovely spots to stay.",
		"food":          "Great food scene.",
		"vehicle":       "Several rental companies.",
	}}
	tl := newTestTools(guide, nil, nil, nil)

	out := planBudget(t, tl, BudgetInput{Place: "Hobart", Days: 4})

	assert.Contains(t, out, "**No price data found in the guides; total unavailable.**")
	assert.NotContains(t, out, "Estimated Total:")
}

func TestPlanTripBudget_MalformedInputUsesDefaults(t *testing.T) {
	guide := budgetGuide()
	tl := newTestTools(guide, nil, nil, nil)

	out, err := tl.PlanTripBudget(context.Background(), json.RawMessage(`not json`))

	require.NoError(t, err)
	assert.Contains(t, out, "**Trip Budget & Planner for Tasmania (3 days)**")
	assert.Contains(t, guide.factQueries[0], "in Tasmania")
}

func TestPlanTripBudget_GuideErrorListedDescriptively(t *testing.T) {
	guide := &fakeGuide{factsErr: errors.New("service down")}
	tl := newTestTools(guide, nil, nil, nil)

	out := planBudget(t, tl, BudgetInput{Place: "Hobart", Days: 2})

	assert.Contains(t, out, "**Accommodation / Camping:** No data found.")
	assert.Contains(t, out, "**No price data found in the guides; total unavailable.**")
}

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		text  string
		price int
		found bool
	}{
		{"Hostels from $70 per night", 70, true},
		{"AUD 55 gets you a decent meal", 55, true},
		{"around 40 per day", 40, true},
		{"no numbers here", 0, false},
		{"", 0, false},
		{"a single digit 5 is ignored", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			price, found := extractPrice(tt.text)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.price, price)
		})
	}
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, "No data found.", summarize("   "))
	assert.Equal(t, "line one line two", summarize("line one\nline two\nline three"))
	assert.Len(t, []rune(summarize(strings.Repeat("y", 400))), 180)
}
