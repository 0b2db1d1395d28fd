package assistant

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jayani-123/tasbot/internal/service/agent"
)

func TestExtractSources_CollectsAndCleans(t *testing.T) {
	steps := []agent.Step{
		{
			Action: "tassie_search",
			Observation: "**Answer:** The Overland Track takes about six days.\n" +
				"Plan for all weather.\n" +
				"Source: backpacker2.pdf\n" +
				"Source: overland-notes.pdf",
		},
		{
			Action: "web_search",
			Observation: "Search Results:\n" +
				"1. Overland Track\n" +
				"   Snippet: A 65 km hike.\n" +
				"   Source: https://parks.tas.gov.au/overland",
		},
	}

	got := ExtractSources(steps)
	require.Equal(t,
		"backpacker2.pdf\noverland-notes.pdf\nhttps://parks.tas.gov.au/overland",
		got,
	)
}

func TestExtractSources_DedupesFirstSeen(t *testing.T) {
	steps := []agent.Step{
		{Observation: "Source: backpacker2.pdf\nSource: https://example.com"},
		{Observation: "Source: https://example.com\nSource: backpacker2.pdf"},
	}

	require.Equal(t, "backpacker2.pdf\nhttps://example.com", ExtractSources(steps))
}

func TestExtractSources_StripsBoilerplate(t *testing.T) {
	steps := []agent.Step{
		{Observation: "### Sources Used:\n**Sources:** backpacker2.pdf\n• https://example.com\nSource - backpacker2.pdf"},
	}

	require.Equal(t, "backpacker2.pdf\nhttps://example.com", ExtractSources(steps))
}

func TestExtractSources_Idempotent(t *testing.T) {
	steps := []agent.Step{
		{Observation: "Source: backpacker2.pdf\nSource: https://parks.tas.gov.au"},
	}

	first := ExtractSources(steps)
	second := ExtractSources([]agent.Step{{Observation: first}})
	require.Equal(t, first, second)
}

func TestExtractSources_IgnoresPlainLines(t *testing.T) {
	steps := []agent.Step{
		{Observation: "The ferry runs twice a day.\nBook ahead in summer."},
	}

	require.Empty(t, ExtractSources(steps))
}

func TestCleanSources(t *testing.T) {
	in := "Sources: leftover header\nbackpacker2.pdf\n\nbackpacker2.pdf\nhttps://example.com"
	require.Equal(t, "backpacker2.pdf\nhttps://example.com", cleanSources(in))
}

func TestCleanSources_Empty(t *testing.T) {
	require.Empty(t, cleanSources(""))
}
