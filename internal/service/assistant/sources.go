package assistant

import (
	"strings"

	"github.com/Jayani-123/tasbot/internal/service/agent"
)

// sourceMarkers select observation lines worth citing.
var sourceMarkers = []string{
	"Source:", "Sources:", "tassie_search", "web_search",
	"http", "https", "backpacker2.pdf",
}

// stripFragments is boilerplate removed from citation lines, longest
// fragments first so the shorter ones do not leave residue.
var stripFragments = []string{
	"### Sources Used:", "**Sources:**", "Sources:", "Source -", "•",
}

// ExtractSources collects citation-looking lines from tool observations,
// dedupes them by exact string and keeps first-seen order. Running it over
// a step holding its own output returns the same text.
func ExtractSources(steps []agent.Step) string {
	var ordered []string
	seen := make(map[string]bool)

	for _, step := range steps {
		for _, line := range strings.Split(step.Observation, "\n") {
			if !hasSourceMarker(line) {
				continue
			}
			for _, frag := range stripFragments {
				line = strings.ReplaceAll(line, frag, "")
			}
			line = strings.TrimSpace(line)
			line = strings.TrimSpace(strings.TrimPrefix(line, "Source:"))
			if line == "" || seen[line] {
				continue
			}
			seen[line] = true
			ordered = append(ordered, line)
		}
	}
	return strings.Join(ordered, "\n")
}

func hasSourceMarker(line string) bool {
	for _, marker := range sourceMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// cleanSources drops leftover "Sources" headers and dedupes once more
// before the reply is rendered.
func cleanSources(sources string) string {
	var out []string
	seen := make(map[string]bool)

	for _, line := range strings.Split(sources, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(strings.ToLower(line), "sources") {
			continue
		}
		if seen[line] {
			continue
		}
		seen[line] = true
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
