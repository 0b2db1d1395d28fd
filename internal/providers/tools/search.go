package tools

import (
	"context"
	"fmt"
	"strings"
)

// WebSearch runs a web query and formats numbered results with their URLs
// on Source: lines.
func (t *Tools) WebSearch(ctx context.Context, query string) string {
	results, err := t.searcher.Search(ctx, query, t.maxSearchResults)
	if err != nil {
		return fmt.Sprintf("Search error: %v", err)
	}
	if len(results) == 0 {
		return "No search results found."
	}
	if len(results) > t.maxSearchResults {
		results = results[:t.maxSearchResults]
	}

	formatted := make([]string, 0, len(results))
	for i, res := range results {
		title := res.Title
		if title == "" {
			title = "No title"
		}
		snippet := res.Snippet
		if runes := []rune(snippet); len(runes) > 200 {
			snippet = string(runes[:200]) + "..."
		}
		link := res.URL
		if link == "" {
			link = "No URL"
		}
		formatted = append(formatted, fmt.Sprintf("%d. %s\n   Snippet: %s\n   Source: %s", i+1, title, snippet, link))
	}

	return "Search Results:\n" + strings.Join(formatted, "\n\n")
}
