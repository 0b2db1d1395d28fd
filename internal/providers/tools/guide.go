package tools

import (
	"context"
	"fmt"
	"strings"
)

// Guide answers from the travel document corpus. Cited documents are
// appended as Source: lines so the source extractor can pick them up.
func (t *Tools) Guide(ctx context.Context, query string) string {
	resp, err := t.guide.Answer(ctx, query)
	if err != nil {
		return fmt.Sprintf("Guide lookup error: %v", err)
	}

	answer := strings.TrimSpace(resp.Answer)
	if answer == "" {
		answer = "No answer generated."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Answer:** %s", answer)
	if len(resp.Sources) > 0 {
		b.WriteString("\n")
		for _, src := range resp.Sources {
			fmt.Fprintf(&b, "\nSource: %s", src)
		}
	}
	return b.String()
}
