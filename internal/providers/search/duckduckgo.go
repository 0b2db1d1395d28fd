package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/inbucket/html2text"

	"github.com/Jayani-123/tasbot/internal/core"
)

const duckDuckGoBaseURL = "https://api.duckduckgo.com"

// DuckDuckGo queries the Instant Answer API. It returns the abstract plus
// related topics; result snippets arrive as HTML and are flattened to text.
type DuckDuckGo struct {
	client  *http.Client
	baseURL string
}

func NewDuckDuckGo() *DuckDuckGo {
	return &DuckDuckGo{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: duckDuckGoBaseURL,
	}
}

func (d *DuckDuckGo) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	if maxResults <= 0 {
		maxResults = 3
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("no_redirect", "1")
	q.Set("skip_disambig", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"/?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", core.TasUserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo http %d", resp.StatusCode)
	}

	var parsed struct {
		Heading        string `json:"Heading"`
		AbstractText   string `json:"AbstractText"`
		Abstract       string `json:"Abstract"`
		AbstractSource string `json:"AbstractSource"`
		AbstractURL    string `json:"AbstractURL"`
		Results        []struct {
			Text     string `json:"Text"`
			Result   string `json:"Result"`
			FirstURL string `json:"FirstURL"`
		} `json:"Results"`
		RelatedTopics []struct {
			Text     string `json:"Text"`
			FirstURL string `json:"FirstURL"`
		} `json:"RelatedTopics"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	results := make([]Result, 0, maxResults)

	if snippet := firstNonEmpty(parsed.AbstractText, flattenHTML(parsed.Abstract)); snippet != "" {
		title := parsed.AbstractSource
		if title == "" {
			title = parsed.Heading
		}
		results = append(results, Result{Title: title, Snippet: snippet, URL: parsed.AbstractURL})
	}

	for _, r := range parsed.Results {
		if len(results) >= maxResults {
			break
		}
		if r.FirstURL == "" {
			continue
		}
		results = append(results, Result{
			Title:   r.Text,
			Snippet: firstNonEmpty(flattenHTML(r.Result), r.Text),
			URL:     r.FirstURL,
		})
	}

	// Category nodes in RelatedTopics have no Text/FirstURL and are skipped.
	for _, topic := range parsed.RelatedTopics {
		if len(results) >= maxResults {
			break
		}
		if topic.Text == "" || topic.FirstURL == "" {
			continue
		}
		title := topic.Text
		if len(title) > 100 {
			title = title[:100]
		}
		results = append(results, Result{Title: title, Snippet: topic.Text, URL: topic.FirstURL})
	}

	return results, nil
}

func flattenHTML(s string) string {
	if s == "" || !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}
	text, err := html2text.FromString(s, html2text.Options{OmitLinks: true})
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(text)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
