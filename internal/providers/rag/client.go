// Package rag talks to the external document-retrieval service that answers
// questions over the travel corpus. Ranking and generation happen on the
// service side; this client only carries queries and answers.
package rag

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Jayani-123/tasbot/internal/config"
)

const queryPath = "/v1/query"

type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewClient(cfg *config.RetrievalConfig) *Client {
	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

type queryRequest struct {
	Query string `json:"query"`
	Mode  string `json:"mode,omitempty"`
}

type queryResponse struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources,omitempty"`
}

// Response is one grounded answer with the corpus documents it cites.
type Response struct {
	Answer  string
	Sources []string
}

// Answer asks for a full grounded answer to the query.
func (c *Client) Answer(ctx context.Context, query string) (Response, error) {
	return c.query(ctx, queryRequest{Query: query})
}

// Facts asks for a short fact-only answer. The budget planner uses this mode
// so price extraction runs over a sentence, not an essay.
func (c *Client) Facts(ctx context.Context, query string) (string, error) {
	resp, err := c.query(ctx, queryRequest{Query: query, Mode: "concise"})
	if err != nil {
		return "", err
	}
	return resp.Answer, nil
}

func (c *Client) query(ctx context.Context, reqBody queryRequest) (Response, error) {
	data, err := json.Marshal(reqBody)
	if err != nil {
		return Response{}, fmt.Errorf("marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+queryPath, bytes.NewReader(data))
	if err != nil {
		return Response{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("retrieval request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Response{}, fmt.Errorf("retrieval service http %d: %s", resp.StatusCode, string(body))
	}

	var parsed queryResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Response{}, fmt.Errorf("parse response: %w", err)
	}
	return Response{Answer: parsed.Answer, Sources: parsed.Sources}, nil
}
