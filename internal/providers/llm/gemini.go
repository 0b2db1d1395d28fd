package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Jayani-123/tasbot/internal/core"
)

// Gemini talks to Google's OpenAI compatibility layer. The API mounts at
// /v1beta/openai instead of /v1, hence the explicit ChatPath.
type Gemini struct {
	*OpenAICompatible
}

func NewGemini(apiKey, model string) *Gemini {
	return &Gemini{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:    "https://generativelanguage.googleapis.com/v1beta/openai",
			APIKey:     apiKey,
			Model:      model,
			ChatPath:   "/chat/completions",
			AuthHeader: "Authorization",
			AuthPrefix: "Bearer ",
		}),
	}
}

func (g *Gemini) Models(ctx context.Context) ([]core.Model, error) {
	headers := map[string]string{
		"Authorization": "Bearer " + g.apiKey,
	}

	resp, err := g.doRequest(ctx, http.MethodGet, "/models", nil, headers)
	if err != nil {
		return nil, fmt.Errorf("fetch models: %w", err)
	}

	data, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	var apiResp struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &apiResp); err != nil {
		return nil, fmt.Errorf("decode models response: %w", err)
	}

	models := make([]core.Model, 0, len(apiResp.Data))
	for _, m := range apiResp.Data {
		// Ids come back as "models/gemini-2.0-flash"
		id := strings.TrimPrefix(m.ID, "models/")
		models = append(models, core.Model{
			ID:   id,
			Name: id,
		})
	}
	return models, nil
}
