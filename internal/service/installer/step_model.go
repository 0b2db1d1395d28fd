package installer

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jayani-123/tasbot/internal/config"
	"github.com/Jayani-123/tasbot/internal/providers/llm"
)

// ModelStep lists the models the selected provider reports and lets the
// user pick one
type ModelStep struct {
	list     list.Model
	loading  bool
	fetching bool // Ensures we only trigger the API call once
	err      error
}

func NewModelStep() Step {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select AI Model"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return &ModelStep{
		list:    l,
		loading: true,
	}
}

func (s *ModelStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *ModelStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	// 1. Trigger fetch once when we enter the step
	if s.loading && !s.fetching {
		s.fetching = true
		cfg := &config.LLMConfig{
			Provider:         state.EnvVars["LLM_PROVIDER"],
			GeminiAPIKey:     state.EnvVars["GEMINI_API_KEY"],
			OpenAIAPIKey:     state.EnvVars["OPENAI_API_KEY"],
			AnthropicAPIKey:  state.EnvVars["ANTHROPIC_API_KEY"],
			OpenRouterAPIKey: state.EnvVars["OPENROUTER_API_KEY"],
			OllamaAPIKey:     state.EnvVars["OLLAMA_API_KEY"],
			OllamaBaseURL:    state.EnvVars["OLLAMA_BASE_URL"],
		}

		return s, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			p, err := llm.NewProvider(ctx, cfg)
			if err != nil {
				return errMsg(err)
			}
			models, err := p.Models(ctx)
			if err != nil {
				return errMsg(err)
			}

			var items []list.Item
			for _, mod := range models {
				items = append(items, item{
					id:    mod.ID,
					title: mod.Name,
					desc:  fmt.Sprintf("ID: %s | Context: %d", mod.ID, mod.ContextLength),
				})
			}
			return modelsMsg(items)
		}
	}

	// Update list size
	s.list.SetSize(width, height-4)

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case modelsMsg:
		s.list.SetItems(msg)
		s.loading = false
		s.fetching = false
		return s, nil

	case errMsg:
		s.loading = false
		s.fetching = false
		s.err = msg
		return s, nil // Return nil command to break the error loop

	case tea.KeyMsg:
		// If there's an error, allow retry with Enter
		if s.err != nil {
			if msg.String() == "enter" {
				s.err = nil
				s.loading = true
				s.fetching = false
				return s, nil
			}
			return s, nil
		}

		if msg.String() == "enter" {
			wasFiltering := s.list.FilterState() == list.Filtering
			s.list, cmd = s.list.Update(msg)

			if wasFiltering || s.list.FilterState() == list.Filtering {
				return s, cmd
			}

			if i, ok := s.list.SelectedItem().(item); ok {
				state.EnvVars["LLM_MODEL"] = i.id
				return nil, nil
			}
			return s, cmd
		}
	}

	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s *ModelStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error fetching models: %v", s.err)) +
			"\n\nCheck your API key and internet connection.\n\n(press enter to retry, ctrl+c to quit)\n"
	}
	if s.loading {
		return "Fetching models from the provider...\n"
	}
	return s.list.View()
}
