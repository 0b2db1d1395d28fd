package installer

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FinalizationStep computes derived values and final env var formatting
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	// Set derived values
	if state.EnvVars["TELEGRAM_TOKEN"] != "" {
		state.EnvVars["ENABLE_TELEGRAM"] = "true"
	} else {
		state.EnvVars["ENABLE_TELEGRAM"] = "false"
	}

	// Set defaults
	if state.EnvVars["TASBOT_DEBUG"] == "" {
		state.EnvVars["TASBOT_DEBUG"] = "0"
	}

	// Empty values would shadow the env defaults, drop them
	for key, value := range state.EnvVars {
		if value == "" {
			delete(state.EnvVars, key)
		}
	}

	// Signal completion
	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}
