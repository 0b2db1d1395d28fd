package installer

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RetrievalStep collects the base URL of the guide retrieval service. The
// assistant cannot start without it, so empty input is rejected.
type RetrievalStep struct {
	input textinput.Model
}

func NewRetrievalStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "http://localhost:8001"

	return &RetrievalStep{
		input: ti,
	}
}

func (s *RetrievalStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *RetrievalStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			value := strings.TrimSpace(s.input.Value())
			if value == "" {
				return s, cmd
			}
			state.EnvVars["RETRIEVAL_BASE_URL"] = value
			return nil, nil
		}
	}
	return s, cmd
}

func (s *RetrievalStep) View(state *InstallState) string {
	return "Enter the URL of your guide retrieval service:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}
