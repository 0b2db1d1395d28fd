package installer

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// WeatherKeyStep collects the OpenWeatherMap API key used by the weather
// tool.
type WeatherKeyStep struct {
	input textinput.Model
}

func NewWeatherKeyStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "OpenWeatherMap API key"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &WeatherKeyStep{
		input: ti,
	}
}

func (s *WeatherKeyStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *WeatherKeyStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			value := strings.TrimSpace(s.input.Value())
			if value == "" {
				return s, cmd
			}
			state.EnvVars["OPENWEATHER_API_KEY"] = value
			return nil, nil
		}
	}
	return s, cmd
}

func (s *WeatherKeyStep) View(state *InstallState) string {
	return "Enter your OpenWeatherMap API Key:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}
