package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Aeffchen-dev/checkin-roulette/internal/ui/theme"
)

// Spinner wraps bubbles/spinner with app styling.
type Spinner struct {
	model spinner.Model
}

// NewSpinner creates a themed spinner.
func NewSpinner() Spinner {
	m := spinner.New()
	m.Spinner = spinner.Dot
	m.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return Spinner{model: m}
}

// Tick returns the command that starts the animation.
func (s Spinner) Tick() tea.Cmd {
	return s.model.Tick
}

// Update advances the animation.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.model, cmd = s.model.Update(msg)
	return s, cmd
}

// View renders the current frame.
func (s Spinner) View() string {
	return s.model.View()
}
