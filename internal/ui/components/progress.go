package components

import (
	imgcolor "image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Aeffchen-dev/checkin-roulette/internal/ui/theme"
)

// PositionBar visualizes where the current slide sits in the deck.
type PositionBar struct {
	Index int
	Total int
	Width int
	Color imgcolor.Color
}

// View renders the bar. The filled portion grows with the position; a
// single-slide deck renders fully filled.
func (p PositionBar) View() string {
	if p.Total <= 0 || p.Width < 4 {
		return ""
	}

	filled := p.Width
	if p.Total > 1 {
		filled = (p.Index * p.Width) / (p.Total - 1)
	}
	if filled > p.Width {
		filled = p.Width
	}
	if filled < 1 {
		filled = 1
	}

	color := p.Color
	if color == nil {
		color = theme.Secondary
	}

	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("━", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", p.Width-filled))

	return bar
}
