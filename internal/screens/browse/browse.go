// Package browse renders the card view: one slide at a time, advanced by
// keyboard, tap zones or horizontal drags.
package browse

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Aeffchen-dev/checkin-roulette/internal/deck"
	"github.com/Aeffchen-dev/checkin-roulette/internal/gesture"
	"github.com/Aeffchen-dev/checkin-roulette/internal/nav"
	"github.com/Aeffchen-dev/checkin-roulette/internal/router"
	"github.com/Aeffchen-dev/checkin-roulette/internal/screen"
	"github.com/Aeffchen-dev/checkin-roulette/internal/screens/categories"
	"github.com/Aeffchen-dev/checkin-roulette/internal/source"
	"github.com/Aeffchen-dev/checkin-roulette/internal/ui/components"
	"github.com/Aeffchen-dev/checkin-roulette/internal/ui/layout"
	"github.com/Aeffchen-dev/checkin-roulette/internal/ui/theme"
)

// settleDelay is how long the direction cue stays visible after a move.
const settleDelay = 180 * time.Millisecond

// cellDragThreshold replaces the pixel threshold in a cell grid. Terminal
// cells are far coarser than pixels, so a handful of columns is already a
// deliberate drag.
const cellDragThreshold = 3

// settleMsg clears the transition cue after the settle delay.
type settleMsg struct{}

// BrowseScreen shows the current slide as a full-width card.
type BrowseScreen struct {
	ctrl   *nav.Controller
	origin source.Origin

	drag *gesture.Drag

	// lastWidth caches the most recent render width so release-position
	// tap zones can be resolved during Update.
	lastWidth int
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)
var _ screen.BadgeProvider = (*BrowseScreen)(nil)

// New creates the browse screen over a loaded controller.
func New(ctrl *nav.Controller, origin source.Origin) *BrowseScreen {
	return &BrowseScreen{
		ctrl:   ctrl,
		origin: origin,
		drag:   gesture.NewDrag(cellDragThreshold, true),
	}
}

func (b *BrowseScreen) Init() tea.Cmd {
	return nil
}

func (b *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case settleMsg:
		b.ctrl.ClearTransition()
		return b, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "d":
			b.ctrl.SetDeepModeEnabled(!b.ctrl.DeepModeEnabled())
			return b, nil
		case "c":
			return b, func() tea.Msg {
				return router.PushScreenMsg{Screen: categories.New(b.ctrl)}
			}
		}
		return b, b.apply(gesture.KeyCommand(msg.String()))

	case tea.MouseClickMsg:
		m := tea.Mouse(msg)
		if m.Button == tea.MouseLeft {
			b.drag.Begin(m.X, m.Y)
		}
		return b, nil

	case tea.MouseReleaseMsg:
		m := tea.Mouse(msg)
		cmd := b.drag.End(m.X, m.Y)
		if cmd == gesture.CommandNone {
			cmd = gesture.ZoneCommand(m.X, b.lastWidth)
		}
		return b, b.apply(cmd)
	}

	return b, nil
}

// apply executes a gesture command against the controller and schedules the
// cue settle when a move actually happened.
func (b *BrowseScreen) apply(cmd gesture.Command) tea.Cmd {
	switch cmd {
	case gesture.CommandAdvance:
		b.ctrl.Advance()
	case gesture.CommandRetreat:
		b.ctrl.Retreat()
	default:
		return nil
	}
	if b.ctrl.Direction() == nav.DirectionNone {
		return nil
	}
	return tea.Tick(settleDelay, func(time.Time) tea.Msg {
		return settleMsg{}
	})
}

func (b *BrowseScreen) View(width, height int) string {
	b.lastWidth = width

	slide, ok := b.ctrl.CurrentSlide()
	if !ok {
		empty := theme.Subtitle.Width(width).Render(
			"No questions match the current filters.\n\nPress c to adjust categories or d to include deep questions.")
		return lipgloss.NewStyle().Width(width).Height(height).Align(lipgloss.Center, lipgloss.Center).Render(empty)
	}

	cardWidth := width * 2 / 3
	if cardWidth < 30 {
		cardWidth = width - 4
	}
	if cardWidth < 10 {
		cardWidth = 10
	}

	var accent color.Color
	var label string
	if slide.Kind == deck.SlideIntro {
		accent = theme.Primary
		label = "WELCOME"
	} else {
		accent = theme.CategoryColor(b.ctrl.CategoryVariant(slide.Record.Category))
		label = strings.ToUpper(slide.Record.Category)
		if slide.Record.Depth == deck.DepthDeep {
			label += " · deep"
		} else {
			label += " · light"
		}
	}

	header := lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Render(label)

	question := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(cardWidth - 6).
		Align(lipgloss.Center).
		Render(slide.Record.Text)

	bar := components.PositionBar{
		Index: b.ctrl.Index(),
		Total: b.ctrl.Len(),
		Width: cardWidth - 6,
		Color: accent,
	}

	position := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d / %d", b.ctrl.Index()+1, b.ctrl.Len()))

	card := lipgloss.NewStyle().
		Width(cardWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Align(lipgloss.Center).
		Render(header + "\n\n" + question + "\n\n" + bar.View() + "\n" + position)

	// Direction cues flank the card while a transition is settling.
	leftCue, rightCue := "  ", "  "
	switch b.ctrl.Direction() {
	case nav.DirectionForward:
		rightCue = lipgloss.NewStyle().Foreground(accent).Bold(true).Render("▶ ")
	case nav.DirectionBackward:
		leftCue = lipgloss.NewStyle().Foreground(accent).Bold(true).Render(" ◀")
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, leftCue, card, rightCue)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(row)
}

func (b *BrowseScreen) Title() string {
	return "Browse"
}

// HeaderBadge reports depth mode and data origin.
func (b *BrowseScreen) HeaderBadge() string {
	mode := "light"
	if b.ctrl.DeepModeEnabled() {
		mode = "deep"
	}
	return mode + " · " + b.origin.String() + "  "
}

// KeyHints lists the browse key bindings for the footer.
func (b *BrowseScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←/→", Description: "Prev/Next"},
		{Key: "d", Description: "Depth"},
		{Key: "c", Description: "Categories"},
		{Key: "Esc", Description: "Back"},
	}
}
