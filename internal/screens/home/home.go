// Package home is the main menu: jump into browsing, tune filters, refresh
// the question data.
package home

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/Aeffchen-dev/checkin-roulette/internal/dataset"
	"github.com/Aeffchen-dev/checkin-roulette/internal/nav"
	"github.com/Aeffchen-dev/checkin-roulette/internal/router"
	"github.com/Aeffchen-dev/checkin-roulette/internal/screen"
	"github.com/Aeffchen-dev/checkin-roulette/internal/screens/browse"
	"github.com/Aeffchen-dev/checkin-roulette/internal/screens/categories"
	"github.com/Aeffchen-dev/checkin-roulette/internal/source"
	"github.com/Aeffchen-dev/checkin-roulette/internal/ui/components"
	"github.com/Aeffchen-dev/checkin-roulette/internal/ui/theme"
)

// refreshedMsg carries the result of a background data refresh.
type refreshedMsg struct {
	ds dataset.Dataset
}

// HomeScreen is the entry screen after loading completes.
type HomeScreen struct {
	ctrl    *nav.Controller
	loader  *source.Loader
	dsOpts  dataset.Options
	origin  source.Origin
	log     *zap.Logger
	menu    components.Menu
	loading bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.BadgeProvider = (*HomeScreen)(nil)

// New creates the home screen over a loaded controller.
func New(ctrl *nav.Controller, loader *source.Loader, dsOpts dataset.Options, origin source.Origin, log *zap.Logger) *HomeScreen {
	if log == nil {
		log = zap.NewNop()
	}
	h := &HomeScreen{
		ctrl:   ctrl,
		loader: loader,
		dsOpts: dsOpts,
		origin: origin,
		log:    log,
	}
	h.menu = components.NewMenu(h.menuItems())
	return h
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	depthLabel := "DEPTH: LIGHT ONLY"
	if h.ctrl.DeepModeEnabled() {
		depthLabel = "DEPTH: LIGHT + DEEP"
	}

	return []components.MenuItem{
		{Label: "BROWSE QUESTIONS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: browse.New(h.ctrl, h.origin)}
			}
		}},
		{Label: "CATEGORIES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: categories.New(h.ctrl)}
			}
		}},
		{Label: depthLabel, Action: func() tea.Cmd {
			h.ctrl.SetDeepModeEnabled(!h.ctrl.DeepModeEnabled())
			h.rebuildMenu()
			return nil
		}},
		{Label: "REFRESH DATA", Action: func() tea.Cmd {
			return h.refreshCmd()
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

// rebuildMenu regenerates labels after a state change, keeping the cursor.
func (h *HomeScreen) rebuildMenu() {
	selected := h.menu.Selected
	h.menu = components.NewMenu(h.menuItems())
	h.menu.Selected = selected
}

// refreshCmd reruns the source chain off the UI loop.
func (h *HomeScreen) refreshCmd() tea.Cmd {
	h.loading = true
	loader := h.loader
	opts := h.dsOpts
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return refreshedMsg{ds: dataset.Load(ctx, loader, opts)}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(refreshedMsg); ok {
		h.ctrl.SetData(m.ds.Records, m.ds.Intro)
		h.origin = m.ds.Origin
		h.loading = false
		h.rebuildMenu()
		h.log.Info("data refreshed",
			zap.String("origin", m.ds.Origin.String()),
			zap.Int("records", len(m.ds.Records)))
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("Check-in Roulette")
	subtitle := theme.Subtitle.Render("Conversation starters for better check-ins")

	stats := fmt.Sprintf("%d questions · %d categories · %s",
		h.ctrl.RecordCount(),
		len(h.ctrl.AvailableCategories()),
		h.origin)
	if h.loading {
		stats = "refreshing..."
	}
	statsLine := lipgloss.NewStyle().Foreground(theme.TextDim).Align(lipgloss.Center).Render(stats)

	body := title + "\n" + subtitle + "\n\n" + h.menu.View() + "\n" + statsLine

	box := theme.Card.Render(body)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// HeaderBadge reports depth mode and data origin.
func (h *HomeScreen) HeaderBadge() string {
	mode := "light"
	if h.ctrl.DeepModeEnabled() {
		mode = "deep"
	}
	return mode + " · " + h.origin.String() + "  "
}
