// Package loading is the startup screen: it runs the source chain in the
// background and swaps in the home screen when the deck is ready.
package loading

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/Aeffchen-dev/checkin-roulette/internal/dataset"
	"github.com/Aeffchen-dev/checkin-roulette/internal/nav"
	"github.com/Aeffchen-dev/checkin-roulette/internal/router"
	"github.com/Aeffchen-dev/checkin-roulette/internal/screen"
	"github.com/Aeffchen-dev/checkin-roulette/internal/screens/home"
	"github.com/Aeffchen-dev/checkin-roulette/internal/source"
	"github.com/Aeffchen-dev/checkin-roulette/internal/ui/components"
	"github.com/Aeffchen-dev/checkin-roulette/internal/ui/theme"
)

// loadedMsg carries the prepared dataset back onto the UI loop.
type loadedMsg struct {
	ds dataset.Dataset
}

// LoadingScreen fetches and prepares the deck before handing off to home.
type LoadingScreen struct {
	ctrl    *nav.Controller
	loader  *source.Loader
	dsOpts  dataset.Options
	log     *zap.Logger
	spinner components.Spinner
}

var _ screen.Screen = (*LoadingScreen)(nil)

// New creates the loading screen.
func New(ctrl *nav.Controller, loader *source.Loader, dsOpts dataset.Options, log *zap.Logger) *LoadingScreen {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoadingScreen{
		ctrl:    ctrl,
		loader:  loader,
		dsOpts:  dsOpts,
		log:     log,
		spinner: components.NewSpinner(),
	}
}

func (l *LoadingScreen) Init() tea.Cmd {
	loader := l.loader
	opts := l.dsOpts
	load := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return loadedMsg{ds: dataset.Load(ctx, loader, opts)}
	}
	return tea.Batch(l.spinner.Tick(), load)
}

func (l *LoadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(loadedMsg); ok {
		l.ctrl.SetData(m.ds.Records, m.ds.Intro)
		l.log.Info("deck loaded",
			zap.String("origin", m.ds.Origin.String()),
			zap.Int("records", len(m.ds.Records)))
		next := home.New(l.ctrl, l.loader, l.dsOpts, m.ds.Origin, l.log)
		return l, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}

	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return l, cmd
}

func (l *LoadingScreen) View(width, height int) string {
	body := l.spinner.View() + " " + theme.Body.Render("Fetching questions...")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (l *LoadingScreen) Title() string {
	return "Loading"
}
