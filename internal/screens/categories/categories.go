// Package categories is the multi-select filter screen. Toggles are staged
// locally and applied to the controller only on enter, so backing out with
// esc leaves the selection untouched.
package categories

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Aeffchen-dev/checkin-roulette/internal/nav"
	"github.com/Aeffchen-dev/checkin-roulette/internal/router"
	"github.com/Aeffchen-dev/checkin-roulette/internal/screen"
	"github.com/Aeffchen-dev/checkin-roulette/internal/ui/components"
	"github.com/Aeffchen-dev/checkin-roulette/internal/ui/layout"
	"github.com/Aeffchen-dev/checkin-roulette/internal/ui/theme"
)

// CategoriesScreen lets the user pick which categories stay in the deck.
type CategoriesScreen struct {
	ctrl *nav.Controller
	list components.Checklist
}

var _ screen.Screen = (*CategoriesScreen)(nil)
var _ screen.KeyHintProvider = (*CategoriesScreen)(nil)

// New snapshots the controller's current selection into a checklist.
func New(ctrl *nav.Controller) *CategoriesScreen {
	selected := ctrl.SelectedCategories()

	var items []components.ChecklistItem
	for _, cat := range ctrl.AvailableCategories() {
		items = append(items, components.ChecklistItem{
			Label:   cat,
			Checked: selected[cat],
		})
	}

	return &CategoriesScreen{
		ctrl: ctrl,
		list: components.NewChecklist(items),
	}
}

func (c *CategoriesScreen) Init() tea.Cmd {
	return nil
}

func (c *CategoriesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		next := make(map[string]bool)
		for _, label := range c.list.CheckedLabels() {
			next[label] = true
		}
		c.ctrl.SetSelectedCategories(next)
		return c, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	c.list, cmd = c.list.Update(msg)
	return c, cmd
}

func (c *CategoriesScreen) View(width, height int) string {
	title := theme.Title.Render("Pick your categories")
	hint := theme.Hint.Render("Unchecking everything empties the deck.")

	body := title + "\n\n" + c.list.View() + "\n" + hint

	box := theme.Card.Render(body)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}

func (c *CategoriesScreen) Title() string {
	return "Categories"
}

// KeyHints lists the selection key bindings for the footer.
func (c *CategoriesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Toggle"},
		{Key: "a/n", Description: "All/None"},
		{Key: "Enter", Description: "Apply"},
		{Key: "Esc", Description: "Cancel"},
	}
}
