package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Aeffchen-dev/checkin-roulette/internal/ui/theme"
)

// ChecklistItem is one toggleable entry.
type ChecklistItem struct {
	Label   string
	Checked bool
}

// Checklist is a vertical multi-select list.
type Checklist struct {
	Items  []ChecklistItem
	Cursor int
}

// NewChecklist creates a checklist with the given items.
func NewChecklist(items []ChecklistItem) Checklist {
	return Checklist{Items: items}
}

// Update handles cursor movement and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(c.Items) == 0 {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	case "space", " ":
		c.Items[c.Cursor].Checked = !c.Items[c.Cursor].Checked
	case "a":
		for i := range c.Items {
			c.Items[i].Checked = true
		}
	case "n":
		for i := range c.Items {
			c.Items[i].Checked = false
		}
	}

	return c, nil
}

// CheckedLabels returns the labels of all checked items.
func (c Checklist) CheckedLabels() []string {
	var out []string
	for _, item := range c.Items {
		if item.Checked {
			out = append(out, item.Label)
		}
	}
	return out
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, item := range c.Items {
		box := "[ ]"
		if item.Checked {
			box = "[x]"
		}

		line := "  " + box + " " + item.Label
		if i == c.Cursor {
			line = "▸ " + box + " " + item.Label
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
