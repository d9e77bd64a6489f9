package categories

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Aeffchen-dev/checkin-roulette/internal/deck"
	"github.com/Aeffchen-dev/checkin-roulette/internal/nav"
	"github.com/Aeffchen-dev/checkin-roulette/internal/router"
)

func newTestController() *nav.Controller {
	ctrl := nav.New()
	ctrl.SetData([]deck.Record{
		{Category: "team", Text: "a", Depth: deck.DepthLight},
		{Category: "personal", Text: "b", Depth: deck.DepthLight},
		{Category: "fun", Text: "c", Depth: deck.DepthLight},
	}, nil)
	return ctrl
}

func keyPress(code rune, text string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Text: text}
}

func TestStartsWithCurrentSelection(t *testing.T) {
	ctrl := newTestController()
	ctrl.SetSelectedCategories(map[string]bool{"team": true})

	c := New(ctrl)

	checked := c.list.CheckedLabels()
	if len(checked) != 1 || checked[0] != "team" {
		t.Errorf("checked = %v, want [team]", checked)
	}
	if len(c.list.Items) != 3 {
		t.Errorf("items = %d, want 3", len(c.list.Items))
	}
}

func TestEnterAppliesAndPops(t *testing.T) {
	ctrl := newTestController()
	c := New(ctrl)

	// Uncheck the first category, then apply.
	c.Update(keyPress(' ', " "))
	_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}

	selected := ctrl.SelectedCategories()
	if selected["team"] {
		t.Error("team should be deselected after apply")
	}
	if !selected["personal"] || !selected["fun"] {
		t.Errorf("selection = %v, want personal and fun kept", selected)
	}
}

func TestTogglesAreStagedUntilEnter(t *testing.T) {
	ctrl := newTestController()
	c := New(ctrl)

	c.Update(keyPress('n', "n"))

	// Nothing applied yet; the controller still has everything selected.
	if len(ctrl.SelectedCategories()) != 3 {
		t.Errorf("controller selection changed before apply: %v", ctrl.SelectedCategories())
	}

	c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	for cat, on := range ctrl.SelectedCategories() {
		if on {
			t.Errorf("category %q still selected after applying none", cat)
		}
	}
}

func TestEmptySelectionEmptiesDeck(t *testing.T) {
	ctrl := newTestController()
	c := New(ctrl)

	c.Update(keyPress('n', "n"))
	c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if ctrl.Len() != 0 {
		t.Errorf("deck length = %d, want 0 with nothing selected", ctrl.Len())
	}
	if _, ok := ctrl.CurrentSlide(); ok {
		t.Error("no current slide expected on an empty deck")
	}
}
