// Package nav owns the navigable slide deck: the canonical record order,
// the filter state, the derived deck and the current position. All state
// mutation goes through its operations; the projection itself is a pure
// function in the deck package.
package nav

import (
	"github.com/Aeffchen-dev/checkin-roulette/internal/deck"
)

// Direction is the pending transition direction the presentation layer
// animates. It is set synchronously by Advance/Retreat and cleared by the
// presentation once its transition has settled; nothing in the controller
// depends on wall-clock timing.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionForward
	DirectionBackward
)

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	default:
		return "none"
	}
}

// Controller drives index-based navigation over the projected deck.
//
// Rapid operation bursts are last-write-wins: every Advance/Retreat applies
// its index change immediately and overwrites the pending direction. The
// settle delay between transitions is purely presentational.
type Controller struct {
	records []deck.Record
	intro   *deck.Record
	filter  deck.FilterState

	slides []deck.Slide
	index  int
	dir    Direction

	catIndex map[string]int
}

// New returns an empty controller. Call SetData once a record set is loaded.
func New() *Controller {
	return &Controller{
		filter:   deck.FilterState{Selected: map[string]bool{}, DeepMode: true},
		catIndex: map[string]int{},
	}
}

// SetData installs a freshly loaded record set (already in canonical
// shuffled order) and the designated intro record, replacing everything
// derived from the previous load. The filter resets to neutral: all
// categories selected, deep mode on.
func (c *Controller) SetData(records []deck.Record, intro *deck.Record) {
	c.records = records
	c.intro = intro
	c.filter = deck.NewFilterState(records)
	c.catIndex = deck.CategoryIndex(records)
	c.rebuild()
}

// rebuild recomputes the deck from scratch and resets the position. The
// reset is unconditional even when the previous index would still be valid;
// a filter change may have removed the slide being viewed and a stale index
// would point at an arbitrary survivor.
func (c *Controller) rebuild() {
	c.slides = deck.Project(c.records, c.filter, c.intro)
	c.index = 0
	c.dir = DirectionNone
}

// CurrentSlide returns the slide at the current position. ok is false when
// the deck is empty.
func (c *Controller) CurrentSlide() (deck.Slide, bool) {
	if len(c.slides) == 0 {
		return deck.Slide{}, false
	}
	return c.slides[c.index], true
}

// Direction returns the pending transition direction.
func (c *Controller) Direction() Direction {
	return c.dir
}

// ClearTransition resets the pending direction once the presentation layer
// has finished animating.
func (c *Controller) ClearTransition() {
	c.dir = DirectionNone
}

// Advance moves to the next slide. At the last slide it is a no-op and the
// direction stays none.
func (c *Controller) Advance() {
	if c.index >= len(c.slides)-1 {
		c.dir = DirectionNone
		return
	}
	c.index++
	c.dir = DirectionForward
}

// Retreat moves to the previous slide. At the first slide it is a no-op and
// the direction stays none.
func (c *Controller) Retreat() {
	if c.index <= 0 {
		c.dir = DirectionNone
		return
	}
	c.index--
	c.dir = DirectionBackward
}

// SetSelectedCategories replaces the category selection and recomputes the
// deck. Unknown names are dropped so the selection stays a subset of the
// categories actually present.
func (c *Controller) SetSelectedCategories(selected map[string]bool) {
	next := make(map[string]bool)
	for _, cat := range deck.Categories(c.records) {
		if selected[cat] {
			next[cat] = true
		}
	}
	c.filter.Selected = next
	c.rebuild()
}

// SetDeepModeEnabled toggles the depth filter and recomputes the deck.
func (c *Controller) SetDeepModeEnabled(enabled bool) {
	c.filter.DeepMode = enabled
	c.rebuild()
}

// DeepModeEnabled reports the current depth mode.
func (c *Controller) DeepModeEnabled() bool {
	return c.filter.DeepMode
}

// AvailableCategories returns all categories of the unfiltered record set in
// first-seen order. The reserved intro category never appears here because
// intro extraction removes it from the pool before SetData.
func (c *Controller) AvailableCategories() []string {
	return deck.Categories(c.records)
}

// SelectedCategories returns a copy of the active selection.
func (c *Controller) SelectedCategories() map[string]bool {
	out := make(map[string]bool, len(c.filter.Selected))
	for cat, on := range c.filter.Selected {
		out[cat] = on
	}
	return out
}

// CategoryVariant returns the stable per-category variant index used to pick
// a card color.
func (c *Controller) CategoryVariant(category string) int {
	return c.catIndex[category]
}

// Index returns the current position in the deck.
func (c *Controller) Index() int {
	return c.index
}

// Len returns the number of slides currently navigable.
func (c *Controller) Len() int {
	return len(c.slides)
}

// RecordCount returns the size of the unfiltered question pool.
func (c *Controller) RecordCount() int {
	return len(c.records)
}
