// Package gesture normalizes heterogeneous input (pointer drags, edge
// taps, arrow keys) into the two logical deck commands.
package gesture

// Command is the normalized navigation intent.
type Command int

const (
	CommandNone Command = iota
	CommandAdvance
	CommandRetreat
)

func (c Command) String() string {
	switch c {
	case CommandAdvance:
		return "advance"
	case CommandRetreat:
		return "retreat"
	default:
		return "none"
	}
}

// DefaultDragThreshold is the horizontal displacement a drag must exceed
// before it counts as a swipe.
const DefaultDragThreshold = 50

// Drag recognizes press/release swipes. The whole-surface variant also
// requires the horizontal displacement to dominate the vertical one, so
// vertical scrolling is not mistaken for a swipe.
type Drag struct {
	threshold      int
	wantHorizontal bool

	active bool
	startX int
	startY int
}

// NewDrag returns a drag recognizer with the given threshold. When
// horizontalOnly is set, a release whose vertical travel meets or exceeds
// its horizontal travel is rejected.
func NewDrag(threshold int, horizontalOnly bool) *Drag {
	if threshold <= 0 {
		threshold = DefaultDragThreshold
	}
	return &Drag{threshold: threshold, wantHorizontal: horizontalOnly}
}

// Begin records the press position.
func (d *Drag) Begin(x, y int) {
	d.active = true
	d.startX = x
	d.startY = y
}

// End consumes the release position and returns the recognized command, if
// any. A release without a matching Begin is ignored. Dragging left (toward
// negative x) advances; dragging right retreats.
func (d *Drag) End(x, y int) Command {
	if !d.active {
		return CommandNone
	}
	d.active = false

	dx := x - d.startX
	dy := y - d.startY

	if abs(dx) <= d.threshold {
		return CommandNone
	}
	if d.wantHorizontal && abs(dx) <= abs(dy) {
		return CommandNone
	}

	if dx < 0 {
		return CommandAdvance
	}
	return CommandRetreat
}

// Active reports whether a press is awaiting its release.
func (d *Drag) Active() bool {
	return d.active
}

// ZoneFraction is the width share of each invisible edge tap zone.
const ZoneFraction = 0.25

// ZoneCommand maps a tap at x on a surface of the given width to a command:
// the left edge zone retreats, the right edge zone advances, the middle does
// nothing. Taps bypass drag thresholds entirely.
func ZoneCommand(x, width int) Command {
	if width <= 0 {
		return CommandNone
	}
	zone := int(float64(width) * ZoneFraction)
	if zone < 1 {
		zone = 1
	}

	switch {
	case x < zone:
		return CommandRetreat
	case x >= width-zone:
		return CommandAdvance
	default:
		return CommandNone
	}
}

// KeyCommand maps a key name (bubbletea's KeyMsg.String form) to a command.
func KeyCommand(key string) Command {
	switch key {
	case "right", "l":
		return CommandAdvance
	case "left", "h":
		return CommandRetreat
	default:
		return CommandNone
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
