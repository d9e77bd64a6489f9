package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette — warm and calm, the cards carry the color
var (
	Primary   = lipgloss.Color("#F59E0B") // Amber
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Accent    = lipgloss.Color("#EC4899") // Pink
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#FAFAF9") // Warm white
	TextDim   = lipgloss.Color("#A8A29E") // Stone
	BgDark    = lipgloss.Color("#1C1917") // Near black
	BgCard    = lipgloss.Color("#292524") // Dark stone
	Border    = lipgloss.Color("#44403C") // Stone border
)

// CategoryPalette holds the card accent colors cycled through by category
// variant. The variant index is stable per session (first-seen order).
var CategoryPalette = []color.Color{
	lipgloss.Color("#F59E0B"), // amber
	lipgloss.Color("#0EA5E9"), // sky
	lipgloss.Color("#A78BFA"), // violet
	lipgloss.Color("#34D399"), // emerald
	lipgloss.Color("#FB7185"), // rose
	lipgloss.Color("#FACC15"), // yellow
	lipgloss.Color("#2DD4BF"), // teal
}

// CategoryColor returns the accent color for a category variant index.
func CategoryColor(variant int) color.Color {
	if len(CategoryPalette) == 0 {
		return Primary
	}
	if variant < 0 {
		variant = -variant
	}
	return CategoryPalette[variant%len(CategoryPalette)]
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)
