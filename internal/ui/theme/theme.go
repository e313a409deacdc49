package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette: vibranium purple on deep night, with lime and gold accents.
var (
	Primary   = lipgloss.Color("#A78BFA") // Vibranium
	Secondary = lipgloss.Color("#84CC16") // Lime
	Accent    = lipgloss.Color("#FACC15") // Gold
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0B0A1A")
	BgCard    = lipgloss.Color("#1C1838")
	Border    = lipgloss.Color("#3B3566")
)

// traitColors gives each quiz trait its own bar color.
var traitColors = map[string]color.Color{
	"decoder":     lipgloss.Color("#38BDF8"),
	"visionary":   lipgloss.Color("#A78BFA"),
	"illuminator": lipgloss.Color("#FACC15"),
	"avant-garde": lipgloss.Color("#F472B6"),
	"explorer":    lipgloss.Color("#84CC16"),
}

// TraitColor returns the bar color for a trait id.
func TraitColor(trait string) color.Color {
	if c, ok := traitColors[trait]; ok {
		return c
	}
	return Secondary
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(Accent).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Glyph = lipgloss.NewStyle().
		Foreground(Primary).
		Faint(true)

	Quote = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	FocusedCard = Card.
			BorderForeground(Accent)

	Modal = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(Primary).
		Padding(1, 3)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Chosen = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
)

// Components
var (
	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
