package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/zerohall/internal/ui/theme"
)

// Card is one hover target in a gallery row.
type Card struct {
	Title    string
	Subtitle string
	Glyph    string
	Detail   string
}

// Gallery renders a row of cards. Cursor marks the pointer position and
// Open the card whose detail panel is showing (-1 for none).
type Gallery struct {
	Cards    []Card
	Cursor   int
	Open     int
	Focused  bool
	Selected string // hint shown under an open card
}

func (g Gallery) View(width int) string {
	if len(g.Cards) == 0 {
		return ""
	}
	cardWidth := max((width-2*len(g.Cards))/len(g.Cards), 14)

	row := make([]string, len(g.Cards))
	for i, c := range g.Cards {
		style := theme.Card.Width(cardWidth)
		if i == g.Cursor {
			style = style.BorderForeground(theme.Primary)
		}
		title := c.Title
		if i == g.Cursor {
			title = "▸ " + title
		}
		row[i] = style.Render(theme.Selected.Render(title) + "\n" + theme.Hint.Render(c.Subtitle))
	}
	out := lipgloss.JoinHorizontal(lipgloss.Top, row...)

	if g.Open >= 0 && g.Open < len(g.Cards) {
		c := g.Cards[g.Open]
		style := theme.Card
		if g.Focused {
			style = theme.FocusedCard
		}
		var body []string
		body = append(body, theme.Glyph.Render(c.Glyph), theme.Selected.Render(c.Title))
		if c.Subtitle != "" {
			body = append(body, theme.Hint.Render(c.Subtitle))
		}
		if c.Detail != "" {
			body = append(body, "", theme.Body.Width(max(width-8, 20)).Render(c.Detail))
		}
		if g.Selected != "" {
			body = append(body, "", theme.Hint.Render(g.Selected))
		}
		out += "\n" + style.Width(max(width-4, 20)).Render(strings.Join(body, "\n"))
	}
	return out
}
