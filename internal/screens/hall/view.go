package hall

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/zerohall/internal/hover"
	"github.com/abhisek/zerohall/internal/rooms"
	"github.com/abhisek/zerohall/internal/ui/components"
	"github.com/abhisek/zerohall/internal/ui/layout"
	"github.com/abhisek/zerohall/internal/ui/theme"
)

const thankYouPrompt = "Hover upon icons below for more content."

// cardsFor builds the gallery cards for a room.
func cardsFor(r rooms.Room) []components.Card {
	switch r {
	case rooms.OriginStories, rooms.Library:
		creators := rooms.Creators(r)
		cards := make([]components.Card, len(creators))
		for i, c := range creators {
			cards[i] = components.Card{Title: c.Name, Subtitle: c.Title, Glyph: c.GlyphText, Detail: "Video story: " + c.VideoURL}
		}
		return cards
	case rooms.InspirationGarden:
		chars := rooms.Characters()
		cards := make([]components.Card, len(chars))
		for i, c := range chars {
			cards[i] = components.Card{Title: c.Name, Glyph: c.GlyphText, Subtitle: c.Quote, Detail: c.Description}
		}
		return cards
	case rooms.ThankYou:
		links := rooms.ShareLinks()
		cards := make([]components.Card, len(links))
		for i, l := range links {
			cards[i] = components.Card{Title: l.Label, Detail: l.URL}
		}
		return cards
	}
	return nil
}

func (s *Screen) View(width, height int) string {
	s.syncRoom()
	st := s.nav.State()
	info := st.Current.Info()

	var sections []string
	sections = append(sections,
		theme.Title.Width(width).Render(strings.ToUpper(info.Title)),
		theme.Subtitle.Width(width).Render(info.Subtitle),
		"",
		lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(theme.Body.Render(info.Description)),
		"",
	)

	if body := s.roomBody(width); body != "" {
		sections = append(sections, body, "")
	}

	target := -1
	if p := s.nav.Pending(); p != nil && st.Transitioning {
		target = rooms.Index(p.To)
		sections = append(sections, lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Render(theme.Hint.Render(fmt.Sprintf("travelling to %s…", p.To.Title()))))
	}
	rail := components.Rail{Count: rooms.Count(), Current: rooms.Index(st.Current), Target: target}
	sections = append(sections, lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(rail.View()))

	return layout.Center(strings.Join(sections, "\n"), width, height)
}

func (s *Screen) roomBody(width int) string {
	switch s.room {
	case rooms.Entrance:
		return centered(width, theme.ButtonActive.Render("ENTER"))
	case rooms.ProductShowcase:
		return centered(width, theme.Quote.Render("ZERO SUGAR. ZERO LIMITS."))
	case rooms.Quiz:
		return centered(width, theme.ButtonActive.Render("FIND YOUR GIFT"))
	}

	cards := cardsFor(s.room)
	if len(cards) == 0 {
		return ""
	}
	g := components.Gallery{Cards: cards, Cursor: s.cursor, Open: -1}
	var st hover.State
	if t := s.tracker(); t != nil {
		st = t.State()
		if i, ok := st.Active(); ok {
			g.Open = i
			g.Focused = st.CardHovered
		}
	}
	switch s.room {
	case rooms.OriginStories, rooms.Library:
		g.Selected = "enter: watch story"
	case rooms.InspirationGarden:
		g.Selected = "enter: read quote"
	}

	out := g.View(width)
	if s.room == rooms.ThankYou && g.Open < 0 {
		out += "\n\n" + centered(width, theme.Hint.Render(thankYouPrompt))
	}
	if st.Phase == hover.PendingHide {
		out += "\n" + theme.Hint.Render("closing…")
	}
	return out
}

func centered(width int, s string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}
