// Package media holds the detail overlays opened from gallery rooms: a
// creator's video story and a garden statue's quote.
package media

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/zerohall/internal/rooms"
	"github.com/abhisek/zerohall/internal/router"
	"github.com/abhisek/zerohall/internal/screen"
	"github.com/abhisek/zerohall/internal/ui/keys"
	"github.com/abhisek/zerohall/internal/ui/layout"
	"github.com/abhisek/zerohall/internal/ui/theme"
)

// overlay is the shared close behaviour.
type overlay struct{}

func (overlay) Init() tea.Cmd { return nil }

func (overlay) Dismissible() bool { return true }

func (overlay) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{keys.Hint(keys.Back)}
}

func (overlay) closeOn(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	if key.Matches(k, keys.Back) || key.Matches(k, keys.Select) {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	return nil
}

// modalFrame is the horizontal border plus padding of theme.Modal.
const modalFrame = 8

// box renders lines in the modal frame, at most w columns wide.
func box(w int, lines ...string) string {
	return theme.Modal.Width(max(w, 0)).Render(strings.Join(lines, "\n"))
}

func place(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Video shows a creator's story.
type Video struct {
	overlay
	Creator rooms.Creator
}

var (
	_ screen.Screen  = (*Video)(nil)
	_ screen.Overlay = (*Video)(nil)
)

func NewVideo(c rooms.Creator) *Video {
	return &Video{Creator: c}
}

func (v *Video) Title() string { return v.Creator.Name }

func (v *Video) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return v, v.closeOn(msg)
}

// View keeps the URL on one unwrapped line below the box so it can be
// copied whole.
func (v *Video) View(width, height int) string {
	link := theme.Hint.Inline(true).Render(v.Creator.VideoURL)
	body := box(min(width-4, max(84, lipgloss.Width(link)+modalFrame)),
		theme.Glyph.Render(v.Creator.GlyphText),
		theme.Title.Render(strings.ToUpper(v.Creator.Name)),
		theme.Subtitle.Render(v.Creator.Title),
		"",
		theme.Body.Render("▶  Watch the story"),
	)
	return place(width, height, lipgloss.JoinVertical(lipgloss.Center, body, "", link))
}

// Quote shows a garden statue's quote and story.
type Quote struct {
	overlay
	Character rooms.Character
}

var (
	_ screen.Screen  = (*Quote)(nil)
	_ screen.Overlay = (*Quote)(nil)
)

func NewQuote(c rooms.Character) *Quote {
	return &Quote{Character: c}
}

func (q *Quote) Title() string { return q.Character.Name }

func (q *Quote) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return q, q.closeOn(msg)
}

func (q *Quote) View(width, height int) string {
	inner := min(width-12, 76)
	return place(width, height, box(min(width-4, 84),
		theme.Glyph.Render(q.Character.GlyphText),
		theme.Title.Render(strings.ToUpper(q.Character.Name)),
		"",
		theme.Quote.Width(inner).Render(q.Character.Quote),
		"",
		theme.Body.Width(inner).Render(q.Character.Description),
	))
}
