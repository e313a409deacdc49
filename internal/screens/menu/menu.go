// Package menu is the overlay for jumping straight to a room.
package menu

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/zerohall/internal/navigator"
	"github.com/abhisek/zerohall/internal/rooms"
	"github.com/abhisek/zerohall/internal/router"
	"github.com/abhisek/zerohall/internal/screen"
	"github.com/abhisek/zerohall/internal/screens"
	"github.com/abhisek/zerohall/internal/ui/components"
	"github.com/abhisek/zerohall/internal/ui/keys"
	"github.com/abhisek/zerohall/internal/ui/layout"
	"github.com/abhisek/zerohall/internal/ui/theme"
)

// Screen lists every room plus the sound toggle.
type Screen struct {
	nav   *navigator.Navigator
	muted bool
	menu  components.Menu
}

var (
	_ screen.Screen  = (*Screen)(nil)
	_ screen.Overlay = (*Screen)(nil)
)

func New(nav *navigator.Navigator, muted bool) *Screen {
	s := &Screen{nav: nav, muted: muted}
	s.menu = components.NewMenu(s.items(), rooms.Index(nav.State().Current))
	return s
}

func pop() tea.Msg { return router.PopScreenMsg{} }

func (s *Screen) items() []components.MenuItem {
	current := s.nav.State().Current
	var items []components.MenuItem
	for i, r := range rooms.Order() {
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%d. %s", i+1, r.Title()),
			Detail: r.Info().Subtitle,
			Marked: r == current,
			Action: func() tea.Cmd { return s.jump(r) },
		})
	}
	sound := "on"
	if s.muted {
		sound = "off"
	}
	items = append(items,
		components.MenuItem{Label: "Sound: " + sound, Action: s.toggleMute},
		components.MenuItem{Label: "Close", Action: func() tea.Cmd { return pop }},
	)
	return items
}

func (s *Screen) jump(r rooms.Room) tea.Cmd {
	s.nav.SetCurrentRoom(r)
	return pop
}

func (s *Screen) toggleMute() tea.Cmd {
	s.muted = !s.muted
	selected := s.menu.Selected
	s.menu = components.NewMenu(s.items(), selected)
	return screens.Cmd(screens.ToggleMuteMsg{})
}

// Muted reports the sound state shown in the menu.
func (s *Screen) Muted() bool {
	return s.muted
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Menu" }

func (s *Screen) Dismissible() bool { return true }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(k, keys.Back), key.Matches(k, keys.Menu):
			return s, pop
		case key.Matches(k, keys.Mute):
			return s, s.toggleMute()
		}
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	body := strings.Join([]string{
		theme.Title.Render("THE HALL OF ZERO LIMITS"),
		theme.Hint.Render("Jump to any room"),
		"",
		s.menu.View(),
	}, "\n")
	box := theme.Modal.Width(min(width-4, 80)).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return append(keys.Hints(keys.Up, keys.Down, keys.Select, keys.Mute), keys.Hint(keys.Back))
}
