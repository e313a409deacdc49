// Package hall is the main screen: the current room, its content and the
// progress rail.
package hall

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/zerohall/internal/hover"
	"github.com/abhisek/zerohall/internal/navigator"
	"github.com/abhisek/zerohall/internal/rooms"
	"github.com/abhisek/zerohall/internal/screen"
	"github.com/abhisek/zerohall/internal/screens"
	"github.com/abhisek/zerohall/internal/ui/keys"
	"github.com/abhisek/zerohall/internal/ui/layout"
)

// GalleryRooms are the rooms with hoverable cards.
var GalleryRooms = []rooms.Room{rooms.OriginStories, rooms.InspirationGarden, rooms.Library, rooms.ThankYou}

// Screen renders whichever room the navigator is on.
type Screen struct {
	nav      *navigator.Navigator
	trackers map[rooms.Room]*hover.Tracker

	room   rooms.Room
	cursor int
}

var _ screen.Screen = (*Screen)(nil)

// New creates the hall. trackers holds one tracker per gallery room;
// rooms without one have no hover cards.
func New(nav *navigator.Navigator, trackers map[rooms.Room]*hover.Tracker) *Screen {
	return &Screen{
		nav:      nav,
		trackers: trackers,
		room:     nav.State().Current,
		cursor:   -1,
	}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string {
	return s.nav.State().Current.Title()
}

// Cursor returns the gallery pointer position, or -1.
func (s *Screen) Cursor() int {
	return s.cursor
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.syncRoom()

	k, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(k, keys.Next):
		s.nav.GoToNextRoom()
	case key.Matches(k, keys.Prev):
		s.nav.GoToPrevRoom()
	case key.Matches(k, keys.Menu):
		return s, screens.Cmd(screens.OpenMenuMsg{})
	case key.Matches(k, keys.Up):
		s.moveCursor(-1)
	case key.Matches(k, keys.Down):
		s.moveCursor(1)
	case key.Matches(k, keys.Focus):
		s.toggleCardFocus()
	case key.Matches(k, keys.Back):
		s.leaveCursor()
	case key.Matches(k, keys.Select):
		return s, s.activate()
	}
	return s, nil
}

// syncRoom closes the previous room's cards once the navigator has moved.
func (s *Screen) syncRoom() {
	cur := s.nav.State().Current
	if cur == s.room {
		return
	}
	if t := s.trackers[s.room]; t != nil {
		t.Reset()
	}
	s.room = cur
	s.cursor = -1
}

func (s *Screen) tracker() *hover.Tracker {
	return s.trackers[s.room]
}

func (s *Screen) moveCursor(delta int) {
	t := s.tracker()
	n := len(cardsFor(s.room))
	if t == nil || n == 0 {
		return
	}
	next := s.cursor + delta
	if s.cursor < 0 {
		next = 0
		if delta < 0 {
			next = n - 1
		}
	}
	if next < 0 || next >= n || next == s.cursor {
		return
	}
	if s.cursor >= 0 {
		t.Leave(s.cursor)
	}
	s.cursor = next
	t.Enter(next)
}

func (s *Screen) leaveCursor() {
	t := s.tracker()
	if t == nil || s.cursor < 0 {
		return
	}
	if t.State().CardHovered {
		t.CardLeave()
	}
	t.Leave(s.cursor)
	s.cursor = -1
}

func (s *Screen) toggleCardFocus() {
	t := s.tracker()
	if t == nil {
		return
	}
	st := t.State()
	if _, ok := st.Active(); !ok {
		return
	}
	if st.CardHovered {
		t.CardLeave()
	} else {
		t.CardEnter()
	}
}

func (s *Screen) activate() tea.Cmd {
	switch s.room {
	case rooms.Entrance:
		s.nav.GoToNextRoom()
		return nil
	case rooms.Quiz:
		return screens.Cmd(screens.OpenQuizMsg{})
	}

	t := s.tracker()
	if t == nil {
		return nil
	}
	i, ok := t.State().Active()
	if !ok {
		return nil
	}
	switch s.room {
	case rooms.OriginStories, rooms.Library:
		creators := rooms.Creators(s.room)
		if i < len(creators) {
			s.dismiss(t)
			return screens.Cmd(screens.OpenVideoMsg{Creator: creators[i]})
		}
	case rooms.InspirationGarden:
		chars := rooms.Characters()
		if i < len(chars) {
			s.dismiss(t)
			return screens.Cmd(screens.OpenQuoteMsg{Character: chars[i]})
		}
	}
	return nil
}

// dismiss closes the card before an overlay opens over it.
func (s *Screen) dismiss(t *hover.Tracker) {
	t.ForceClose()
	s.cursor = -1
}

func (s *Screen) KeyHints() []layout.KeyHint {
	hints := keys.Hints(keys.Prev, keys.Next)
	switch s.room {
	case rooms.Entrance:
		hints = append(hints, layout.KeyHint{Key: "enter", Description: "enter the hall"})
	case rooms.Quiz:
		hints = append(hints, layout.KeyHint{Key: "enter", Description: "find your gift"})
	}
	if s.trackers[s.room] != nil {
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "browse"}, keys.Hint(keys.Focus))
		if s.room != rooms.ThankYou {
			hints = append(hints, layout.KeyHint{Key: "enter", Description: "open"})
		}
	}
	return append(hints, keys.Hints(keys.Menu, keys.Quit)...)
}
