package menu

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/zerohall/internal/navigator"
	"github.com/abhisek/zerohall/internal/rooms"
	"github.com/abhisek/zerohall/internal/router"
	"github.com/abhisek/zerohall/internal/screens"
)

var (
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyEsc   = tea.KeyPressMsg{Code: tea.KeyEscape}
	keyMute  = tea.KeyPressMsg{Code: 's', Text: "s"}
)

func TestStartsOnCurrentRoom(t *testing.T) {
	nav := navigator.New()
	nav.SetCurrentRoom(rooms.Library)

	m := New(nav, false)
	assert.Equal(t, rooms.Index(rooms.Library), m.menu.Selected)
	assert.True(t, m.menu.Items[m.menu.Selected].Marked)
}

func TestJump(t *testing.T) {
	nav := navigator.New()
	m := New(nav, false)

	m.Update(keyDown)
	m.Update(keyDown)
	_, cmd := m.Update(keyEnter)
	require.NotNil(t, cmd)

	assert.IsType(t, router.PopScreenMsg{}, cmd())
	st := nav.State()
	assert.Equal(t, rooms.OriginStories, st.Current)
	assert.Equal(t, rooms.Entrance, st.Previous)
	assert.False(t, st.Transitioning, "jumps are immediate")
}

func TestToggleMute(t *testing.T) {
	m := New(navigator.New(), false)

	_, cmd := m.Update(keyMute)
	require.NotNil(t, cmd)
	assert.IsType(t, screens.ToggleMuteMsg{}, cmd())
	assert.True(t, m.Muted())
	assert.Contains(t, m.View(100, 40), "Sound: off")

	// Selecting the sound row toggles back.
	m.menu.Selected = rooms.Count()
	_, cmd = m.Update(keyEnter)
	require.NotNil(t, cmd)
	assert.False(t, m.Muted())
}

func TestEscCloses(t *testing.T) {
	m := New(navigator.New(), false)
	assert.True(t, m.Dismissible())

	_, cmd := m.Update(keyEsc)
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestViewListsRooms(t *testing.T) {
	v := New(navigator.New(), true).View(100, 40)
	for _, r := range rooms.Order() {
		assert.True(t, strings.Contains(v, r.Title()), "missing %s", r)
	}
	assert.Contains(t, v, "Sound: off")
}
