package app

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
	"github.com/abhisek/zerohall/internal/screens/hall"
	"github.com/abhisek/zerohall/internal/screens/loading"
	"github.com/abhisek/zerohall/internal/screens/media"
	"github.com/abhisek/zerohall/internal/screens/menu"
	"github.com/abhisek/zerohall/internal/screens/quizmodal"
)

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func TestStartsWithLoading(t *testing.T) {
	m := newAppModel(Options{})
	assert.IsType(t, &loading.Screen{}, m.router.Active())

	m = newAppModel(Options{SkipIntro: true})
	assert.IsType(t, &hall.Screen{}, m.router.Active())
}

func TestOpenOverlays(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
		want any
	}{
		{"menu", screens.OpenMenuMsg{}, &menu.Screen{}},
		{"quiz", screens.OpenQuizMsg{}, &quizmodal.Screen{}},
		{"video", screens.OpenVideoMsg{Creator: rooms.Creators(rooms.Library)[0]}, &media.Video{}},
		{"quote", screens.OpenQuoteMsg{Character: rooms.Characters()[0]}, &media.Quote{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newAppModel(Options{SkipIntro: true})
			m, _ = update(t, m, tt.msg)
			assert.Equal(t, 2, m.router.Depth())
			assert.IsType(t, tt.want, m.router.Active())

			m, _ = update(t, m, router.PopScreenMsg{})
			assert.Equal(t, 1, m.router.Depth())
		})
	}
}

func TestQuizOverlayOpensEngine(t *testing.T) {
	m := newAppModel(Options{SkipIntro: true})
	m, _ = update(t, m, screens.OpenQuizMsg{})
	assert.True(t, m.opts.Quiz.State().Open)
}

func TestMuteToggle(t *testing.T) {
	m := newAppModel(Options{SkipIntro: true})
	m, _ = update(t, m, tea.KeyPressMsg{Code: 's', Text: "s"})
	assert.True(t, m.Muted())

	m, _ = update(t, m, screens.ToggleMuteMsg{})
	assert.False(t, m.Muted())
}

func TestQuit(t *testing.T) {
	m := newAppModel(Options{SkipIntro: true})
	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNavChangeReachesHall(t *testing.T) {
	nav := navigator.New()
	m := newAppModel(Options{Nav: nav, SkipIntro: true})
	nav.SetCurrentRoom(rooms.Quiz)

	m, _ = update(t, m, screens.NavChangedMsg{State: nav.State(), Change: navigator.Change{Kind: navigator.ChangeJump}})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.True(t, strings.Contains(m.render(), "FIND YOUR GIFT"))
}

func TestTooSmall(t *testing.T) {
	m := newAppModel(Options{SkipIntro: true})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.render(), "needs more room")
}
