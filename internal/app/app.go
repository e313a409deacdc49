// Package app wires the hall, its overlays and the shared state into one
// Bubble Tea program.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/zerohall/internal/hover"
	"github.com/abhisek/zerohall/internal/navigator"
	"github.com/abhisek/zerohall/internal/quiz"
	"github.com/abhisek/zerohall/internal/reflection"
	"github.com/abhisek/zerohall/internal/rooms"
	"github.com/abhisek/zerohall/internal/router"
	"github.com/abhisek/zerohall/internal/screen"
	"github.com/abhisek/zerohall/internal/screens"
	"github.com/abhisek/zerohall/internal/screens/hall"
	"github.com/abhisek/zerohall/internal/screens/loading"
	"github.com/abhisek/zerohall/internal/screens/media"
	"github.com/abhisek/zerohall/internal/screens/menu"
	"github.com/abhisek/zerohall/internal/screens/quizmodal"
	"github.com/abhisek/zerohall/internal/ui/keys"
	"github.com/abhisek/zerohall/internal/ui/layout"
)

// Options holds the state shared by every screen.
type Options struct {
	Nav        *navigator.Navigator
	Quiz       *quiz.Engine
	Trackers   map[rooms.Room]*hover.Tracker
	Reflection *reflection.Service
	Logger     *slog.Logger

	Muted     bool
	SkipIntro bool
}

func (o *Options) defaults() {
	if o.Nav == nil {
		o.Nav = navigator.New()
	}
	if o.Quiz == nil {
		o.Quiz = quiz.NewEngine(nil)
	}
	if o.Trackers == nil {
		o.Trackers = NewTrackers(nil)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// NewTrackers creates one hover tracker per gallery room.
func NewTrackers(newTracker func() *hover.Tracker) map[rooms.Room]*hover.Tracker {
	if newTracker == nil {
		newTracker = func() *hover.Tracker { return hover.New(nil) }
	}
	out := make(map[rooms.Room]*hover.Tracker, len(hall.GalleryRooms))
	for _, r := range hall.GalleryRooms {
		out[r] = newTracker()
	}
	return out
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	muted  bool
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	opts.defaults()
	newHall := func() screen.Screen { return hall.New(opts.Nav, opts.Trackers) }

	var first screen.Screen
	if opts.SkipIntro {
		first = newHall()
	} else {
		first = loading.New(newHall)
	}
	return AppModel{opts: opts, router: router.New(first), muted: opts.Muted}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, keys.Mute) && m.router.Depth() == 1 {
			m.muted = !m.muted
			return m, nil
		}

	case screens.ToggleMuteMsg:
		m.muted = !m.muted
		return m, nil

	case screens.OpenMenuMsg:
		return m, m.router.Push(menu.New(m.opts.Nav, m.muted))

	case screens.OpenQuizMsg:
		return m, m.router.Push(quizmodal.New(m.opts.Quiz, m.opts.Reflection))

	case screens.OpenVideoMsg:
		m.opts.Logger.Debug("video opened", "creator", msg.Creator.ID)
		return m, m.router.Push(media.NewVideo(msg.Creator))

	case screens.OpenQuoteMsg:
		return m, m.router.Push(media.NewQuote(msg.Character))

	case screens.NavChangedMsg, screens.HoverChangedMsg:
		return m, m.router.Broadcast(msg)
	}

	return m, m.router.Update(msg)
}

// Muted reports the sound toggle.
func (m AppModel) Muted() bool {
	return m.muted
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	st := m.opts.Nav.State()
	header := layout.RenderHeader(layout.Header{
		Title:    active.Title(),
		Position: rooms.Index(st.Current) + 1,
		Rooms:    rooms.Count(),
		Muted:    m.muted,
	}, m.width)

	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	} else {
		hints = keys.Hints(keys.Quit)
	}
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the program and blocks until it exits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	opts.defaults()
	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))

	// Listeners may fire inside Update, where a blocking Send would deadlock.
	opts.Nav.OnChange(func(st navigator.State, ch navigator.Change) {
		go p.Send(screens.NavChangedMsg{State: st, Change: ch})
	})
	for room, t := range opts.Trackers {
		t.OnChange(func(st hover.State) {
			go p.Send(screens.HoverChangedMsg{Room: room, State: st})
		})
	}
	defer opts.Nav.Close()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run hall: %w", err)
	}
	return nil
}
