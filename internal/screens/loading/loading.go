// Package loading is the splash shown before the hall opens.
package loading

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/zerohall/internal/router"
	"github.com/abhisek/zerohall/internal/screen"
	"github.com/abhisek/zerohall/internal/ui/components"
	"github.com/abhisek/zerohall/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	// fillDur is how long the progress bar takes to reach 100%.
	fillDur = 3 * time.Second
	// fadeStart is when the splash begins fading once full.
	fadeStart = fillDur + 500*time.Millisecond
	// totalDur is when the hall replaces the splash.
	totalDur = fadeStart + time.Second
)

const (
	headline = "THE HALL OF ZERO LIMITS"
	tagline  = "BLACK PANTHER / WAKANDA FOREVER"
)

type tickMsg time.Time

// Screen fills a progress bar, fades, then hands over to the hall. Any
// key skips ahead.
type Screen struct {
	next    func() screen.Screen
	elapsed time.Duration
	done    bool
}

var _ screen.Screen = (*Screen)(nil)

// New creates a splash that replaces itself with next().
func New(next func() screen.Screen) *Screen {
	return &Screen{next: next}
}

func (s *Screen) Title() string { return "" }

func (s *Screen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Progress returns the bar's fill percentage.
func (s *Screen) Progress() int {
	if s.elapsed >= fillDur {
		return 100
	}
	return int(s.elapsed * 100 / fillDur)
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if s.done {
			return s, nil
		}
		s.elapsed += tickInterval
		if s.elapsed >= totalDur {
			return s, s.finish()
		}
		return s, tick()
	case tea.KeyPressMsg:
		return s, s.finish()
	}
	return s, nil
}

func (s *Screen) finish() tea.Cmd {
	if s.done {
		return nil
	}
	s.done = true
	hall := s.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: hall}
	}
}

func (s *Screen) View(width, height int) string {
	faded := s.elapsed >= fadeStart

	barWidth := min(max(width-20, 20), 60)
	bar := components.NewProgressBar("", s.Progress(), barWidth, theme.Secondary)

	title := theme.Title
	sub := theme.Subtitle
	if faded {
		title = title.Foreground(theme.TextDim)
		sub = sub.Foreground(theme.TextDim)
	}

	sections := []string{
		RenderBanner(width, faded),
		"",
		title.Render(headline),
		sub.Render(tagline),
		"",
		bar.View(),
	}
	if !faded {
		sections = append(sections, "", theme.Hint.Render("press any key to enter"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
