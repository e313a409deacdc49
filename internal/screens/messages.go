// Package screens holds the messages shared between the hall, its
// overlays and the root model.
package screens

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/zerohall/internal/hover"
	"github.com/abhisek/zerohall/internal/navigator"
	"github.com/abhisek/zerohall/internal/rooms"
)

// NavChangedMsg reports a navigator change, possibly from a timer.
type NavChangedMsg struct {
	State  navigator.State
	Change navigator.Change
}

// HoverChangedMsg reports a hover tracker change for room.
type HoverChangedMsg struct {
	Room  rooms.Room
	State hover.State
}

// ToggleMuteMsg flips the sound setting.
type ToggleMuteMsg struct{}

// OpenMenuMsg asks for the side menu.
type OpenMenuMsg struct{}

// OpenQuizMsg asks for the quiz modal.
type OpenQuizMsg struct{}

// OpenVideoMsg asks for a creator's video modal.
type OpenVideoMsg struct {
	Creator rooms.Creator
}

// OpenQuoteMsg asks for a character's quote modal.
type OpenQuoteMsg struct {
	Character rooms.Character
}

// Cmd wraps msg in a command.
func Cmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
