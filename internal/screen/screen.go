package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/zerohall/internal/ui/layout"
)

// Screen is one layer of the UI: the hall itself or an overlay on it.
type Screen interface {
	Init() tea.Cmd

	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area, excluding header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Overlay is implemented by screens drawn on top of the one below.
// Dismissible overlays close on esc.
type Overlay interface {
	Dismissible() bool
}
