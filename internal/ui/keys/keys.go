// Package keys holds the key bindings shared by every screen.
package keys

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/zerohall/internal/ui/layout"
)

var (
	Next = key.NewBinding(
		key.WithKeys("right", "l", "n"),
		key.WithHelp("→", "next room"),
	)
	Prev = key.NewBinding(
		key.WithKeys("left", "h", "p"),
		key.WithHelp("←", "previous room"),
	)
	Up = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "up"),
	)
	Down = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "down"),
	)
	Select = key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("enter", "select"),
	)
	Focus = key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "focus card"),
	)
	Menu = key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "menu"),
	)
	Mute = key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sound"),
	)
	Toggle = key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "other traits"),
	)
	Retake = key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "retake"),
	)
	Back = key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	)
	Quit = key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	)
)

// Hint converts a binding's help text into a footer hint.
func Hint(b key.Binding) layout.KeyHint {
	h := b.Help()
	return layout.KeyHint{Key: h.Key, Description: h.Desc}
}

// Hints converts several bindings, skipping disabled ones.
func Hints(bs ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bs))
	for _, b := range bs {
		if b.Enabled() {
			out = append(out, Hint(b))
		}
	}
	return out
}
