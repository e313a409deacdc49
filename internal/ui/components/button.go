package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/zerohall/internal/ui/theme"
)

// Button is a labelled action. Only the focused button reacts to keys.
type Button struct {
	Label   string
	Focused bool
	OnPress func() tea.Cmd
}

func NewButton(label string, focused bool, onPress func() tea.Cmd) Button {
	return Button{Label: label, Focused: focused, OnPress: onPress}
}

// Update fires OnPress on enter when focused.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Focused || b.OnPress == nil {
		return b, nil
	}
	if k, ok := msg.(tea.KeyPressMsg); ok && k.String() == "enter" {
		return b, b.OnPress()
	}
	return b, nil
}

func (b Button) View() string {
	if b.Focused {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}
