package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/zerohall/internal/ui/keys"
	"github.com/abhisek/zerohall/internal/ui/theme"
)

// Choice is a single-select list. Once an option is chosen the cursor
// locks until Reset.
type Choice struct {
	Options  []string
	Selected int
	Chosen   int // -1 until enter
}

func NewChoice(options []string) Choice {
	return Choice{Options: options, Chosen: -1}
}

// Locked reports whether an option has been chosen.
func (c Choice) Locked() bool {
	return c.Chosen >= 0
}

// Reset clears the choice and moves the cursor to selected.
func (c Choice) Reset(selected int) Choice {
	c.Chosen = -1
	c.Selected = min(max(selected, 0), len(c.Options)-1)
	return c
}

func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok || c.Locked() {
		return c, nil
	}
	switch {
	case key.Matches(k, keys.Up):
		if c.Selected > 0 {
			c.Selected--
		}
	case key.Matches(k, keys.Down):
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case key.Matches(k, keys.Select):
		c.Chosen = c.Selected
	}
	return c, nil
}

func (c Choice) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && !c.Locked() {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%c)  %s", prefix, 'A'+i, opt)
		switch {
		case i == c.Chosen:
			b.WriteString(theme.Chosen.Render(line))
		case c.Locked():
			b.WriteString(theme.Hint.Render(line))
		case i == c.Selected:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
