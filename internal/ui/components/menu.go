package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/zerohall/internal/ui/keys"
	"github.com/abhisek/zerohall/internal/ui/theme"
)

// MenuItem is one entry in a vertical menu.
type MenuItem struct {
	Label    string
	Detail   string
	Action   func() tea.Cmd
	Disabled bool
	Marked   bool
}

// Menu is a vertical list with a cursor that skips disabled items.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu places the cursor on the first enabled item at or after start.
func NewMenu(items []MenuItem, start int) Menu {
	m := Menu{Items: items}
	for i := max(start, 0); i < len(items); i++ {
		if !items[i].Disabled {
			m.Selected = i
			return m
		}
	}
	return m
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, keys.Up):
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case key.Matches(k, keys.Down):
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case key.Matches(k, keys.Select):
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}
	return m, nil
}

func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		mark := "  "
		if item.Marked {
			mark = "● "
		}
		switch {
		case item.Disabled:
			b.WriteString(theme.Hint.Render("    " + mark + item.Label))
		case i == m.Selected:
			b.WriteString(theme.Selected.Render("  ▸ " + mark + item.Label))
		default:
			b.WriteString(theme.Unselected.Render("    " + mark + item.Label))
		}
		if item.Detail != "" {
			b.WriteString("  " + theme.Hint.Render(item.Detail))
		}
		b.WriteString("\n")
	}
	return b.String()
}
