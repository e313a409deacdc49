package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func press(k string) tea.KeyPressMsg {
	switch k {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	}
	return tea.KeyPressMsg{Code: rune(k[0]), Text: k}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "a", Disabled: true},
		{Label: "b"},
		{Label: "c", Disabled: true},
		{Label: "d"},
	}, 0)
	if m.Selected != 1 {
		t.Fatalf("start = %d, want 1", m.Selected)
	}
	m, _ = m.Update(press("down"))
	if m.Selected != 3 {
		t.Errorf("after down = %d, want 3", m.Selected)
	}
	m, _ = m.Update(press("down"))
	if m.Selected != 3 {
		t.Errorf("down at end moved to %d", m.Selected)
	}
	m, _ = m.Update(press("up"))
	m, _ = m.Update(press("up"))
	if m.Selected != 1 {
		t.Errorf("up past disabled = %d, want 1", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	ran := ""
	m := NewMenu([]MenuItem{
		{Label: "a", Action: func() tea.Cmd { ran = "a"; return nil }},
		{Label: "b", Action: func() tea.Cmd { ran = "b"; return nil }},
	}, 1)
	m.Update(press("enter"))
	if ran != "b" {
		t.Errorf("ran %q, want b", ran)
	}
}

func TestChoice_LocksAfterEnter(t *testing.T) {
	c := NewChoice([]string{"left", "right"})
	c, _ = c.Update(press("down"))
	c, _ = c.Update(press("enter"))
	if !c.Locked() || c.Chosen != 1 {
		t.Fatalf("chosen = %d", c.Chosen)
	}
	c, _ = c.Update(press("up"))
	if c.Selected != 1 {
		t.Error("cursor moved while locked")
	}
	c = c.Reset(0)
	if c.Locked() || c.Selected != 0 {
		t.Errorf("after reset: %+v", c)
	}
	if !strings.Contains(c.View(), "A)  left") {
		t.Errorf("view = %q", c.View())
	}
}

func TestProgressBar_FitsWidth(t *testing.T) {
	for _, pct := range []int{0, 33, 100, 140} {
		bar := NewProgressBar("Decoder", pct, 40, nil).View()
		if w := lipgloss.Width(bar); w != 40 {
			t.Errorf("pct %d: width = %d, want 40", pct, w)
		}
	}
}

func TestRail(t *testing.T) {
	out := Rail{Count: 8, Current: 2, Target: 3}.View()
	if n := strings.Count(out, "──"); n != 7 {
		t.Errorf("got %d connectors, want 7", n)
	}
	if !strings.Contains(out, "◆") || !strings.Contains(out, "◇") {
		t.Errorf("missing current or target marker: %q", out)
	}
}

func TestGallery_OpenCard(t *testing.T) {
	g := Gallery{
		Cards: []Card{{Title: "Naya", Subtitle: "Software Engineer", Glyph: "YMOKAVY8"}, {Title: "Joan"}},
		Open:  -1,
	}
	if strings.Contains(g.View(80), "YMOKAVY8") {
		t.Error("closed gallery shows glyph text")
	}
	g.Open = 0
	if !strings.Contains(g.View(80), "YMOKAVY8") {
		t.Error("open card missing glyph text")
	}
}
