package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{200, 60, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v", tt.w, tt.h, got)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader(Header{Title: "The Library", Position: 6, Rooms: 8, Muted: true}, 90)
	for _, want := range []string{"ZERO HALL", "The Library", "6 / 8", "♪ off"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q", want)
		}
	}
	if strings.Contains(RenderHeader(Header{Title: "x"}, 90), "/ ") {
		t.Error("position shown when zero")
	}
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader(Header{Title: "t"}, 80)
	footer := RenderFooter([]KeyHint{{Key: "esc", Description: "back"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 30)
	if h := lipgloss.Height(frame); h != 30 {
		t.Errorf("frame height = %d, want 30", h)
	}
	if got := ContentHeight(header, footer, 30); got != 30-lipgloss.Height(header)-lipgloss.Height(footer) {
		t.Errorf("content height = %d", got)
	}
}
