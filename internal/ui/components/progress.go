package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/zerohall/internal/ui/theme"
)

// ProgressBar is a labelled horizontal bar for a 0-100 percentage.
type ProgressBar struct {
	Label      string
	Percent    int
	Width      int
	LabelWidth int
	Fill       color.Color
}

func NewProgressBar(label string, percent, width int, fill color.Color) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, Width: width, Fill: fill}
}

func (p ProgressBar) View() string {
	label := p.Label
	if p.LabelWidth > 0 {
		label = lipgloss.NewStyle().Width(p.LabelWidth).Render(label)
	}
	var out string
	if label != "" {
		out = theme.Body.Render(label) + "  "
	}

	const pctWidth = 6
	barWidth := max(p.Width-lipgloss.Width(out)-pctWidth, 4)
	filled := min(max(barWidth*p.Percent/100, 0), barWidth)

	fill := p.Fill
	if fill == nil {
		fill = theme.Secondary
	}
	out += lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled))
	out += theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))
	out += theme.Hint.Render(fmt.Sprintf(" %4d%%", p.Percent))
	return out
}
