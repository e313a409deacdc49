package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/zerohall/internal/ui/theme"
)

// Rail draws one dot per room with the current one highlighted and the
// transition target pulsing.
type Rail struct {
	Count   int
	Current int
	Target  int // -1 when idle
}

func (r Rail) View() string {
	dots := make([]string, r.Count)
	for i := range r.Count {
		switch {
		case i == r.Current:
			dots[i] = lipgloss.NewStyle().Foreground(theme.Accent).Render("◆")
		case i == r.Target:
			dots[i] = lipgloss.NewStyle().Foreground(theme.Primary).Blink(true).Render("◇")
		case i < r.Current:
			dots[i] = lipgloss.NewStyle().Foreground(theme.Primary).Render("●")
		default:
			dots[i] = lipgloss.NewStyle().Foreground(theme.Border).Render("○")
		}
	}
	return strings.Join(dots, lipgloss.NewStyle().Foreground(theme.Border).Render("──"))
}
