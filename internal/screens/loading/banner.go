package loading

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/zerohall/internal/ui/theme"
)

const bannerArt = `
 ███████╗███████╗██████╗  ██████╗     ██╗  ██╗ █████╗ ██╗     ██╗
 ╚══███╔╝██╔════╝██╔══██╗██╔═══██╗    ██║  ██║██╔══██╗██║     ██║
   ███╔╝ █████╗  ██████╔╝██║   ██║    ███████║███████║██║     ██║
  ███╔╝  ██╔══╝  ██╔══██╗██║   ██║    ██╔══██║██╔══██║██║     ██║
 ███████╗███████╗██║  ██║╚██████╔╝    ██║  ██║██║  ██║███████╗███████╗
 ╚══════╝╚══════╝╚═╝  ╚═╝ ╚═════╝     ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚══════╝`

const (
	bannerCompact  = "Z E R O   H A L L"
	bannerMinWidth = 72
)

// RenderBanner returns the hall banner, or a one-line fallback on narrow
// terminals.
func RenderBanner(width int, faded bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if faded {
		style = style.Foreground(theme.TextDim).Bold(false).Faint(true)
	}
	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
