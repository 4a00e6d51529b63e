package finger

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type styles struct {
	enabled bool
	label   lipgloss.Style
	login   lipgloss.Style
	header  lipgloss.Style
	faint   lipgloss.Style
	warning lipgloss.Style
}

func newStyles(color bool) styles {
	renderer := lipgloss.NewRenderer(io.Discard)
	if color {
		renderer.SetColorProfile(termenv.ANSI256)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return styles{
		enabled: color,
		label:   renderer.NewStyle().Foreground(lipgloss.Color("245")),
		login:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		header:  renderer.NewStyle().Bold(true).Underline(true),
		faint:   renderer.NewStyle().Faint(true),
		warning: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}

// paint leaves text untouched when styling is off so column padding stays exact.
func (s styles) paint(style lipgloss.Style, text string) string {
	if !s.enabled || text == "" {
		return text
	}

	return style.Render(text)
}
