package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// ANSI colors used for terminal output.
const (
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorBlue   = lipgloss.Color("4")
	colorPink   = lipgloss.Color("5")
	colorCyan   = lipgloss.Color("6")
)

// palette holds styles bound to one output writer, so colors are only
// emitted when that writer is a terminal.
type palette struct {
	label  lipgloss.Style
	key    lipgloss.Style
	strong lipgloss.Style
	weak   lipgloss.Style
	path   lipgloss.Style
}

func newPalette(w io.Writer) palette {
	return paletteFor(lipgloss.NewRenderer(w))
}

func paletteFor(r *lipgloss.Renderer) palette {
	return palette{
		label:  r.NewStyle().Foreground(colorPink),
		key:    r.NewStyle().Foreground(colorCyan),
		strong: r.NewStyle().Foreground(colorGreen),
		weak:   r.NewStyle().Foreground(colorYellow),
		path:   r.NewStyle().Foreground(colorBlue),
	}
}

// password picks green for passwords of at least strongPasswordLen, yellow otherwise.
func (p palette) password(pw string) string {
	if len(pw) >= strongPasswordLen {
		return p.strong.Render(pw)
	}
	return p.weak.Render(pw)
}
