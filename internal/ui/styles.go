package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorError   = lipgloss.Color("196") // Red
)

// Styles renders entries for one output stream.
type Styles struct {
	Directory lipgloss.Style
	File      lipgloss.Style
	Error     lipgloss.Style
}

// NewStyles builds styles bound to out. With color disabled every style
// renders its input unchanged.
func NewStyles(out io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(out)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return Styles{
		Directory: r.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		File: r.NewStyle(),
		Error: r.NewStyle().
			Foreground(ColorError),
	}
}

// ForKind returns the style used for entries of kind isDir.
func (s Styles) ForKind(isDir bool) lipgloss.Style {
	if isDir {
		return s.Directory
	}
	return s.File
}
