package ui

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/vvka-141/enumfiles/internal/config"
)

// DetectColor reports whether output written to out should be colored.
//
// ColorAlways and ColorNever are honored as given. For ColorAuto (and any
// unrecognised mode) color is disabled if:
//   - NO_COLOR is set (accessibility/automation indicator)
//   - CI is set (common CI/CD convention)
//   - TERM=dumb
//   - out is not a terminal
func DetectColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}

	f, ok := out.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
