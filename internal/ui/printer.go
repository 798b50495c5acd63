package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/enumfiles/internal/config"
	"github.com/vvka-141/enumfiles/pkg/enumfiles"
)

// Printer writes an enumeration result to Out.
//
// Plain output is one path per line, directories styled when Color is
// set. JSON and YAML output is a single sequence and is never colored;
// an empty result prints as [] so the output always parses.
type Printer struct {
	Out    io.Writer
	Format string
	Color  bool
}

// NewPrinter creates a printer for the given format.
func NewPrinter(out io.Writer, format string, color bool) *Printer {
	return &Printer{Out: out, Format: format, Color: color}
}

// Print writes paths in the printer's format.
func (p *Printer) Print(paths []string, kind enumfiles.Kind) error {
	if paths == nil {
		paths = []string{}
	}

	switch p.Format {
	case config.FormatPlain, "":
		return p.printPlain(paths, kind)
	case config.FormatJSON:
		data, err := json.MarshalIndent(paths, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(p.Out, string(data))
		return err
	case config.FormatYAML:
		data, err := yaml.Marshal(paths)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		_, err = p.Out.Write(data)
		return err
	default:
		return fmt.Errorf("%w: %q", enumfiles.ErrInvalidFormat, p.Format)
	}
}

func (p *Printer) printPlain(paths []string, kind enumfiles.Kind) error {
	var style func(...string) string
	if p.Color {
		style = NewStyles(p.Out, true).ForKind(kind == enumfiles.KindDirectory).Render
	}

	for _, path := range paths {
		line := path
		if style != nil {
			line = style(path)
		}
		if _, err := fmt.Fprintln(p.Out, line); err != nil {
			return err
		}
	}
	return nil
}
