package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Diagnostics prints errors, hints and usage text to the error stream
type Diagnostics struct {
	out      io.Writer
	format   Format
	theme    *Theme
	renderer *lipgloss.Renderer
}

// NewDiagnostics creates a printer for out. Styling is used only when out is
// a color-capable terminal and noColor is false.
func NewDiagnostics(out io.Writer, noColor bool) *Diagnostics {
	return &Diagnostics{
		out:      out,
		format:   FormatFor(out, noColor),
		theme:    DefaultTheme(),
		renderer: lipgloss.NewRenderer(out),
	}
}

// Error prints "Error: <message>"
func (d *Diagnostics) Error(message string) {
	fmt.Fprintln(d.out, d.styled("Error", "Error: "+message))
}

// Hint prints an indented suggestion line
func (d *Diagnostics) Hint(message string) {
	fmt.Fprintln(d.out, d.styled("Hint", "  "+message))
}

// Usage prints the usage text after a blank line. Escape sequences already
// in usage are removed unless the output is a color terminal.
func (d *Diagnostics) Usage(usage string) {
	usage = strings.TrimRight(usage, "\n")
	if d.format != FormatTerminal {
		usage = ansi.Strip(usage)
	}
	fmt.Fprintln(d.out)
	fmt.Fprint(d.out, d.styled("Usage", usage)+"\n")
}

func (d *Diagnostics) styled(style, text string) string {
	if d.format != FormatTerminal {
		return text
	}
	return d.theme.Style(d.renderer, style).Render(text)
}
