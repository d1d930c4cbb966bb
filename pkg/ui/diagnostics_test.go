package ui_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/brewformula/pkg/ui"
	"github.com/stretchr/testify/assert"
)

func TestDiagnostics_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	d := ui.NewDiagnostics(&buf, false)

	d.Error("unknown flag: --bogus")
	d.Hint("did you mean --owner?")
	d.Usage("Usage:\n  brewformula [flags]\n")

	assert.Equal(t,
		"Error: unknown flag: --bogus\n  did you mean --owner?\n\nUsage:\n  brewformula [flags]\n",
		buf.String())
}

func TestDiagnostics_UsageDropsEscapeCodes(t *testing.T) {
	var buf bytes.Buffer
	d := ui.NewDiagnostics(&buf, true)

	d.Usage("\x1b[1mUsage:\x1b[0m\n  brewformula [flags]\n")

	assert.Equal(t, "\nUsage:\n  brewformula [flags]\n", buf.String())
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestMarkdown_PlainFormatPassesThrough(t *testing.T) {
	md := "# Title\n\nSome *text*."
	assert.Equal(t, md, ui.RenderMarkdown(md, ui.FormatText))
}

func TestMarkdown_TerminalRendersContent(t *testing.T) {
	out := ui.RenderMarkdown("# Title\n\nbody text", ui.FormatTerminal)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body text")
}
