package ui_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/arthur-debert/brewformula/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatString(t *testing.T) {
	assert.Equal(t, "term", ui.FormatTerminal.String())
	assert.Equal(t, "text", ui.FormatText.String())
	assert.Equal(t, "unknown", ui.Format(999).String())
}

func TestDetectFormat_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
}

func TestFormatFor(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, ui.FormatText, ui.FormatFor(&bytes.Buffer{}, false), "buffers are never terminals")
	assert.Equal(t, ui.FormatText, ui.FormatFor(f, false))
	assert.Equal(t, ui.FormatText, ui.FormatFor(os.Stdout, true), "noColor wins")
}

func TestDetectFormat_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
	assert.False(t, ui.IsTerminal(f))
}
