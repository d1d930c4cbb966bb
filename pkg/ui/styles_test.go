package ui_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/brewformula/pkg/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := ui.DefaultTheme()
	r := lipgloss.NewRenderer(&bytes.Buffer{})

	assert.True(t, theme.Style(r, "Error").GetBold())
	assert.False(t, theme.Style(r, "Hint").GetBold())
	assert.False(t, theme.Style(r, "Missing").GetBold())
}

func TestLoadTheme(t *testing.T) {
	theme, err := ui.LoadTheme([]byte(`
colors:
  blue:
    light: "#0000AA"
    dark: "#5555FF"
styles:
  Heading:
    bold: true
    italic: true
    foreground: blue
`))
	require.NoError(t, err)

	style := theme.Style(lipgloss.NewRenderer(&bytes.Buffer{}), "Heading")
	assert.True(t, style.GetBold())
	assert.True(t, style.GetItalic())
}

func TestLoadTheme_UnknownColor(t *testing.T) {
	_, err := ui.LoadTheme([]byte("styles:\n  Error:\n    foreground: nope\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown color "nope"`)
}

func TestLoadTheme_InvalidYAML(t *testing.T) {
	_, err := ui.LoadTheme([]byte("colors: [unterminated"))
	assert.Error(t, err)
}
