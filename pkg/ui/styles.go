package ui

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultStyles []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

// StylesConfig represents the complete styles configuration
type StylesConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Theme maps semantic style names to style definitions
type Theme struct {
	colors map[string]lipgloss.AdaptiveColor
	styles map[string]StyleDef
}

// LoadTheme parses a YAML styles document
func LoadTheme(data []byte) (*Theme, error) {
	var cfg StylesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}

	theme := &Theme{
		colors: make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors)),
		styles: cfg.Styles,
	}
	for name, def := range cfg.Colors {
		theme.colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	for name, def := range cfg.Styles {
		if def.Foreground != "" {
			if _, ok := theme.colors[def.Foreground]; !ok {
				return nil, fmt.Errorf("style %s uses unknown color %q", name, def.Foreground)
			}
		}
	}

	return theme, nil
}

// DefaultTheme returns the embedded theme
func DefaultTheme() *Theme {
	theme, err := LoadTheme(defaultStyles)
	if err != nil {
		panic(fmt.Sprintf("embedded styles are invalid: %v", err))
	}
	return theme
}

// Style builds the named style for renderer r. Unknown names give an
// unstyled style.
func (t *Theme) Style(r *lipgloss.Renderer, name string) lipgloss.Style {
	style := r.NewStyle()

	def, ok := t.styles[name]
	if !ok {
		return style
	}
	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Foreground != "" {
		style = style.Foreground(t.colors[def.Foreground])
	}
	return style
}
