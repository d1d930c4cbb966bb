package config

import (
	"fmt"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Supported release archive platforms
const (
	PlatformMacOS = "macos"
	PlatformLinux = "linux"
)

// Settings is the complete configuration of the generator
type Settings struct {
	Formula FormulaSettings `koanf:"formula" toml:"formula"`
}

// FormulaSettings describes the fixed parts of the generated formula
type FormulaSettings struct {
	Name         string `koanf:"name" toml:"name"`
	Desc         string `koanf:"desc" toml:"desc"`
	Binary       string `koanf:"binary" toml:"binary"`
	Platform     string `koanf:"platform" toml:"platform"`
	ArchiveExt   string `koanf:"archive_ext" toml:"archive_ext"`
	TestMarker   string `koanf:"test_marker" toml:"test_marker"`
	HomepageBase string `koanf:"homepage_base" toml:"homepage_base"`
}

// Validate checks that every setting needed to render a formula is present
func (s Settings) Validate() error {
	f := s.Formula
	required := []struct {
		key   string
		value string
	}{
		{"formula.name", f.Name},
		{"formula.desc", f.Desc},
		{"formula.binary", f.Binary},
		{"formula.platform", f.Platform},
		{"formula.archive_ext", f.ArchiveExt},
		{"formula.test_marker", f.TestMarker},
		{"formula.homepage_base", f.HomepageBase},
	}

	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("empty settings: %s", strings.Join(missing, ", "))
	}

	switch f.Platform {
	case PlatformMacOS, PlatformLinux:
	default:
		return fmt.Errorf("unsupported platform %q, supported values: %s, %s", f.Platform, PlatformMacOS, PlatformLinux)
	}

	return nil
}

// TOML encodes the settings as a TOML document
func (s Settings) TOML() (string, error) {
	data, err := toml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to encode settings: %w", err)
	}
	return string(data), nil
}
