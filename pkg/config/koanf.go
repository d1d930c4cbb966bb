package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/brewformula/pkg/errors"
	"github.com/arthur-debert/brewformula/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds the effective settings: embedded defaults, then the user
// file at path when path is not empty.
func Load(path string) (Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return Settings{}, err
		}

		if _, err := os.Stat(path); err != nil {
			return Settings{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config %s", path).
				WithDetail("path", path)
		}

		if err := k.Load(file.Provider(path), parser); err != nil {
			return Settings{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded user config")
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigParse, "failed to decode settings")
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigParse, "invalid settings")
	}

	return settings, nil
}

// Default returns the embedded default settings
func Default() Settings {
	settings, err := Load("")
	if err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	return settings
}

// parserFor picks the koanf parser matching the file extension
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported config format %q, use .toml, .yaml or .yml", filepath.Ext(path)).
			WithDetail("path", path)
	}
}
