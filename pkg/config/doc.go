// Package config holds the settings for the fixed parts of a generated
// formula: its name, description, binary, platform, archive extension and
// smoke-test marker.
//
// Settings are layered with koanf. Embedded defaults (embedded/defaults.toml)
// load first; an optional user file given with --config is merged on top.
// The user file may be TOML (.toml) or YAML (.yaml, .yml):
//
//	[formula]
//	binary = "vartui"
//	test_marker = "Usage:"
//
// No environment variable is consulted, so the same flags and file always
// produce the same formula.
package config
