package config

import (
	_ "embed"
)

//go:embed defaults/modes.yaml
var defaultModesYAML []byte

// DefaultTuning returns a tuning document with no overrides, so the catalog
// values stand as shipped.
func DefaultTuning() Tuning {
	return Tuning{Modes: map[string]ModeTuning{}}
}

// DefaultYAML returns the embedded tuning template, useful for writing a
// starter config file for the user to edit.
func DefaultYAML() []byte {
	return defaultModesYAML
}
