// Package config provides YAML-based tuning overrides for the mode catalog.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/modes"
)

// Tuning is the top-level document: per-mode overrides keyed by mode id.
// Absent sections keep the catalog values.
type Tuning struct {
	Modes map[string]ModeTuning `yaml:"modes"`
}

// ModeTuning overrides the tunable sections of one mode. A nil section is
// left untouched; a present section replaces the catalog section wholesale.
type ModeTuning struct {
	Physics *modes.Physics `yaml:"physics"`
	Spawn   *modes.Spawn   `yaml:"spawn"`
	Player  *modes.Player  `yaml:"player"`
}

// Apply pushes the overrides into the mode catalog. Every override is
// re-validated; the first invalid or unknown mode aborts with an error and
// later entries are not applied. Call once at startup, before any run.
func (t Tuning) Apply() error {
	for id, mt := range t.Modes {
		mode, err := modes.Get(id)
		if err != nil {
			return fmt.Errorf("tuning: %w", err)
		}

		physics := mode.Physics
		if mt.Physics != nil {
			physics = *mt.Physics
		}
		spawn := mode.Spawn
		if mt.Spawn != nil {
			spawn = *mt.Spawn
		}
		player := mode.Player
		if mt.Player != nil {
			player = *mt.Player
		}

		if err := modes.Retune(id, physics, spawn, player); err != nil {
			return fmt.Errorf("tuning %q: %w", id, err)
		}
	}
	return nil
}
