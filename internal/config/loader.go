package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the mode tuning document.
// Search order: customPath -> ~/.runner/configs/modes.yaml -> ./configs/modes.yaml -> embedded default
func Load(customPath string) (Tuning, error) {
	var t Tuning

	// Try custom path first; an explicit path must work or the caller hears about it
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return t, fmt.Errorf("failed to read tuning %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &t); err != nil {
			return t, fmt.Errorf("failed to parse tuning %s: %w", customPath, err)
		}
		return t, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("modes.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &t); err == nil {
				return t, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/modes.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &t); err == nil {
			return t, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultModesYAML, &t); err != nil {
		return DefaultTuning(), nil // Fallback to empty tuning if embed fails
	}
	return t, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}
