package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadT2048 loads 2048 configuration.
// Search order: customPath -> ~/.tui2048/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default
// Fields missing from a file keep their default values.
func LoadT2048(customPath string) (T2048Config, error) {
	cfg := DefaultT2048Config()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := UserConfigPath("t2048.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultT2048Config()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/t2048.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultT2048Config()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultT2048YAML, &cfg); err != nil {
		return DefaultT2048Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c T2048Config) Validate() error {
	switch c.Rules.MergeRule {
	case "", "per_row", "per_tile":
	default:
		return fmt.Errorf("invalid merge_rule %q (want per_row or per_tile)", c.Rules.MergeRule)
	}
	if c.Rules.WinTile < 4 || c.Rules.WinTile&(c.Rules.WinTile-1) != 0 {
		return fmt.Errorf("invalid win_tile %d (want a power of two >= 4)", c.Rules.WinTile)
	}
	if c.Rules.Spawn4Prob < 0 || c.Rules.Spawn4Prob > 1 {
		return fmt.Errorf("invalid spawn4_prob %v (want 0.0-1.0)", c.Rules.Spawn4Prob)
	}
	if c.Rules.InitialTiles < 1 || c.Rules.InitialTiles > 16 {
		return fmt.Errorf("invalid initial_tiles %d (want 1-16)", c.Rules.InitialTiles)
	}
	return nil
}

// UserConfigPath returns the path of a config file in the user config
// directory, or empty if home is unavailable.
func UserConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui2048", "configs", filename)
}
