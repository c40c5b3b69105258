package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Rules: T2048Rules{
			MergeRule:    "per_row",
			WinTile:      2048,
			Spawn4Prob:   0.5,
			InitialTiles: 2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "2048", "t2048":
		return defaultT2048YAML
	default:
		return nil
	}
}
