// Package config provides YAML-based game configuration loading and
// difficulty presets for the 2048 rules.
package config

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Rules T2048Rules `yaml:"rules"`
}

// T2048Rules defines the board rules.
type T2048Rules struct {
	MergeRule    string  `yaml:"merge_rule"`    // "per_row" or "per_tile"
	WinTile      int     `yaml:"win_tile"`      // Tile value that wins the game
	Spawn4Prob   float64 `yaml:"spawn4_prob"`   // Probability of spawning 4 instead of 2 (0.0-1.0)
	InitialTiles int     `yaml:"initial_tiles"` // Tiles on a fresh board
}
