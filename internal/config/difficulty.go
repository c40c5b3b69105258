package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name. Empty means no preset.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// Spawn4ProbForPreset returns the chance of spawning a 4 for a preset.
// Fewer 4s leave more room on the board, so easy spawns them rarely.
// ok is false for presets that keep the configured value (fixed or none).
func Spawn4ProbForPreset(preset DifficultyPreset) (prob float64, ok bool) {
	switch preset {
	case DifficultyEasy:
		return 0.1, true
	case DifficultyNormal:
		return 0.5, true
	case DifficultyHard:
		return 0.75, true
	default:
		return 0, false
	}
}

// ApplyT2048Preset modifies the config based on a difficulty preset.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	if prob, ok := Spawn4ProbForPreset(preset); ok {
		cfg.Rules.Spawn4Prob = prob
	}
}
