package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg T2048Config
	if err := yaml.Unmarshal(GetDefaultYAML("2048"), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultT2048Config() {
		t.Errorf("embedded default = %+v, want %+v", cfg, DefaultT2048Config())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default is invalid: %v", err)
	}
}

func TestLoadT2048CustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t2048.yaml")
	data := []byte("rules:\n  merge_rule: per_tile\n  spawn4_prob: 0.1\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadT2048(path)
	if err != nil {
		t.Fatalf("LoadT2048() failed: %v", err)
	}

	if cfg.Rules.MergeRule != "per_tile" {
		t.Errorf("MergeRule = %q, want per_tile", cfg.Rules.MergeRule)
	}
	if cfg.Rules.Spawn4Prob != 0.1 {
		t.Errorf("Spawn4Prob = %v, want 0.1", cfg.Rules.Spawn4Prob)
	}
	// Unset fields keep defaults
	if cfg.Rules.WinTile != 2048 || cfg.Rules.InitialTiles != 2 {
		t.Errorf("missing fields should keep defaults, got %+v", cfg.Rules)
	}
}

func TestLoadT2048Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadT2048(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("rules: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadT2048(bad); err == nil {
		t.Error("malformed config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("rules:\n  win_tile: 1000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadT2048(invalid); err == nil {
		t.Error("non power of two win tile should fail validation")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*T2048Config)
		wantErr bool
	}{
		{"defaults", func(*T2048Config) {}, false},
		{"unknown merge rule", func(c *T2048Config) { c.Rules.MergeRule = "twice" }, true},
		{"negative probability", func(c *T2048Config) { c.Rules.Spawn4Prob = -0.1 }, true},
		{"probability above one", func(c *T2048Config) { c.Rules.Spawn4Prob = 1.5 }, true},
		{"zero initial tiles", func(c *T2048Config) { c.Rules.InitialTiles = 0 }, true},
		{"small win tile", func(c *T2048Config) { c.Rules.WinTile = 2 }, true},
		{"win at 4096", func(c *T2048Config) { c.Rules.WinTile = 4096 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultT2048Config()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyT2048Preset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   float64
	}{
		{DifficultyEasy, 0.1},
		{DifficultyNormal, 0.5},
		{DifficultyHard, 0.75},
		{DifficultyFixed, 0.3}, // keeps configured value
		{"", 0.3},
	}

	for _, tt := range tests {
		cfg := DefaultT2048Config()
		cfg.Rules.Spawn4Prob = 0.3
		ApplyT2048Preset(&cfg, tt.preset)
		if cfg.Rules.Spawn4Prob != tt.want {
			t.Errorf("preset %q: Spawn4Prob = %v, want %v", tt.preset, cfg.Rules.Spawn4Prob, tt.want)
		}
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParseDifficultyPreset(s); err != nil {
			t.Errorf("ParseDifficultyPreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseDifficultyPreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
	if _, ok := Spawn4ProbForPreset(DifficultyFixed); ok {
		t.Error("fixed preset should keep the configured spawn probability")
	}
}
