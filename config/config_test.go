package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if !cfg.Audio.Enabled {
		t.Error("audio should default on")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level should default to info, got %q", cfg.Log.Level)
	}
	if cfg.Game.PlayerSpeed != 0 {
		t.Error("tuning overrides should default to zero (use built-ins)")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("/nonexistent/nightgrid.toml")
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != Default() {
		t.Error("missing file should yield defaults")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nightgrid.toml")
	content := `
[game]
level = 3
enemy_speed = 150.0
detection_range = 900.0

[audio]
enabled = false
volume = 0.2

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Game.Level != 3 || cfg.Game.EnemySpeed != 150 || cfg.Game.DetectionRange != 900 {
		t.Errorf("game overrides not applied: %+v", cfg.Game)
	}
	if cfg.Audio.Enabled || cfg.Audio.Volume != 0.2 {
		t.Errorf("audio overrides not applied: %+v", cfg.Audio)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log override not applied: %+v", cfg.Log)
	}
	// Untouched sections keep their defaults
	if cfg.Game.PlayerSpeed != 0 {
		t.Errorf("unset override should stay zero, got %v", cfg.Game.PlayerSpeed)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[audio]\nvolume = 3.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("out-of-range volume should be rejected")
	}

	if err := os.WriteFile(path, []byte("[log]\nlevel = \"loud\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("unknown log level should be rejected")
	}
}
