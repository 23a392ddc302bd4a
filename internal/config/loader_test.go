package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestLoadPairsCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "pairs.yaml")

	content := `
game:
  reveal_delay_ms: 500
themes:
  - id: ocean
    title: Ocean
    symbols: ["a", "b", "c", "d"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadPairs(path)
	if err != nil {
		t.Fatalf("LoadPairs() failed: %v", err)
	}

	if cfg.Game.RevealDelayMs != 500 {
		t.Errorf("Expected reveal_delay_ms 500, got %d", cfg.Game.RevealDelayMs)
	}

	// Unset fields fall back to defaults
	if cfg.Game.DefaultDifficulty != "medium" {
		t.Errorf("Expected default difficulty medium, got %q", cfg.Game.DefaultDifficulty)
	}
	if cfg.Game.DefaultTheme != "animals" {
		t.Errorf("Expected default theme animals, got %q", cfg.Game.DefaultTheme)
	}

	if len(cfg.Themes) != 1 || cfg.Themes[0].ID != "ocean" {
		t.Errorf("Expected the ocean theme, got %v", cfg.Themes)
	}
}

func TestLoadPairsMissingCustomPath(t *testing.T) {
	if _, err := LoadPairs(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("An explicit config path that cannot be read should fail")
	}
}

func TestLoadPairsBadYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "pairs.yaml")
	if err := os.WriteFile(path, []byte("game: [not a map"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := LoadPairs(path); err == nil {
		t.Error("An explicit config path with bad YAML should fail")
	}
}

func TestDefaultPairsConfig(t *testing.T) {
	cfg := DefaultPairsConfig()

	if cfg.Game.RevealDelayMs != 900 {
		t.Errorf("Expected default reveal delay 900ms, got %d", cfg.Game.RevealDelayMs)
	}
	if got := cfg.Game.RevealDelay(); got != 900*time.Millisecond {
		t.Errorf("Expected 900ms duration, got %v", got)
	}
	if cfg.Game.DefaultDifficulty != "medium" || cfg.Game.DefaultTheme != "animals" {
		t.Errorf("Unexpected defaults: %+v", cfg.Game)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg PairsConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("Embedded default YAML does not parse: %v", err)
	}

	def := DefaultPairsConfig()
	if cfg.Game != def.Game {
		t.Errorf("Embedded default %+v differs from hardcoded %+v", cfg.Game, def.Game)
	}
}

func TestNormalize(t *testing.T) {
	var cfg PairsConfig
	cfg.Normalize()

	def := DefaultPairsConfig()
	if cfg.Game != def.Game {
		t.Errorf("Normalize of a zero config should give defaults, got %+v", cfg.Game)
	}

	// Set fields survive
	cfg = PairsConfig{Game: GameSettings{RevealDelayMs: 300}}
	cfg.Normalize()
	if cfg.Game.RevealDelayMs != 300 {
		t.Errorf("Normalize should keep set fields, got %d", cfg.Game.RevealDelayMs)
	}
}
