// Package config provides YAML-based configuration loading for the pairs
// platform.
package config

import "time"

// PairsConfig contains all configuration for the pairs game.
type PairsConfig struct {
	Game   GameSettings  `yaml:"game"`
	Themes []ThemeConfig `yaml:"themes"`
}

// GameSettings defines gameplay parameters.
type GameSettings struct {
	RevealDelayMs     int    `yaml:"reveal_delay_ms"` // how long a completed selection stays visible
	DefaultDifficulty string `yaml:"default_difficulty"`
	DefaultTheme      string `yaml:"default_theme"`
}

// RevealDelay returns the reveal delay as a duration.
func (g GameSettings) RevealDelay() time.Duration {
	return time.Duration(g.RevealDelayMs) * time.Millisecond
}

// ThemeConfig declares an extra symbol theme in the config file.
type ThemeConfig struct {
	ID      string   `yaml:"id"`
	Title   string   `yaml:"title"`
	Symbols []string `yaml:"symbols"`
}

// Normalize fills unset fields with their defaults, so a partial user
// config never zeroes gameplay parameters.
func (c *PairsConfig) Normalize() {
	def := DefaultPairsConfig()
	if c.Game.RevealDelayMs <= 0 {
		c.Game.RevealDelayMs = def.Game.RevealDelayMs
	}
	if c.Game.DefaultDifficulty == "" {
		c.Game.DefaultDifficulty = def.Game.DefaultDifficulty
	}
	if c.Game.DefaultTheme == "" {
		c.Game.DefaultTheme = def.Game.DefaultTheme
	}
}
