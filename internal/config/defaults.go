package config

import (
	_ "embed"
)

//go:embed defaults/pairs.yaml
var defaultPairsYAML []byte

// DefaultPairsConfig returns the default pairs configuration.
func DefaultPairsConfig() PairsConfig {
	return PairsConfig{
		Game: GameSettings{
			RevealDelayMs:     900,
			DefaultDifficulty: "medium",
			DefaultTheme:      "animals",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPairsYAML
}
