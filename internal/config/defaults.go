package config

import (
	_ "embed"
)

//go:embed defaults/hextide.yaml
var defaultYAML []byte

// Default returns the built-in configuration used when no config file exists.
func Default() Config {
	return Config{
		World: WorldConfig{
			Orientation: "pointy",
			HexSize:     10.0,
			OriginX:     0.0,
			OriginY:     0.0,
		},
		Island: IslandConfig{
			Radius:        12,
			SeaLevel:      0.32,
			MountainLevel: 0.74,
			Ports:         3,
		},
		Explorer: ExplorerConfig{
			HexSpan:    4,
			Aspect:     0.58,
			ShowCoords: false,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
