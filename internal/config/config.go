// Package config provides YAML-based configuration loading for world
// geometry, island generation and the explorer UI.
package config

// Config is the root hextide configuration document.
type Config struct {
	World    WorldConfig    `yaml:"world"`
	Island   IslandConfig   `yaml:"island"`
	Explorer ExplorerConfig `yaml:"explorer"`
}

// WorldConfig defines the hex layout shared by every world.
type WorldConfig struct {
	Orientation string  `yaml:"orientation"` // "pointy" or "flat"
	HexSize     float64 `yaml:"hex_size"`    // hex radius in world units
	OriginX     float64 `yaml:"origin_x"`
	OriginY     float64 `yaml:"origin_y"`
}

// IslandConfig defines parameters for the island generator.
type IslandConfig struct {
	Radius        int     `yaml:"radius"`         // map radius in hexes
	SeaLevel      float64 `yaml:"sea_level"`      // elevation below this becomes ocean
	MountainLevel float64 `yaml:"mountain_level"` // elevation above this becomes mountains
	Ports         int     `yaml:"ports"`          // coastal ports to place
}

// ExplorerConfig defines parameters for the interactive map view.
type ExplorerConfig struct {
	HexSpan    int     `yaml:"hex_span"`    // screen columns between adjacent hex centers
	Aspect     float64 `yaml:"aspect"`      // vertical squash for non-square terminal cells
	ShowCoords bool    `yaml:"show_coords"` // start with axial labels drawn on the map
}
