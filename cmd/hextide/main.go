// hextide is a terminal toolkit for hexagonal strategy-game worlds.
//
// Usage:
//
//	hextide generate --name reef     - Generate a world and save it
//	hextide explore [world]          - Explore a world interactively
//	hextide path <world> ...         - Compute a path between two hexes
//	hextide worlds                   - List, inspect and delete saved worlds
//	hextide serve                    - Start SSH server for remote exploration
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.hextide/worlds.db)
//	--config <path>  - Set config file path (default: search order)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hextide/internal/config"
	"github.com/vovakirdan/hextide/internal/hex"
	"github.com/vovakirdan/hextide/internal/worldgen"
)

var (
	// Global flags
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hextide",
	Short: "Hextide - Hexagonal worlds in your terminal",
	Long: `Hextide is a terminal toolkit for hexagonal strategy-game worlds:
generate islands, save them, compute paths and explore the map, locally
or over SSH.

Available commands:
  generate - Generate a world and save it
  explore  - Interactive map explorer
  path     - Compute a path between two hexes
  worlds   - List, inspect and delete saved worlds
  serve    - Start SSH server for remote exploration

Examples:
  hextide generate --name reef --generator island
  hextide explore reef
  hextide path reef --from 0,0 --to 5,-2
  hextide worlds
  hextide serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hextide/worlds.db", "Path to worlds database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (empty = default search order)")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(worldsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadAppConfig loads the application config. A broken explicit
// --config path is fatal; everything else falls back silently.
func loadAppConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// generatorOptions maps the application config onto generator tunables.
func generatorOptions(cfg config.Config) worldgen.Options {
	orientation, _ := hex.ParseOrientation(cfg.World.Orientation)
	return worldgen.Options{
		Layout: hex.Layout{
			Orientation: orientation,
			Size:        cfg.World.HexSize,
			OriginX:     cfg.World.OriginX,
			OriginY:     cfg.World.OriginY,
		},
		Radius:        cfg.Island.Radius,
		SeaLevel:      cfg.Island.SeaLevel,
		MountainLevel: cfg.Island.MountainLevel,
		Ports:         cfg.Island.Ports,
	}
}
