package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hextide/internal/hex"
	"github.com/vovakirdan/hextide/internal/storage"
	"github.com/vovakirdan/hextide/internal/world"
	"github.com/vovakirdan/hextide/internal/worldgen"
)

var (
	flagFrom string
	flagTo   string
)

var pathCmd = &cobra.Command{
	Use:   "path <world>",
	Short: "Compute a path between two hexes",
	Long: `Compute the cheapest path between two cells of a world and print
it step by step.

The world is loaded from the database; a name that matches a generator
instead ("voyage", "island") builds the world on the fly. Coordinates
are axial "q,r" pairs; 'hextide explore' shows them with the o key.

Examples:
  hextide path reef --from 0,0 --to 5,-2
  hextide path voyage --from 0,0 --to 3,1
  hextide path island --seed 42 --from 0,0 --to 8,-4`,
	Args: cobra.ExactArgs(1),
	Run:  runPath,
}

func init() {
	pathCmd.Flags().StringVar(&flagFrom, "from", "", "Start cell as axial q,r (required)")
	pathCmd.Flags().StringVar(&flagTo, "to", "", "Goal cell as axial q,r (required)")
	pathCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Seed when generating on the fly (0 = random)")
}

func runPath(_ *cobra.Command, args []string) {
	name := args[0]

	from, err := parseAxial(flagFrom)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: bad --from: %v\n", err)
		os.Exit(1)
	}
	to, err := parseAxial(flagTo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: bad --to: %v\n", err)
		os.Exit(1)
	}

	g := loadOrGenerate(name)

	path := g.FindPath(from, to)
	if len(path) == 0 {
		fmt.Printf("No path from %s to %s in %q.\n", flagFrom, flagTo, name)
		return
	}

	fmt.Printf("Path from %s to %s in %q (%d steps):\n\n", flagFrom, flagTo, name, len(path)-1)
	fmt.Printf("  %-4s  %-8s  %-8s  %-9s  %s\n", "Step", "Axial", "Offset", "Terrain", "Cost")

	orientation := g.Layout().Orientation
	total := 0.0
	for i, c := range path {
		q, r := c.Axial()
		col, row := c.Offset(orientation)
		cell := g.At(c)

		cost := 0.0
		if i > 0 {
			cost = cell.MoveCost
			total += cost
		}

		fmt.Printf("  %-4d  %-8s  %-8s  %-9s  %.1f\n", i,
			fmt.Sprintf("%d,%d", q, r),
			fmt.Sprintf("%d,%d", col, row),
			cell.Terrain, cost)
	}

	fmt.Printf("\nTotal cost: %.1f\n", total)
}

// loadOrGenerate resolves a world name against the database first, then
// against the generator registry.
func loadOrGenerate(name string) *world.Grid {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open worlds database: %v\n", err)
		store = nil
	}

	var g *world.Grid
	if store != nil {
		g, err = store.LoadWorld(name)
		store.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if g != nil {
		return g
	}

	if !worldgen.Exists(name) {
		fmt.Fprintf(os.Stderr, "Error: no world or generator named %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'hextide worlds' to see saved worlds.")
		os.Exit(1)
	}

	gen, err := worldgen.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	return gen.Generate(generatorOptions(loadAppConfig()), flagSeed)
}

// parseAxial parses an axial "q,r" pair.
func parseAxial(s string) (hex.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return hex.Coord{}, fmt.Errorf("expected q,r, got %q", s)
	}

	q, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return hex.Coord{}, fmt.Errorf("bad q in %q: %w", s, err)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return hex.Coord{}, fmt.Errorf("bad r in %q: %w", s, err)
	}

	return hex.FromAxial(q, r), nil
}
