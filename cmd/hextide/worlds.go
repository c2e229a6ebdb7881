package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hextide/internal/storage"
)

var worldsCmd = &cobra.Command{
	Use:   "worlds",
	Short: "List, inspect and delete saved worlds",
	Long: `Manage the saved worlds database.

Without a subcommand, lists all saved worlds. For an interactive view
of the same list, run 'hextide explore' without arguments.

Examples:
  hextide worlds
  hextide worlds show reef
  hextide worlds delete reef`,
	Run: runWorldsList,
}

var worldsShowCmd = &cobra.Command{
	Use:   "show <world>",
	Short: "Show details for a saved world",
	Args:  cobra.ExactArgs(1),
	Run:   runWorldsShow,
}

var worldsDeleteCmd = &cobra.Command{
	Use:   "delete <world>",
	Short: "Delete a saved world",
	Args:  cobra.ExactArgs(1),
	Run:   runWorldsDelete,
}

func init() {
	worldsCmd.AddCommand(worldsShowCmd)
	worldsCmd.AddCommand(worldsDeleteCmd)
}

func runWorldsList(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening worlds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	worlds, err := store.ListWorlds()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing worlds: %v\n", err)
		os.Exit(1)
	}

	if len(worlds) == 0 {
		fmt.Println("No worlds saved yet.")
		fmt.Println()
		fmt.Println("Run 'hextide generate --name myworld' to create one.")
		return
	}

	fmt.Println("Saved worlds:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, w := range worlds {
		if len(w.Name) > maxNameLen {
			maxNameLen = len(w.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-10s  %-7s  %s\n", maxNameLen, "Name", "Generator", "Cells", "Updated")
	fmt.Printf("  %-*s  %-10s  %-7s  %s\n", maxNameLen, "----", "---------", "-----", "-------")

	// Print worlds
	for _, w := range worlds {
		fmt.Printf("  %-*s  %-10s  %-7d  %s\n",
			maxNameLen, w.Name, w.Generator, w.Cells, w.UpdatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'hextide explore <name>' to explore a world.")
}

func runWorldsShow(_ *cobra.Command, args []string) {
	name := args[0]

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening worlds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entry, err := store.WorldByName(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if entry == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown world %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'hextide worlds' to see saved worlds.")
		os.Exit(1)
	}

	g, err := store.LoadWorld(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if g == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown world %q\n", name)
		os.Exit(1)
	}

	data, err := g.EncodeJSON()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding snapshot: %v\n", err)
		os.Exit(1)
	}

	layout := g.Layout()
	fmt.Printf("World %q\n\n", entry.Name)
	fmt.Printf("  Generator:    %s\n", entry.Generator)
	fmt.Printf("  Cells:        %d\n", g.Len())
	fmt.Printf("  Orientation:  %s\n", layout.Orientation)
	fmt.Printf("  Hex size:     %.1f\n", layout.Size)
	fmt.Printf("  Snapshot:     %d bytes JSON\n", len(data))
	fmt.Printf("  Created:      %s\n", entry.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("  Updated:      %s\n", entry.UpdatedAt.Format("2006-01-02 15:04"))

	// Terrain breakdown
	counts := make(map[string]int)
	for _, c := range g.Coords() {
		counts[g.At(c).Terrain]++
	}
	terrains := make([]string, 0, len(counts))
	for t := range counts {
		terrains = append(terrains, t)
	}
	sort.Strings(terrains)

	fmt.Println()
	fmt.Println("  Terrain:")
	for _, t := range terrains {
		fmt.Printf("    %-9s %d\n", t, counts[t])
	}
}

func runWorldsDelete(_ *cobra.Command, args []string) {
	name := args[0]

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening worlds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	deleted, err := store.DeleteWorld(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !deleted {
		fmt.Fprintf(os.Stderr, "Error: unknown world %q\n", name)
		os.Exit(1)
	}

	fmt.Printf("Deleted world %q.\n", name)
}
