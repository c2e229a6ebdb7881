package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hextide/internal/platform/tui"
	"github.com/vovakirdan/hextide/internal/storage"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [world]",
	Short: "Explore a world interactively",
	Long: `Open the interactive map explorer.

With a world name, loads that world from the database. Without one,
opens the world browser where you can pick, generate and delete worlds.

Controls:
  Arrows/hjkl  - Move cursor or pan camera
  Tab          - Toggle cursor/camera mode
  t            - Set path target at cursor
  p            - Compute path from cursor to target
  o            - Toggle coordinate labels
  +/-          - Zoom in/out
  g            - Center camera on cursor
  ?            - Toggle help
  Esc          - Back, Q - Quit

Examples:
  hextide explore
  hextide explore reef`,
	Args: cobra.MaximumNArgs(1),
	Run:  runExplore,
}

func runExplore(_ *cobra.Command, args []string) {
	cfg := loadAppConfig()

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	// Open world storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open worlds database: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	if len(args) == 1 {
		name := args[0]
		if store == nil {
			fmt.Fprintln(os.Stderr, "Error: worlds database unavailable")
			os.Exit(1)
		}

		g, loadErr := store.LoadWorld(name)
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", loadErr)
			os.Exit(1)
		}
		if g == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown world %q\n", name)
			fmt.Fprintln(os.Stderr, "Run 'hextide worlds' to see saved worlds.")
			os.Exit(1)
		}

		if _, runErr := tui.RunExplorer(g, name, cfg.Explorer, width, height); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
			os.Exit(1)
		}
		return
	}

	// Browser loop: pick a world, explore it, come back.
	for {
		result, browseErr := tui.RunBrowser(store, cfg, width, height)
		if browseErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", browseErr)
			os.Exit(1)
		}
		if result.Quit {
			return
		}

		goBack, runErr := tui.RunExplorer(result.Grid, result.Name, cfg.Explorer, width, height)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
			os.Exit(1)
		}
		if !goBack {
			return
		}
	}
}
