package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-punchman/internal/games/punchman/world"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the configured levels",
	Long: `Shows every level in the active config with its map size and pickups.
Each level is loaded, so broken maps are reported here too.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	_, src, err := loadSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if src.Count() == 0 {
		fmt.Println("No levels configured.")
		return
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for i := range src.Count() {
		if n := len(src.Name(i)); n > maxNameLen {
			maxNameLen = n
		}
	}

	// Print header
	fmt.Printf("  %-3s  %-*s  %-9s  %-5s  %s\n", "#", maxNameLen, "Name", "Size", "Coins", "Gems")
	fmt.Printf("  %-3s  %-*s  %-9s  %-5s  %s\n", "-", maxNameLen, "----", "----", "-----", "----")

	failed := false
	for i := range src.Count() {
		spec, err := src.Load(i)
		if err != nil {
			fmt.Printf("  %-3d  %-*s  error: %v\n", i+1, maxNameLen, src.Name(i), err)
			failed = true
			continue
		}
		g := spec.Grid
		size := fmt.Sprintf("%dx%d", g.Cols(), g.Rows())
		fmt.Printf("  %-3d  %-*s  %-9s  %-5d  %d\n", i+1, maxNameLen, spec.Name, size,
			g.Count(world.TileCoin), g.Count(world.TileGem))
	}

	fmt.Println()
	fmt.Println("Press 1 or 2 in the game to jump to a level.")
	if failed {
		os.Exit(1)
	}
}
