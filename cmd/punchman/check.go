package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-punchman/internal/config"
	"github.com/vovakirdan/tui-punchman/internal/games/punchman/levels"
	"github.com/vovakirdan/tui-punchman/internal/games/punchman/world"
)

var checkCmd = &cobra.Command{
	Use:   "check <map>...",
	Short: "Validate map files",
	Long: `Parse one or more map files and report problems such as rows of
different widths. Exits non-zero if any map is invalid.

Map characters:
  .  air        g  ground     p  platform
  s  spikes     c  coin       v  gem

Examples:
  punchman check ./maps/level3.txt
  punchman check ./maps/*.txt`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadPunchman(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, path := range args {
		grid, err := levels.CheckFile(path, cfg.World.CellWidth, cfg.World.CellHeight)
		if err != nil {
			fmt.Printf("FAIL  %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("ok    %s: %dx%d cells, %d coins, %d gems, %d spikes\n", path,
			grid.Cols(), grid.Rows(),
			grid.Count(world.TileCoin), grid.Count(world.TileGem), grid.Count(world.TileSpikes))
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d maps invalid\n", failed, len(args))
		os.Exit(1)
	}
}
