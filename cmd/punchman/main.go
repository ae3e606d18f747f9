// punchman is a side-scrolling platformer played in the terminal.
//
// Usage:
//
//	punchman play            - Play the game
//	punchman levels          - List the configured levels
//	punchman scores          - Show the best finished runs
//	punchman serve           - Start SSH server for remote play
//	punchman check <map>     - Validate a map file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.punchman/scores.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <name>   - easy, normal or hard
//	--maps <dir>          - Read map files from a directory instead of the bundled ones
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-punchman/internal/config"
	"github.com/vovakirdan/tui-punchman/internal/games/punchman"
	"github.com/vovakirdan/tui-punchman/internal/games/punchman/levels"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMaps       string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "punchman",
	Short: "Punch Man - a platformer in your terminal",
	Long: `Punch Man is a side-scrolling platformer played in the terminal.
Run, jump and punch through the levels, collect gems to open the portal,
and reach the end with as many coins as you can.

Available commands:
  play     - Play the game
  levels   - List the configured levels
  scores   - View the best runs
  serve    - Start SSH server for remote play
  check    - Validate a map file

Examples:
  punchman play
  punchman play --difficulty hard
  punchman scores --tui
  punchman serve --ssh :2222
  punchman check ./maps/level3.txt`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.punchman/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagMaps, "maps", "", "Directory of map files (default: bundled maps)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
}

// newLogger creates the leveled logger shared by a command.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens a log file for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// loadSetup reads the game config, applies the difficulty preset and
// picks the map source.
func loadSetup() (config.PunchmanConfig, *levels.Loader, error) {
	cfg, err := config.LoadPunchman(flagConfig)
	if err != nil {
		return config.PunchmanConfig{}, nil, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.PunchmanConfig{}, nil, err
	}
	config.ApplyPunchmanPreset(&cfg, preset)

	if flagMaps != "" {
		return cfg, levels.FromDir(expandHome(flagMaps), cfg), nil
	}
	return cfg, levels.Bundled(cfg), nil
}

// newGame builds a game from the command line setup.
func newGame(logger *log.Logger) (*punchman.Game, config.PunchmanConfig, error) {
	cfg, src, err := loadSetup()
	if err != nil {
		return nil, config.PunchmanConfig{}, err
	}
	game, err := punchman.New(cfg, src, logger)
	if err != nil {
		return nil, config.PunchmanConfig{}, err
	}
	return game, cfg, nil
}
