package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-punchman/internal/audio"
	"github.com/vovakirdan/tui-punchman/internal/core"
	"github.com/vovakirdan/tui-punchman/internal/platform/tui"
	"github.com/vovakirdan/tui-punchman/internal/storage"
)

var (
	flagPlayer  string
	flagLogFile string
	flagNoSound bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing Punch Man.

Controls:
  Left/A, Right/D  - Move
  Space/Up/W       - Jump
  F                - Punch
  E                - Enter portal / flip switch
  Enter            - Start, or try again after the game ends
  P/Esc            - Pause
  R                - Restart the level
  1, 2             - Jump to a level
  V                - Toggle debug boxes
  M                - Mute music
  ?                - Show key help
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives and hits, slower enemies
  normal - Values from the config file
  hard   - Fewer lives and hits, faster enemies, harder knockback

Examples:
  punchman play
  punchman play --difficulty easy
  punchman play --config ./my-punchman.yaml
  punchman play --maps ./maps --no-sound`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "name", os.Getenv("USER"), "Name to record finished runs under")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.punchman/punchman.log", "Log file (the terminal is taken by the game)")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable audio")
}

func runPlay(cmd *cobra.Command, args []string) {
	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "punchman")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, cfg, err := newGame(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Sound is optional; the game plays the same without a device
	audioCfg := cfg.Audio
	if flagNoSound {
		audioCfg.Enabled = false
	}
	player := audio.New(audioCfg, logger)
	if err := player.Start(); err != nil {
		logger.Warn("audio unavailable, playing without sound", "err", err)
	}
	defer player.Close()
	game.SetCueSink(player)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	opts := tui.Options{Player: flagPlayer, Logger: logger}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "err", err)
		// Continue without storage - game still works
		store = nil
	} else {
		opts.Runs = store
	}

	logger.Info("session started", "player", flagPlayer, "size", fmt.Sprintf("%dx%d", width, height), "fps", flagFPS)

	// Run the game
	runErr := tui.Run(game, rt, opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game loop failed", "err", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	logger.Info("session ended", "score", game.State().Score)
}
