package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/platform/web"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagGrid       int
	flagBroadcast  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  WASD/Arrows/HJKL - Steer the snake
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow snake
  normal - Default pace
  hard   - Fast snake

The pace stays fixed for the whole run regardless of length.

Examples:
  snake play
  snake play --difficulty hard
  snake play --grid 24
  snake play --config ./my-snake.yaml
  snake play --broadcast :8080    # Serve a live spectator feed`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagGrid, "grid", 0, "Grid size override (0 = from config)")
	playCmd.Flags().StringVar(&flagBroadcast, "broadcast", "", "Address for the WebSocket spectator feed (empty = off)")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Load game config
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset, presetErr := config.ParsePreset(flagDifficulty)
		if presetErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", presetErr)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}

	if flagGrid > 0 {
		cfg.Grid.Size = flagGrid
		cfg.Normalize()
	}

	// Get terminal size for the initial layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open run history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Optional spectator feed
	var hub *web.Hub
	var feedSrv *web.Server
	if flagBroadcast != "" {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake-feed",
		})
		hub = web.NewHub(logger)
		feedSrv = web.NewServer(flagBroadcast, hub, logger)
		feedSrv.Start()
	}

	// Run the game
	runErr := tui.Run(game.New(cfg), store, hub, rt)

	if store != nil {
		store.Close()
	}

	if feedSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		//nolint:errcheck // Best-effort shutdown on exit
		feedSrv.Shutdown(ctx)
		cancel()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
