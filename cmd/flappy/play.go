package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/W/Click  - Flap (restarts after game over)
  R                 - Restart (after game over)
  ?                 - Toggle full help
  Q/Ctrl+C          - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml --log-file flappy.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	// The alt screen owns the terminal, so logs never go to stderr here
	if err := withLogger(flagLogFile, flagLogLevel, io.Discard, playGame); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playGame loads the tunables, builds a session and runs the TUI until quit.
func playGame(logger *log.Logger) error {
	tunables, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     resolveSeed(),
	}

	session, err := flappy.NewSession(tunables, rt)
	if err != nil {
		return err
	}

	if err := tui.Run(session, rt, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
