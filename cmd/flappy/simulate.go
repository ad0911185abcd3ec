package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

var (
	flagTicks     int
	flagJumpEvery int
	flagAutopilot bool
	flagShowFrame bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless session and print a report",
	Long: `Run a session without a terminal UI and report how it went.

The bird either jumps on a fixed schedule (--jump-every) or is flown by a
simple autopilot (--autopilot). With neither it just falls.

Examples:
  flappy simulate --ticks 600
  flappy simulate --jump-every 20 --seed 7
  flappy simulate --autopilot --ticks 6000 --log-level debug
  flappy simulate --show-frame`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum number of ticks to run")
	simulateCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 0, "Jump every N ticks (0 = never)")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the autopilot fly")
	simulateCmd.Flags().BoolVar(&flagShowFrame, "show-frame", false, "Print the final frame as plain text")
}

func runSimulate(cmd *cobra.Command, args []string) {
	if err := withLogger(flagLogFile, flagLogLevel, os.Stderr, simulate); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// simulate runs one headless session and prints its report.
func simulate(logger *log.Logger) error {
	tunables, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = resolveSeed()

	session, err := flappy.NewSession(tunables, rt)
	if err != nil {
		return err
	}
	session.SetLogger(logger)
	session.Start()

	policy := flappy.JumpEvery(flagJumpEvery)
	pilot := "jump-every " + strconv.Itoa(flagJumpEvery)
	if flagAutopilot {
		policy = flappy.Autopilot{Margin: tunables.Bird.Size / 3}.ShouldJump
		pilot = "autopilot"
	}

	res := flappy.Simulate(session, flagTicks, policy)
	fmt.Println(simulationReport(res, session.Snapshot(), rt, pilot))
	if flagShowFrame {
		fmt.Println(finalFrame(session, rt))
	}
	return nil
}

// simulationReport formats a finished run as a table.
func simulationReport(res flappy.Result, snap flappy.Snapshot, rt core.RuntimeConfig, pilot string) string {
	elapsed := rt.FrameDuration() * time.Duration(res.Ticks)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Metric", "Value").
		Row("Seed", strconv.FormatInt(rt.Seed, 10)).
		Row("Pilot", pilot).
		Row("Ticks", strconv.Itoa(res.Ticks)).
		Row("Time", fmt.Sprintf("%.1fs", elapsed.Seconds())).
		Row("Score", strconv.Itoa(res.Score)).
		Row("End", res.Reason.String()).
		Row("Pipes", strconv.Itoa(len(snap.Pipes))).
		Row("Clouds", strconv.Itoa(len(snap.Clouds))).
		Row("Trees", strconv.Itoa(len(snap.Trees)))

	return t.String()
}

// finalFrame draws the session's current state as plain text at the
// runtime screen size.
func finalFrame(session *flappy.Session, rt core.RuntimeConfig) string {
	screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
	session.SetRenderer(flappy.NewScreenRenderer(screen, session.Tunables()))
	session.Redraw()
	return screen.String()
}
