package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check the gameplay tunables",
	Long: `Print the effective tunables as YAML, after the config search order
has been applied. With --check, validate a file instead.

Examples:
  flappy config > ~/.flappy/config.yaml
  flappy config --config ./my-flappy.yaml
  flappy config --check ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate this tunables file and exit")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagCheck != "" {
		if err := checkConfig(flagCheck); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: ok\n", flagCheck)
		return
	}

	tunables, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(tunables)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data) //nolint:errcheck // Nothing to do on a broken stdout
}

// checkConfig loads and validates a single file.
func checkConfig(path string) error {
	tunables, err := config.Load(path)
	if err != nil {
		return err
	}
	return tunables.Validate()
}
