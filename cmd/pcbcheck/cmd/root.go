package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "pcbcheck",
	Short: "Validate PCB design connectivity",
	Long: `pcbcheck checks that the chips and connections of PCB design files are
electrically valid and prints the resulting connection groups.

Examples:
  pcbcheck check --catalog chips.yaml board.pcb     # Validate a design
  pcbcheck check -c chips.yaml --json *.pcb         # Validate several designs, JSON output
  pcbcheck fmt board.pcb                            # Print a design in canonical form`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger(verbose)
		return err
	},
}

// newLogger builds the command logger.
var newLogger = func(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Execute runs the root command
func Execute() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the root command and flushes the logger, whether the command
// failed or not.
func run() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
