// Package cli implements the command-line interface for cubepilot.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubepilot",
	Short: "CubePilot cube solving robot",
	Long: `CubePilot - the brain of a two-servo Rubik's cube solving robot.

The robot holds the cube in a flipper above a rotating base. CubePilot
reads all six faces through the camera, works out the cube status,
asks the solver for a solution, and drives the servos through the
translated move sequence.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubepilot/cubepilot.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
