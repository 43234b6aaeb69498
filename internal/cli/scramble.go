package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubepilot/cubepilot"
	"github.com/cubepilot/cubepilot/internal/plan"
	"github.com/cubepilot/cubepilot/internal/servo"
)

var (
	scrambleMoves  int
	scrambleSeed   int64
	scramblePort   string
	scrambleDryRun bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Scramble the cube",
	Long: `Generate a random scramble and run it on the servos. The scramble
avoids turning the same face twice in a row.

With --dry-run the scramble and its robot move string are printed
instead of executed.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleMoves, "moves", 12, "Scramble length in face turns")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 uses the clock)")
	scrambleCmd.Flags().StringVar(&scramblePort, "port", "/dev/ttyUSB0", "Servo controller serial port")
	scrambleCmd.Flags().BoolVar(&scrambleDryRun, "dry-run", false, "Print the scramble instead of executing it")
}

func runScramble(cmd *cobra.Command, args []string) error {
	seed := scrambleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	cube := cubepilot.NewCube()
	turns := cube.Scramble(scrambleMoves, rng)
	moves, count := plan.Translate(turns)

	fmt.Printf("Scramble:    %s\n", cubepilot.FormatSolution(turns))
	fmt.Printf("Robot moves: %s (%d strokes)\n", moves, count)
	if verbose {
		fmt.Printf("Cube status: %s\n", cube.StatusString())
	}
	if scrambleDryRun {
		return nil
	}

	drv, err := servo.Open(servo.DefaultConfig(scramblePort))
	if err != nil {
		return err
	}
	defer drv.Close()
	return drv.Execute(cmd.Context(), moves)
}
