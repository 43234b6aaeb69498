package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubepilot/cubepilot/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show <cycle-id>",
	Short: "Show one recorded cycle in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	c, err := storage.NewCycleRepository(db).Get(args[0])
	if err != nil {
		return err
	}

	fmt.Println(RenderStatus(c.CubeStatus))
	fmt.Printf("Cycle:       %s\n", c.CycleID)
	fmt.Printf("Started:     %s\n", c.StartedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Detection:   %s\n", c.Method)
	fmt.Printf("Status:      %s\n", c.CubeStatus)
	fmt.Printf("Solution:    %s\n", c.Solution)
	fmt.Printf("Robot moves: %s\n", c.RobotMoves)
	fmt.Printf("Strokes:     %d\n", c.MovesCount)
	fmt.Printf("Times:       warmup %.1fs, detect %.1fs, solve %.1fs, robot %.1fs, total %.1fs\n",
		float64(c.WarmupMs)/1000, float64(c.DetectMs)/1000,
		float64(c.SolveMs)/1000, float64(c.RobotMs)/1000,
		float64(c.TotalMs)/1000)
	return nil
}
