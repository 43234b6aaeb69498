package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubepilot/cubepilot/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solve cycles",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum cycles to list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	cycles, err := storage.NewCycleRepository(db).List(historyLimit)
	if err != nil {
		return err
	}
	if len(cycles) == 0 {
		fmt.Println("No cycles recorded yet.")
		return nil
	}

	fmt.Printf("%-36s  %-19s  %-5s  %6s  %7s\n", "CYCLE", "STARTED", "WHO", "MOVES", "TOTAL")
	for _, c := range cycles {
		fmt.Printf("%-36s  %-19s  %-5s  %6d  %6.1fs\n",
			c.CycleID,
			c.StartedAt.Local().Format("2006-01-02 15:04:05"),
			c.Method,
			c.MovesCount,
			float64(c.TotalMs)/1000,
		)
	}
	return nil
}
