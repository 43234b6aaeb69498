package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cubepilot/cubepilot/internal/scan"
)

// historyHeader is the tab-separated header row of the history log,
// written once when the file is created.
var historyHeader = []string{
	"Date",
	"FramelessCube",
	"ColorAnalysisWinner",
	"TotRobotTime(s)",
	"CameraWarmUpTime(s)",
	"FaceletsDetectionTime(s)",
	"CubeSolutionTime(s)",
	"RobotSolvingTime(s)",
	"CubeStatus",
	"CubeSolution",
	"MovesCount",
}

// History appends one tab-separated line per solve cycle to a plain
// text log, a long-lived record that survives database resets.
type History struct {
	path      string
	frameless string
}

// NewHistory builds a history logger writing to path. The frameless
// label records the detection mode the robot ran with.
func NewHistory(path, frameless string) *History {
	return &History{path: path, frameless: frameless}
}

// DefaultHistoryPath returns the log location next to the database.
func DefaultHistoryPath() (string, error) {
	dbPath, err := DefaultDBPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(dbPath), "solver_log.txt"), nil
}

// Append writes one cycle to the log, creating the file with its header
// row on first use.
func (h *History) Append(res *scan.CycleResult) error {
	f, err := os.OpenFile(h.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open history log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat history log: %w", err)
	}
	if info.Size() == 0 {
		if _, err := f.WriteString(strings.Join(historyHeader, "\t") + "\n"); err != nil {
			return fmt.Errorf("failed to write history header: %w", err)
		}
	}

	fields := []string{
		res.StartedAt.Format(time.RFC3339),
		h.frameless,
		res.Method.String(),
		seconds(res.TotalTime),
		seconds(res.WarmupTime),
		seconds(res.DetectTime),
		seconds(res.SolveTime),
		seconds(res.RobotTime),
		res.Status,
		res.Solution,
		fmt.Sprintf("%d", res.MovesCount),
	}
	if _, err := f.WriteString(strings.Join(fields, "\t") + "\n"); err != nil {
		return fmt.Errorf("failed to append history line: %w", err)
	}
	return nil
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.1f", d.Seconds())
}
