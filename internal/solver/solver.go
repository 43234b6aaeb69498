// Package solver wraps the external two-phase cube solver. The solver
// is a separate program: it takes a 54-character URFDLB cube string and
// prints a Singmaster solution followed by the move count, in the form
// "U2 R1 D3 (3 moves)", or the word "Error" when the string is not a
// reachable cube state.
package solver

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/cubepilot/cubepilot"
)

// Config describes how the external solver is invoked.
type Config struct {
	// Path is the solver binary.
	Path string
	// MaxMoves caps the solution length; 0 uses the solver default.
	MaxMoves int
	// MaxTime is the search budget in seconds.
	MaxTime float64
}

// Command runs the external solver binary per call.
type Command struct {
	cfg Config
}

// NewCommand builds a Command solver.
func NewCommand(cfg Config) *Command {
	if cfg.MaxMoves == 0 {
		cfg.MaxMoves = 20
	}
	if cfg.MaxTime == 0 {
		cfg.MaxTime = 2
	}
	return &Command{cfg: cfg}
}

// Solve invokes the solver with the cube string and parses its output.
func (c *Command) Solve(ctx context.Context, status string) ([]cubepilot.FaceTurn, error) {
	cmd := exec.CommandContext(ctx, c.cfg.Path,
		status,
		strconv.Itoa(c.cfg.MaxMoves),
		strconv.FormatFloat(c.cfg.MaxTime, 'f', -1, 64),
	)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("solver: %s: %w", c.cfg.Path, err)
	}
	return ParseSolutionText(out.String())
}

// ParseSolutionText extracts the face turns from the solver's output
// line. The trailing "(<n> moves)" annotation is dropped; the word
// "Error" anywhere in the output means the cube string was rejected.
func ParseSolutionText(text string) ([]cubepilot.FaceTurn, error) {
	text = strings.TrimSpace(text)
	if strings.Contains(text, "Error") {
		return nil, cubepilot.ErrSolverRejected
	}
	if i := strings.IndexByte(text, '('); i >= 0 {
		text = strings.TrimSpace(text[:i])
	}
	if text == "" {
		return nil, nil
	}
	return cubepilot.ParseSolution(text)
}

// SolutionText renders a solution back into the solver's output
// convention, for logs and the history file.
func SolutionText(turns []cubepilot.FaceTurn) string {
	if len(turns) == 0 {
		return "(0 moves)"
	}
	return fmt.Sprintf("%s (%d moves)", cubepilot.FormatSolution(turns), len(turns))
}
