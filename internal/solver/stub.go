package solver

import (
	"context"

	"github.com/cubepilot/cubepilot"
)

// Stub replays a fixed solver output, for tests and dry runs.
type Stub struct {
	// Output is the solver text to replay, e.g. "U2 R1 (2 moves)".
	Output string
}

// Solve parses the fixed output, ignoring the cube string.
func (s *Stub) Solve(ctx context.Context, status string) ([]cubepilot.FaceTurn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ParseSolutionText(s.Output)
}

// Func adapts a function to the solver interface, so tests can inspect
// the cube string they were handed.
type Func func(ctx context.Context, status string) ([]cubepilot.FaceTurn, error)

// Solve calls the function.
func (f Func) Solve(ctx context.Context, status string) ([]cubepilot.FaceTurn, error) {
	return f(ctx, status)
}
