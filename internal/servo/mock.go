package servo

import (
	"context"

	"github.com/cubepilot/cubepilot"
)

// Mock records the moves it is asked to execute, for dry runs and
// tests. The zero value is ready to use.
type Mock struct {
	// Executed collects every move string passed to Execute.
	Executed []string
	// Strokes is the total servo stroke count across all calls.
	Strokes int
	// Fail, when set, is returned by the next Execute call.
	Fail error
}

// Execute validates the move string and records it.
func (m *Mock) Execute(ctx context.Context, moves string) error {
	if m.Fail != nil {
		err := m.Fail
		m.Fail = nil
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := cubepilot.ParseMoveTokens(moves); err != nil {
		return err
	}
	m.Executed = append(m.Executed, moves)
	m.Strokes += cubepilot.CountMoves(moves)
	return nil
}

// Close is a no-op.
func (m *Mock) Close() error { return nil }
