package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/cubepilot/cubepilot"
)

func TestParseSolutionText(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"U2 R1 D3 (3 moves)", "U2 R1 D3"},
		{"F1 (1 moves)", "F1"},
		{"(0 moves)", ""},
		{"  U1 B2 (2 moves)\n", "U1 B2"},
		{"U1 B2", "U1 B2"},
		{"", ""},
	}
	for _, tt := range tests {
		turns, err := ParseSolutionText(tt.text)
		if err != nil {
			t.Errorf("ParseSolutionText(%q): %v", tt.text, err)
			continue
		}
		if got := cubepilot.FormatSolution(turns); got != tt.want {
			t.Errorf("ParseSolutionText(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestParseSolutionTextRejected(t *testing.T) {
	for _, text := range []string{"Error", "Error: Wrong input", "Cube Error"} {
		if _, err := ParseSolutionText(text); !errors.Is(err, cubepilot.ErrSolverRejected) {
			t.Errorf("ParseSolutionText(%q) error = %v, want %v",
				text, err, cubepilot.ErrSolverRejected)
		}
	}
}

func TestParseSolutionTextMalformed(t *testing.T) {
	if _, err := ParseSolutionText("U5 (1 moves)"); err == nil {
		t.Error("ParseSolutionText accepted an invalid turn")
	}
}

func TestSolutionTextRoundTrip(t *testing.T) {
	turns, err := cubepilot.ParseSolution("U2 R1 D3")
	if err != nil {
		t.Fatal(err)
	}
	if got := SolutionText(turns); got != "U2 R1 D3 (3 moves)" {
		t.Errorf("SolutionText = %q, want %q", got, "U2 R1 D3 (3 moves)")
	}
	if got := SolutionText(nil); got != "(0 moves)" {
		t.Errorf("SolutionText(nil) = %q, want %q", got, "(0 moves)")
	}
}

func TestStubReplaysOutput(t *testing.T) {
	s := &Stub{Output: "R1 U1 (2 moves)"}
	turns, err := s.Solve(context.Background(), "")
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if got := cubepilot.FormatSolution(turns); got != "R1 U1" {
		t.Errorf("stub solution = %q, want %q", got, "R1 U1")
	}
}
