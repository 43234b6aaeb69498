package cubepilot

import (
	"math/rand"
	"strings"
	"testing"
)

const solvedStatus = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

func TestNewCubeSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Fatal("new cube should be solved")
	}
	if got := c.StatusString(); got != solvedStatus {
		t.Errorf("StatusString = %q, want %q", got, solvedStatus)
	}
}

func TestFourQuarterTurnsIdentity(t *testing.T) {
	for _, f := range Faces {
		c := NewCube()
		for i := 0; i < 4; i++ {
			c.Apply(FaceTurn{Face: f, Turn: TurnCW})
		}
		if !c.IsSolved() {
			t.Errorf("four %c1 turns should restore the cube", f)
		}
	}
}

func TestTurnInverses(t *testing.T) {
	for _, f := range Faces {
		c := NewCube()
		c.Apply(FaceTurn{Face: f, Turn: TurnCW})
		c.Apply(FaceTurn{Face: f, Turn: TurnCCW})
		if !c.IsSolved() {
			t.Errorf("%c1 then %c3 should restore the cube", f, f)
		}

		c.Apply(FaceTurn{Face: f, Turn: TurnDouble})
		c.Apply(FaceTurn{Face: f, Turn: TurnDouble})
		if !c.IsSolved() {
			t.Errorf("two %c2 turns should restore the cube", f)
		}
	}
}

func TestApplyKeepsColorCounts(t *testing.T) {
	c := NewCube()
	c.ApplyAll([]FaceTurn{
		{Face: FaceU, Turn: TurnDouble},
		{Face: FaceR, Turn: TurnCW},
		{Face: FaceF, Turn: TurnCCW},
	})
	status := c.StatusString()
	for _, f := range Faces {
		if n := strings.Count(status, string(f)); n != 9 {
			t.Errorf("%c appears %d times, want 9", f, n)
		}
	}
}

func TestScrambleReversible(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := NewCube()
	turns := c.Scramble(25, rng)
	if c.IsSolved() {
		t.Fatal("scrambled cube should not be solved")
	}

	// Undo in reverse with inverted turns.
	for i := len(turns) - 1; i >= 0; i-- {
		inv := turns[i]
		switch inv.Turn {
		case TurnCW:
			inv.Turn = TurnCCW
		case TurnCCW:
			inv.Turn = TurnCW
		}
		c.Apply(inv)
	}
	if !c.IsSolved() {
		t.Error("undoing the scramble should restore the cube")
	}
}

func TestScrambleAvoidsRepeatFaces(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	turns := NewCube().Scramble(40, rng)
	if len(turns) != 40 {
		t.Fatalf("got %d turns, want 40", len(turns))
	}
	for i := 1; i < len(turns); i++ {
		if turns[i].Face == turns[i-1].Face {
			t.Fatalf("turns %d and %d repeat face %c", i-1, i, turns[i].Face)
		}
	}
}

func TestColorFaceLetters(t *testing.T) {
	for i, c := range ColorSequence {
		if got := c.FaceLetter(); got != Faces[i] {
			t.Errorf("%v letter = %c, want %c", c, got, Faces[i])
		}
	}
}
