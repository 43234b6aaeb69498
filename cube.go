package cubepilot

import "math/rand"

// CubeColor is one of the six facelet colors.
// The zero-based order matches the conventional URFDLB color sequence
// (white up, red right, green front).
type CubeColor int

const (
	White CubeColor = iota
	Red
	Green
	Yellow
	Orange
	Blue
)

// ColorSequence lists the six colors in conventional URFDLB order.
var ColorSequence = [6]CubeColor{White, Red, Green, Yellow, Orange, Blue}

func (c CubeColor) String() string {
	switch c {
	case White:
		return "white"
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Orange:
		return "orange"
	case Blue:
		return "blue"
	}
	return "?"
}

// FaceLetter returns the solver face letter conventionally carrying the
// color: white→U, red→R, green→F, yellow→D, orange→L, blue→B.
func (c CubeColor) FaceLetter() Face {
	switch c {
	case White:
		return FaceU
	case Red:
		return FaceR
	case Green:
		return FaceF
	case Yellow:
		return FaceD
	case Orange:
		return FaceL
	case Blue:
		return FaceB
	}
	return 0
}

// cubeFace indexes the Facelets array. The internal order (U,D,F,B,R,L)
// differs from URFDLB; faceletOrder maps between the two.
type cubeFace int

const (
	faceUp cubeFace = iota
	faceDown
	faceFront
	faceBack
	faceRight
	faceLeft
)

// faceletOrder lists the internal faces in URFDLB order, used when
// rendering the 54-character status string.
var faceletOrder = [6]cubeFace{faceUp, faceRight, faceFront, faceDown, faceLeft, faceBack}

func solvedColor(f cubeFace) CubeColor {
	switch f {
	case faceUp:
		return White
	case faceDown:
		return Yellow
	case faceFront:
		return Green
	case faceBack:
		return Blue
	case faceRight:
		return Red
	case faceLeft:
		return Orange
	}
	return White
}

// Cube is a simulated 3x3 cube used for scramble generation and testing.
// Each face has 9 facelets indexed row-major:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) never moves.
type Cube struct {
	Facelets [6][9]CubeColor
}

// NewCube returns a solved cube with white up and green in front.
func NewCube() *Cube {
	c := &Cube{}
	for f := cubeFace(0); f < 6; f++ {
		color := solvedColor(f)
		for i := 0; i < 9; i++ {
			c.Facelets[f][i] = color
		}
	}
	return c
}

// IsSolved reports whether every face is uniformly its solved color.
func (c *Cube) IsSolved() bool {
	for f := cubeFace(0); f < 6; f++ {
		want := solvedColor(f)
		for i := 0; i < 9; i++ {
			if c.Facelets[f][i] != want {
				return false
			}
		}
	}
	return true
}

// StatusString renders the cube as the 54-character URFDLB solver string.
func (c *Cube) StatusString() string {
	b := make([]byte, 0, 54)
	for _, f := range faceletOrder {
		for i := 0; i < 9; i++ {
			b = append(b, byte(c.Facelets[f][i].FaceLetter()))
		}
	}
	return string(b)
}

// Apply performs a face turn on the cube.
func (c *Cube) Apply(ft FaceTurn) {
	face := moveFace(ft.Face)
	switch ft.Turn {
	case TurnCW:
		c.moveCW(face)
	case TurnCCW:
		c.moveCW(face)
		c.moveCW(face)
		c.moveCW(face)
	case TurnDouble:
		c.moveCW(face)
		c.moveCW(face)
	}
}

// ApplyAll performs a sequence of face turns.
func (c *Cube) ApplyAll(turns []FaceTurn) {
	for _, ft := range turns {
		c.Apply(ft)
	}
}

// Scramble applies n random face turns, avoiding consecutive turns of the
// same face, and returns the applied sequence.
func (c *Cube) Scramble(n int, rng *rand.Rand) []FaceTurn {
	turns := make([]FaceTurn, 0, n)
	var last Face
	for len(turns) < n {
		face := Faces[rng.Intn(6)]
		if face == last {
			continue
		}
		last = face
		ft := FaceTurn{Face: face, Turn: Turn(1 + rng.Intn(3))}
		c.Apply(ft)
		turns = append(turns, ft)
	}
	return turns
}

func moveFace(f Face) cubeFace {
	switch f {
	case FaceU:
		return faceUp
	case FaceD:
		return faceDown
	case FaceF:
		return faceFront
	case FaceB:
		return faceBack
	case FaceR:
		return faceRight
	case FaceL:
		return faceLeft
	}
	return faceUp
}

func (c *Cube) moveCW(face cubeFace) {
	c.rotateFaceCW(face)
	c.cycleEdgesCW(face)
}

// rotateFaceCW rotates the stickers of one face 90 degrees clockwise.
func (c *Cube) rotateFaceCW(face cubeFace) {
	f := &c.Facelets[face]
	t := f[0]
	f[0] = f[6]
	f[6] = f[8]
	f[8] = f[2]
	f[2] = t

	t = f[1]
	f[1] = f[3]
	f[3] = f[7]
	f[7] = f[5]
	f[5] = t
}

// cycleEdgesCW cycles the three-sticker strips of the four adjacent faces.
func (c *Cube) cycleEdgesCW(face cubeFace) {
	switch face {
	case faceUp:
		c.cycleStrips(
			faceFront, [3]int{0, 1, 2},
			faceLeft, [3]int{0, 1, 2},
			faceBack, [3]int{0, 1, 2},
			faceRight, [3]int{0, 1, 2},
		)
	case faceDown:
		c.cycleStrips(
			faceFront, [3]int{6, 7, 8},
			faceRight, [3]int{6, 7, 8},
			faceBack, [3]int{6, 7, 8},
			faceLeft, [3]int{6, 7, 8},
		)
	case faceFront:
		c.cycleStrips(
			faceUp, [3]int{6, 7, 8},
			faceRight, [3]int{0, 3, 6},
			faceDown, [3]int{2, 1, 0},
			faceLeft, [3]int{8, 5, 2},
		)
	case faceBack:
		c.cycleStrips(
			faceUp, [3]int{2, 1, 0},
			faceLeft, [3]int{0, 3, 6},
			faceDown, [3]int{6, 7, 8},
			faceRight, [3]int{8, 5, 2},
		)
	case faceRight:
		c.cycleStrips(
			faceUp, [3]int{2, 5, 8},
			faceBack, [3]int{6, 3, 0},
			faceDown, [3]int{2, 5, 8},
			faceFront, [3]int{2, 5, 8},
		)
	case faceLeft:
		c.cycleStrips(
			faceUp, [3]int{0, 3, 6},
			faceFront, [3]int{0, 3, 6},
			faceDown, [3]int{0, 3, 6},
			faceBack, [3]int{8, 5, 2},
		)
	}
}

// cycleStrips moves strip a←d, d←c, c←b, b←a.
func (c *Cube) cycleStrips(fa cubeFace, ia [3]int, fb cubeFace, ib [3]int, fc cubeFace, ic [3]int, fd cubeFace, id [3]int) {
	var t [3]CubeColor
	for k := 0; k < 3; k++ {
		t[k] = c.Facelets[fa][ia[k]]
	}
	for k := 0; k < 3; k++ {
		c.Facelets[fa][ia[k]] = c.Facelets[fd][id[k]]
	}
	for k := 0; k < 3; k++ {
		c.Facelets[fd][id[k]] = c.Facelets[fc][ic[k]]
	}
	for k := 0; k < 3; k++ {
		c.Facelets[fc][ic[k]] = c.Facelets[fb][ib[k]]
	}
	for k := 0; k < 3; k++ {
		c.Facelets[fb][ib[k]] = t[k]
	}
}
