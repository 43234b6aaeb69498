package cubepilot

import "strings"

// Face identifies a cube face in standard URFDLB notation.
type Face byte

const (
	FaceU Face = 'U' // Up
	FaceR Face = 'R' // Right
	FaceF Face = 'F' // Front
	FaceD Face = 'D' // Down
	FaceL Face = 'L' // Left
	FaceB Face = 'B' // Back
)

// Faces lists the six faces in URFDLB order.
var Faces = [6]Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	switch f {
	case FaceU:
		return FaceD
	case FaceD:
		return FaceU
	case FaceF:
		return FaceB
	case FaceB:
		return FaceF
	case FaceR:
		return FaceL
	case FaceL:
		return FaceR
	}
	return 0
}

func (f Face) String() string {
	return string(rune(f))
}

// Turn is the amount of a face turn in the solver's digit encoding:
// 1 = 90 degrees CW, 2 = 180 degrees, 3 = 90 degrees CCW.
type Turn int

const (
	TurnCW     Turn = 1
	TurnDouble Turn = 2
	TurnCCW    Turn = 3
)

// FaceTurn is a single solver move, e.g. U2 or R3.
// The solver assumes a fixed cube frame; translating a FaceTurn into robot
// primitives is the job of the move planner.
type FaceTurn struct {
	Face Face
	Turn Turn
}

// String renders the move in the solver's digit notation, e.g. "U2".
func (ft FaceTurn) String() string {
	return string(rune(ft.Face)) + string(rune('0'+ft.Turn))
}

func parseFace(c byte) (Face, bool) {
	switch c {
	case 'U', 'u':
		return FaceU, true
	case 'R', 'r':
		return FaceR, true
	case 'F', 'f':
		return FaceF, true
	case 'D', 'd':
		return FaceD, true
	case 'L', 'l':
		return FaceL, true
	case 'B', 'b':
		return FaceB, true
	}
	return 0, false
}

// ParseFaceTurn parses a single move in either the solver digit notation
// (U1, U2, U3) or Singmaster notation (U, U2, U').
func ParseFaceTurn(s string) (FaceTurn, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return FaceTurn{}, ErrInvalidNotation
	}

	face, ok := parseFace(s[0])
	if !ok {
		return FaceTurn{}, ErrInvalidNotation
	}

	turn := TurnCW
	if len(s) > 1 {
		switch s[1:] {
		case "1":
			turn = TurnCW
		case "2":
			turn = TurnDouble
		case "3", "'", "`":
			turn = TurnCCW
		default:
			return FaceTurn{}, ErrInvalidNotation
		}
	}

	return FaceTurn{Face: face, Turn: turn}, nil
}

// ParseSolution parses a solver solution string into face turns.
// Both the spaced form "U2 R1 D3" and the compact form "U2R1D3" are
// accepted; in the compact form every move must carry its digit.
func ParseSolution(s string) ([]FaceTurn, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if strings.ContainsAny(s, " \t") {
		parts := strings.Fields(s)
		turns := make([]FaceTurn, 0, len(parts))
		for _, part := range parts {
			ft, err := ParseFaceTurn(part)
			if err != nil {
				return nil, err
			}
			turns = append(turns, ft)
		}
		return turns, nil
	}

	if len(s)%2 != 0 {
		return nil, ErrInvalidNotation
	}
	turns := make([]FaceTurn, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		ft, err := ParseFaceTurn(s[i : i+2])
		if err != nil {
			return nil, err
		}
		turns = append(turns, ft)
	}
	return turns, nil
}

// FormatSolution renders face turns as a space-separated solver string.
func FormatSolution(turns []FaceTurn) string {
	if len(turns) == 0 {
		return ""
	}
	parts := make([]string, len(turns))
	for i, ft := range turns {
		parts[i] = ft.String()
	}
	return strings.Join(parts, " ")
}
