package cubepilot

import "strings"

// MoveKind identifies one of the robot's three physical primitives.
type MoveKind byte

const (
	Flip   MoveKind = 'F' // tip the cube 90 degrees via the lifter
	Spin   MoveKind = 'S' // rotate the whole cube about the vertical axis
	Rotate MoveKind = 'R' // turn the bottom layer under the top cover
)

// MoveToken is a single robot primitive.
//
// For Flip, N is the flip count (1 to 3). For Spin and Rotate, N encodes
// the direction: 1 is CW and 3 is CCW, looking at the bottom face.
type MoveToken struct {
	Kind MoveKind
	N    int
}

// CCW reports whether a Spin or Rotate token turns counter-clockwise.
func (t MoveToken) CCW() bool {
	return t.Kind != Flip && t.N == 3
}

// Count returns the number of physical servo movements the token costs:
// each flip counts individually, a spin or rotation counts one.
func (t MoveToken) Count() int {
	if t.Kind == Flip {
		return t.N
	}
	return 1
}

// Valid reports whether the token is well formed under the move-string
// grammar: F1..F3, S1, S3, R1, R3.
func (t MoveToken) Valid() bool {
	switch t.Kind {
	case Flip:
		return t.N >= 1 && t.N <= 3
	case Spin, Rotate:
		return t.N == 1 || t.N == 3
	}
	return false
}

// String renders the token in wire form, e.g. "F2" or "S3".
func (t MoveToken) String() string {
	return string(rune(t.Kind)) + string(rune('0'+t.N))
}

// ParseMoveTokens parses a robot move string ("F2R1S3...") into tokens.
func ParseMoveTokens(s string) ([]MoveToken, error) {
	s = strings.TrimSpace(s)
	if len(s)%2 != 0 {
		return nil, ErrInvalidToken
	}
	tokens := make([]MoveToken, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		t := MoveToken{Kind: MoveKind(s[i]), N: int(s[i+1] - '0')}
		if !t.Valid() {
			return nil, ErrInvalidToken
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

// FormatMoveTokens renders tokens back into the wire move string.
func FormatMoveTokens(tokens []MoveToken) string {
	var b strings.Builder
	b.Grow(2 * len(tokens))
	for _, t := range tokens {
		b.WriteString(t.String())
	}
	return b.String()
}

// CountMoves sums the physical servo movements of a robot move string.
// Malformed trailing characters are ignored, matching the permissive
// counting the servo driver applies.
func CountMoves(moves string) int {
	total := 0
	for i := 0; i+1 < len(moves); i += 2 {
		t := MoveToken{Kind: MoveKind(moves[i]), N: int(moves[i+1] - '0')}
		if t.Valid() {
			total += t.Count()
		}
	}
	return total
}
