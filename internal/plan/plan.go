// Package plan translates a Singmaster solution into the robot's own
// move string. The robot has two degrees of freedom, a flipper and a
// rotating base, so every face turn becomes a short sequence of Flip,
// Spin and Rotate primitives chosen from a fixed table, adjusted for
// where the target face currently sits. A final pass removes spin pairs
// and flips made redundant by the preceding moves.
package plan

import (
	"strings"

	"github.com/cubepilot/cubepilot"
)

// position names a physical location around the robot. The holder can
// only rotate the face at the bottom, so a face turn first maneuvers the
// target face down.
type position int

const (
	posFront position = iota
	posBack
	posUp
	posDown
	posLeft
	posRight
)

// Orientation tracks which cube face sits at each physical position
// while the robot works. Horizontal tracks the faces at left, front and
// right as seen from the camera; vertical the faces at down, front and
// up. The two share the front entry.
type Orientation struct {
	hLeft, hFront, hRight cubepilot.Face
	vDown, vFront, vUp    cubepilot.Face
}

// StartOrientation is the cube pose after the scan choreography, just
// before solving begins.
func StartOrientation() Orientation {
	return Orientation{
		hLeft: cubepilot.FaceF, hFront: cubepilot.FaceU, hRight: cubepilot.FaceB,
		vDown: cubepilot.FaceR, vFront: cubepilot.FaceU, vUp: cubepilot.FaceL,
	}
}

// Flip advances the vertical ring by one flipper stroke.
func (o Orientation) Flip() Orientation {
	n := o
	n.vDown = o.vFront
	n.vFront = o.vUp
	n.vUp = n.vDown.Opposite()
	n.hFront = n.vFront
	return n
}

// SpinCW advances the horizontal ring one quarter turn clockwise.
func (o Orientation) SpinCW() Orientation {
	n := o
	n.hRight = o.hFront
	n.hFront = o.hLeft
	n.hLeft = n.hRight.Opposite()
	n.vFront = n.hFront
	return n
}

// SpinCCW advances the horizontal ring one quarter turn counterclockwise.
func (o Orientation) SpinCCW() Orientation {
	n := o
	n.hLeft = o.hFront
	n.hFront = o.hRight
	n.hRight = n.hLeft.Opposite()
	n.vFront = n.hFront
	return n
}

// Locate reports the physical position of face f. Only five positions
// are observable from the two rings; a face at none of them is at the
// back.
func (o Orientation) Locate(f cubepilot.Face) position {
	switch f {
	case o.hLeft:
		return posLeft
	case o.hFront:
		return posFront
	case o.hRight:
		return posRight
	case o.vDown:
		return posDown
	case o.vUp:
		return posUp
	}
	return posBack
}

// Apply advances the orientation through a robot move sequence. Flips
// cycle the vertical ring and spins the horizontal one. Rotates turn
// only the bottom layer, so they leave the whole-cube orientation
// unchanged.
func (o Orientation) Apply(tokens []cubepilot.MoveToken) Orientation {
	for _, t := range tokens {
		switch t.Kind {
		case cubepilot.Flip:
			for i := 0; i < t.N; i++ {
				o = o.Flip()
			}
		case cubepilot.Spin:
			if t.N == 1 {
				o = o.SpinCW()
			} else {
				o = o.SpinCCW()
			}
		}
	}
	return o
}

// moveTable maps a face turn at a known position to the robot sequence
// that performs it. The sequences end with the turned face at the bottom
// and the base restored where a restore is free.
var moveTable = map[position]map[cubepilot.Turn]string{
	posUp: {
		cubepilot.TurnCW:     "F2R1S3",
		cubepilot.TurnDouble: "F2R1S3R1S3",
		cubepilot.TurnCCW:    "F2S1R3",
	},
	posDown: {
		cubepilot.TurnCW:     "R1S3",
		cubepilot.TurnDouble: "R1S3R1S3",
		cubepilot.TurnCCW:    "S1R3",
	},
	posFront: {
		cubepilot.TurnCW:     "F1R1S3",
		cubepilot.TurnDouble: "F1R1S3R1S3",
		cubepilot.TurnCCW:    "F1S1R3",
	},
	posBack: {
		cubepilot.TurnCW:     "F3R1S3",
		cubepilot.TurnDouble: "F3R1S3R1S3",
		cubepilot.TurnCCW:    "F3S1R3",
	},
	posLeft: {
		cubepilot.TurnCW:     "S3F3R1",
		cubepilot.TurnDouble: "S3F3R1S3R1",
		cubepilot.TurnCCW:    "S1F1R3",
	},
	posRight: {
		cubepilot.TurnCW:     "S3F1R1",
		cubepilot.TurnDouble: "S3F1R1S3R1",
		cubepilot.TurnCCW:    "S1F3R3",
	},
}

// Translate converts a solver solution into the robot move string and
// its servo move count. An empty solution yields an empty string.
func Translate(solution []cubepilot.FaceTurn) (string, int) {
	var b strings.Builder
	o := StartOrientation()
	for _, ft := range solution {
		seq := moveTable[o.Locate(ft.Face)][ft.Turn]
		b.WriteString(seq)
		tokens, _ := cubepilot.ParseMoveTokens(seq)
		o = o.Apply(tokens)
	}
	moves := Optimize(b.String())
	return moves, cubepilot.CountMoves(moves)
}
