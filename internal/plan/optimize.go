package plan

import "strings"

// Optimize shortens a robot move string without changing its effect on
// the cube. Two reductions apply: adjacent spins that cancel are
// dropped, and a trailing F3..F2 flip pair whose follow-up moves match
// is collapsed by turning the F3 into an F1.
func Optimize(moves string) string {
	return optimizeFlips(optimizeSpins(moves))
}

// optimizeSpins removes every S1S3 and S3S1 pair found in a single
// forward scan. The scan steps past both halves of a removed pair, so
// overlapping cancellations are left for the servos rather than resolved
// recursively.
func optimizeSpins(moves string) string {
	var drop []int
	for idx := 0; idx+4 <= len(moves); {
		pair := moves[idx : idx+4]
		if pair == "S1S3" || pair == "S3S1" {
			drop = append(drop, idx)
			idx += 4
		}
		idx += 2
	}
	if len(drop) == 0 {
		return moves
	}

	var b strings.Builder
	b.Grow(len(moves) - 4*len(drop))
	next := 0
	for i := 0; i < len(moves); i++ {
		if next < len(drop) && i == drop[next] {
			i += 3
			next++
			continue
		}
		b.WriteByte(moves[i])
	}
	return b.String()
}

// optimizeFlips rewrites the second-last flip from F3 to F1 when the
// last flip is F2 and both flips are followed by the same spin and
// rotation sequence. Flipping once instead of three times then reaches
// the same pose two strokes cheaper, because the moves repeated after
// each flip act on the same faces either way.
func optimizeFlips(moves string) string {
	f2Idx, f3Idx := -1, -1
	flips := 0
	for i := len(moves) - 2; i >= 0; i -= 2 {
		if moves[i] != 'F' {
			continue
		}
		flips++
		if flips == 1 {
			if moves[i:i+2] != "F2" {
				return moves
			}
			f2Idx = i
		} else {
			if moves[i:i+2] != "F3" {
				return moves
			}
			f3Idx = i
			break
		}
	}
	if flips < 2 {
		return moves
	}

	chrs := f2Idx - f3Idx - 2
	chrs2 := len(moves) - f2Idx - 2
	if chrs > chrs2 {
		return moves
	}
	if chrs != chrs2 && strings.Contains(moves[f2Idx+chrs+2:], "R") {
		return moves
	}
	if moves[f3Idx+2:f3Idx+chrs+2] != moves[f2Idx+2:f2Idx+chrs+2] {
		return moves
	}
	return moves[:f3Idx+1] + "1" + moves[f3Idx+2:]
}
