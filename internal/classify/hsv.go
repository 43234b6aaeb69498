package classify

import (
	"sort"

	"github.com/cubepilot/cubepilot"
)

// ByHSV reinterprets the facelets from HSV alone. Bright sunlight can
// push the Lab distances into an incoherent status, while the Hue of
// each sticker stays reliable: the nine facelets with the largest
// value-saturation gap are white, and every other facelet takes the
// color of the center with the nearest Hue.
//
// The bool is false when the centers do not resolve into six distinct
// colors, in which case no interpretation is possible.
func ByHSV(samples [54]cubepilot.BGR) (Result, bool) {
	vs, hue := hsvValues(samples)

	seq, ok := ColorOrder(vs, hue)
	if !ok {
		return Result{Method: MethodNone}, false
	}

	whiteCenter := -1
	for i, c := range cubepilot.Centers {
		if seq[i] == cubepilot.White {
			whiteCenter = c
		}
	}

	// The nine largest value-saturation gaps are the white facelets.
	order := make([]int, 54)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return vs[order[a]] < vs[order[b]] })
	white := make(map[int]bool, 9)
	for _, f := range order[45:] {
		white[f] = true
	}

	// Every colored center must have survived the white cut, or a
	// center color appears twice and the analysis is invalid.
	var coloredCenters []int
	var coloredSeq []cubepilot.CubeColor
	for i, c := range cubepilot.Centers {
		if c == whiteCenter {
			continue
		}
		if white[c] {
			return Result{Method: MethodNone}, false
		}
		coloredCenters = append(coloredCenters, c)
		coloredSeq = append(coloredSeq, seq[i])
	}

	var hcRed, hcBlue int
	for i, col := range coloredSeq {
		switch col {
		case cubepilot.Red:
			hcRed = hue[coloredCenters[i]]
		case cubepilot.Blue:
			hcBlue = hue[coloredCenters[i]]
		}
	}
	redBlueAvg := (hcRed + hcBlue) / 2

	// With red near 180 some of its facelets wrap below 10. When fewer
	// than five colored facelets sit above the red-blue midpoint, the
	// wrapped side is collapsed to zero before measuring distances.
	above := 0
	for f := 0; f < 54; f++ {
		if !white[f] && hue[f] > redBlueAvg {
			above++
		}
	}
	wrap := above < 5

	var detected [54]cubepilot.CubeColor
	for f := 0; f < 54; f++ {
		if white[f] {
			detected[f] = cubepilot.White
			continue
		}
		h := hue[f]
		if wrap && h > redBlueAvg {
			h = 0
		}
		best := 0
		bestDist := 1 << 30
		for i, c := range coloredCenters {
			hc := hue[c]
			if wrap && hc > redBlueAvg {
				hc = 0
			}
			d := h - hc
			if d < 0 {
				d = -d
			}
			if alt := 180 - hc + h; alt < d {
				d = alt
			}
			if d < bestDist {
				best, bestDist = i, d
			}
		}
		detected[f] = coloredSeq[best]
	}

	// The detected colors follow the cube's physical orientation; swap
	// them back into the conventional scheme for the solver.
	res := Result{Method: MethodHSV, Sequence: seq}
	for f, col := range detected {
		for i, sc := range seq {
			if sc == col {
				res.Colors[f] = cubepilot.ColorSequence[i]
				break
			}
		}
	}
	return res, true
}
