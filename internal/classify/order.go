package classify

import "github.com/cubepilot/cubepilot"

// ColorOrder infers which color sits on each of the six faces from the
// center facelets alone, so the cube may be dropped on the robot in any
// orientation. White is the center with the largest value-saturation
// gap and yellow its opposite. Red and orange are told apart through
// their Hue and the Hue of the opposite center, which handles red
// wrapping around the Hue scale. Of the last pair, blue has the higher
// Hue.
//
// The bool is false when the centers do not resolve to six distinct
// colors.
func ColorOrder(vs, hue [54]int) ([6]cubepilot.CubeColor, bool) {
	var seq [6]cubepilot.CubeColor
	ok := true

	remaining := make([]int, len(cubepilot.Centers))
	copy(remaining, cubepilot.Centers[:])

	whiteCenter := remaining[0]
	for _, c := range remaining {
		if vs[c] > vs[whiteCenter] {
			whiteCenter = c
		}
	}
	yellowCenter := cubepilot.OppositeFacelet(whiteCenter)

	if !removeInt(&remaining, whiteCenter) || !removeInt(&remaining, yellowCenter) {
		ok = false
	}

	redCenter, orangeCenter := -1, -1
	for _, c := range remaining {
		hc := hue[c]
		hOpp := hue[cubepilot.OppositeFacelet(c)]
		switch {
		case (hc > 150 && hOpp < 30) || (hc < 30 && hOpp < 30 && hc < hOpp) || (hc > 160 && hOpp > 170 && hc < hOpp):
			redCenter = c
		case (hc < 30 && hOpp > 150) || (hc < 30 && hc > hOpp) || (hc > 170 && hc > hOpp):
			orangeCenter = c
		}
	}
	if !removeInt(&remaining, redCenter) || !removeInt(&remaining, orangeCenter) {
		ok = false
	}
	if !ok {
		return seq, false
	}

	blueCenter, greenCenter := remaining[0], remaining[1]
	if hue[greenCenter] > hue[blueCenter] {
		blueCenter, greenCenter = greenCenter, blueCenter
	}

	for i, c := range cubepilot.Centers {
		switch c {
		case whiteCenter:
			seq[i] = cubepilot.White
		case yellowCenter:
			seq[i] = cubepilot.Yellow
		case redCenter:
			seq[i] = cubepilot.Red
		case orangeCenter:
			seq[i] = cubepilot.Orange
		case blueCenter:
			seq[i] = cubepilot.Blue
		case greenCenter:
			seq[i] = cubepilot.Green
		}
	}
	return seq, true
}

// removeInt deletes the first occurrence of v, reporting whether it was
// present.
func removeInt(s *[]int, v int) bool {
	for i, x := range *s {
		if x == v {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return true
		}
	}
	return false
}
