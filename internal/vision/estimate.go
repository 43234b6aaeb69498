package vision

import "image"

// gridSlot maps a 1-based (column,row) grid position to the facelet slot.
func gridSlot(col, row int) int {
	if col < 1 || col > 3 || row < 1 || row > 3 {
		return -1
	}
	return (row-1)*3 + (col - 1)
}

// estimateFacelets synthesizes the facelets missing from a partially
// detected face. With 5 to 8 detected candidates the face extent is
// bucketed into 3 columns and 3 rows; each empty grid slot gets a square
// candidate at the bucket-average position with the median area.
//
// If any of the six buckets is empty the face extent is not known on both
// axes and estimation is geometrically unsafe: the input is returned
// unchanged.
func estimateFacelets(cands []Candidate, w, h int) []Candidate {
	n := len(cands)
	if n < 5 || n > 8 {
		return cands
	}

	xs := make([]int, n)
	ys := make([]int, n)
	areas := make([]float64, n)
	for i, c := range cands {
		xs[i] = c.Center.X
		ys[i] = c.Center.Y
		areas[i] = c.Area
	}
	medArea := median(areas)

	xLow, xHigh := minMax(xs)
	yLow, yHigh := minMax(ys)

	span := xHigh - xLow
	if yHigh-yLow > span {
		span = yHigh - yLow
	}
	d := span / 4

	// Bucket every center into columns and rows by comparing against
	// the low+d and high-d thresholds.
	var colSum, rowSum [3]int
	var colN, rowN [3]int
	bucket := func(v, low, high int) int {
		switch {
		case v < low+d:
			return 0
		case v < high-d:
			return 1
		default:
			return 2
		}
	}
	for i := 0; i < n; i++ {
		cb := bucket(xs[i], xLow, xHigh)
		rb := bucket(ys[i], yLow, yHigh)
		colSum[cb] += xs[i]
		colN[cb]++
		rowSum[rb] += ys[i]
		rowN[rb]++
	}
	for i := 0; i < 3; i++ {
		if colN[i] == 0 || rowN[i] == 0 {
			return cands
		}
	}

	var colAvg, rowAvg [3]int
	for i := 0; i < 3; i++ {
		colAvg[i] = colSum[i] / colN[i]
		rowAvg[i] = rowSum[i] / rowN[i]
	}

	// Mark which grid slots are already covered.
	d = (xHigh - xLow + yHigh - yLow) / 8
	var covered [9]bool
	for i := 0; i < n; i++ {
		col := gridIndex(xs[i], xLow, xHigh, d)
		row := gridIndex(ys[i], yLow, yHigh, d)
		if slot := gridSlot(col, row); slot >= 0 {
			covered[slot] = true
		}
	}

	semi := int(0.85 * float64(d) / 2)
	out := cands
	for slot := 0; slot < 9; slot++ {
		if covered[slot] {
			continue
		}
		cx := colAvg[slot%3]
		cy := rowAvg[slot/3]
		contour := [4]image.Point{
			{cx - semi, cy - semi},
			{cx + semi, cy - semi},
			{cx + semi, cy + semi},
			{cx - semi, cy + semi},
		}
		out = append(out, Candidate{
			Area:      medArea,
			Center:    image.Point{X: cx, Y: cy},
			Contour:   contour,
			Inner:     contour,
			Outer:     expandClamped(contour, 5, w, h),
			Estimated: true,
		})
	}
	return out
}

// gridIndex assigns a 1-based grid column/row, or 0 when the coordinate
// falls on no band.
func gridIndex(v, low, high, d int) int {
	switch {
	case v < low+d:
		return 1
	case v > low+d && v < high-d:
		return 2
	case v > high-d:
		return 3
	}
	return 0
}

func minMax(vals []int) (lo, hi int) {
	lo, hi = vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func expandClamped(q [4]image.Point, gap, w, h int) [4]image.Point {
	clamp := func(v, lo, hi int) int {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
	return [4]image.Point{
		{clamp(q[0].X-gap, 0, w), clamp(q[0].Y-gap, 0, h)},
		{clamp(q[1].X+gap, 0, w), clamp(q[1].Y-gap, 0, h)},
		{clamp(q[2].X+gap, 0, w), clamp(q[2].Y+gap, 0, h)},
		{clamp(q[3].X-gap, 0, w), clamp(q[3].Y+gap, 0, h)},
	}
}
