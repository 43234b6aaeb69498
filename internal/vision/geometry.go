package vision

import (
	"image"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

func dist(a, b image.Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// median returns the median of values without mutating the input.
func median(values []float64) float64 {
	s := make([]float64, len(values))
	copy(s, values)
	sort.Float64s(s)
	return stat.Quantile(0.5, stat.LinInterp, s, nil)
}

// quadArea returns the shoelace area of a quadrilateral.
func quadArea(q [4]image.Point) float64 {
	var sum float64
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		sum += float64(q[i].X*q[j].Y - q[j].X*q[i].Y)
	}
	return math.Abs(sum) / 2
}

// squareCheck measures how square-like a quadrilateral is.
// edgeDelta is (max edge - min edge) over the mean edge length; axesRatio
// is min diagonal over max diagonal. A perfect square has edgeDelta 0 and
// axesRatio 1; a rhombus or sheared shadow fails one of the two.
func squareCheck(q [4]image.Point) (edgeDelta, axesRatio float64) {
	var edges [4]float64
	var sum float64
	minE, maxE := math.Inf(1), 0.0
	for i := 0; i < 4; i++ {
		e := dist(q[i], q[(i+1)%4])
		edges[i] = e
		sum += e
		if e < minE {
			minE = e
		}
		if e > maxE {
			maxE = e
		}
	}
	edgeDelta = (maxE - minE) * 4 / sum

	d1 := dist(q[0], q[2])
	d2 := dist(q[1], q[3])
	if d1 > d2 {
		d1, d2 = d2, d1
	}
	axesRatio = d1 / d2
	return edgeDelta, axesRatio
}

// convexHull returns the convex hull of the points in CCW order
// (Andrew's monotone chain).
func convexHull(pts []image.Point) []image.Point {
	if len(pts) < 3 {
		return pts
	}
	s := make([]image.Point, len(pts))
	copy(s, pts)
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].X != s[j].X {
			return s[i].X < s[j].X
		}
		return s[i].Y < s[j].Y
	})

	cross := func(o, a, b image.Point) int {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}

	var hull []image.Point
	for _, p := range s {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(s) - 2; i >= 0; i-- {
		p := s[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

// order4Points orders a quadrilateral's vertices CW from top-left and
// derives the inner (shrunk) and outer (expanded) copies used for
// overlays. The bottom-right vertex is the right-most point farthest from
// the top-left one, which stays correct under moderate cube tilt.
func order4Points(q [4]image.Point, w, h int) (ordered, inner, outer [4]image.Point) {
	pts := q[:]
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
	left := []image.Point{pts[0], pts[1]}
	right := []image.Point{pts[2], pts[3]}

	sort.SliceStable(left, func(i, j int) bool { return left[i].Y < left[j].Y })
	tl, bl := left[0], left[1]

	if dist(tl, right[0]) < dist(tl, right[1]) {
		right[0], right[1] = right[1], right[0]
	}
	br, tr := right[0], right[1]

	ordered = [4]image.Point{tl, tr, br, bl}

	clamp := func(v, lo, hi int) int {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
	shift := func(gap int) [4]image.Point {
		return [4]image.Point{
			{clamp(tl.X+gap, 0, w), clamp(tl.Y+gap, 0, h)},
			{clamp(tr.X-gap, 0, w), clamp(tr.Y+gap, 0, h)},
			{clamp(br.X-gap, 0, w), clamp(br.Y-gap, 0, h)},
			{clamp(bl.X+gap, 0, w), clamp(bl.Y-gap, 0, h)},
		}
	}
	inner = shift(3)
	outer = shift(-3)
	return ordered, inner, outer
}

// order9Points orders exactly nine candidates row-major, top-left first.
// The x-sorted thirds give left/middle/right columns; each column is
// sorted by y, with the right column resolved by distance from the
// top-left point to stay stable when the face is tilted.
func order9Points(cands []Candidate) []Candidate {
	s := make([]Candidate, len(cands))
	copy(s, cands)
	sort.SliceStable(s, func(i, j int) bool { return s[i].Center.X < s[j].Center.X })

	left := s[:3]
	mid := s[3:6]
	right := s[6:]

	sort.SliceStable(left, func(i, j int) bool { return left[i].Center.Y < left[j].Center.Y })
	sort.SliceStable(mid, func(i, j int) bool { return mid[i].Center.Y < mid[j].Center.Y })

	tl := left[0].Center
	sort.SliceStable(right, func(i, j int) bool {
		return dist(tl, right[i].Center) > dist(tl, right[j].Center)
	})
	br, mr, tr := right[0], right[1], right[2]

	return []Candidate{
		left[0], mid[0], tr,
		left[1], mid[1], mr,
		left[2], mid[2], br,
	}
}

// areaDeviation returns the indices of candidates whose area deviates
// from the median by more than limit, as a fraction of the median.
func areaDeviation(cands []Candidate, limit float64) []int {
	areas := make([]float64, len(cands))
	for i, c := range cands {
		areas[i] = c.Area
	}
	med := median(areas)

	var exclude []int
	for i, a := range areas {
		if math.Abs((a-med)/med) > limit {
			exclude = append(exclude, i)
		}
	}
	return exclude
}

// distanceDeviation checks the nine ordered candidates against the
// regular 3x3 grid spacing: the six horizontal and six vertical
// inter-center distances must each stay within delta of their group's
// median. Returned indices identify the deviating segments.
func distanceDeviation(ordered []Candidate, delta float64) []int {
	horiz := []int{1, 2, 4, 5, 7, 8}
	vert := []int{3, 4, 5, 6, 7, 8}

	var dh, dv []float64
	for _, i := range horiz {
		dh = append(dh, dist(ordered[i].Center, ordered[i-1].Center))
	}
	for _, i := range vert {
		dv = append(dv, dist(ordered[i].Center, ordered[i-3].Center))
	}

	var exclude []int
	medH := median(dh)
	for i, d := range dh {
		if (d-medH)/medH > delta {
			exclude = append(exclude, i)
		}
	}
	medV := median(dv)
	for i, d := range dv {
		if (d-medV)/medV > delta && !contains(exclude, i) {
			exclude = append(exclude, i)
		}
	}
	return exclude
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
