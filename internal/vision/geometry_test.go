package vision

import (
	"image"
	"math"
	"math/rand"
	"testing"
)

func TestMedian(t *testing.T) {
	cases := []struct {
		in   []float64
		want float64
	}{
		{[]float64{3}, 3},
		{[]float64{1, 3}, 2},
		{[]float64{5, 1, 3}, 3},
		{[]float64{4, 1, 3, 2}, 2.5},
	}
	for _, tc := range cases {
		if got := median(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("median(%v) = %f, want %f", tc.in, got, tc.want)
		}
	}
}

func TestSquareCheckPerfectSquare(t *testing.T) {
	q := [4]image.Point{{10, 10}, {30, 10}, {30, 30}, {10, 30}}
	edgeDelta, axesRatio := squareCheck(q)
	if edgeDelta > 1e-9 {
		t.Errorf("square edgeDelta = %f, want 0", edgeDelta)
	}
	if math.Abs(axesRatio-1) > 1e-9 {
		t.Errorf("square axesRatio = %f, want 1", axesRatio)
	}
}

func TestSquareCheckRejectsElongated(t *testing.T) {
	// A 4:1 rectangle fails the edge-delta limit of 1.
	q := [4]image.Point{{0, 0}, {80, 0}, {80, 20}, {0, 20}}
	edgeDelta, _ := squareCheck(q)
	if edgeDelta < 1 {
		t.Errorf("elongated edgeDelta = %f, want >= 1", edgeDelta)
	}
}

func TestSquareCheckRejectsFlatRhombus(t *testing.T) {
	// Equal edges but nearly collinear diagonals.
	q := [4]image.Point{{0, 0}, {50, 3}, {100, 0}, {50, -3}}
	_, axesRatio := squareCheck(q)
	if axesRatio > 0.3 {
		t.Errorf("flat rhombus axesRatio = %f, want <= 0.3", axesRatio)
	}
}

func TestConvexHullSquareWithInteriorPoints(t *testing.T) {
	pts := []image.Point{
		{0, 0}, {40, 0}, {40, 40}, {0, 40},
		{20, 20}, {10, 30}, {25, 5},
	}
	hull := convexHull(pts)
	if len(hull) != 4 {
		t.Fatalf("hull has %d vertices, want 4", len(hull))
	}
	corners := map[image.Point]bool{
		{0, 0}: true, {40, 0}: true, {40, 40}: true, {0, 40}: true,
	}
	for _, p := range hull {
		if !corners[p] {
			t.Errorf("unexpected hull vertex %v", p)
		}
	}
}

func TestQuadArea(t *testing.T) {
	q := [4]image.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if got := quadArea(q); math.Abs(got-100) > 1e-9 {
		t.Errorf("quadArea = %f, want 100", got)
	}
}

func TestOrder4Points(t *testing.T) {
	// Scrambled vertices of a 20x20 square at (10,10).
	q := [4]image.Point{{30, 30}, {10, 10}, {30, 10}, {10, 30}}
	ordered, inner, outer := order4Points(q, 100, 100)

	want := [4]image.Point{{10, 10}, {30, 10}, {30, 30}, {10, 30}}
	if ordered != want {
		t.Errorf("ordered = %v, want %v", ordered, want)
	}
	if inner[0] != (image.Point{13, 13}) {
		t.Errorf("inner top-left = %v, want (13,13)", inner[0])
	}
	if outer[0] != (image.Point{7, 7}) {
		t.Errorf("outer top-left = %v, want (7,7)", outer[0])
	}
}

func TestOrder4PointsClampsAtFrameEdge(t *testing.T) {
	q := [4]image.Point{{0, 0}, {20, 0}, {20, 20}, {0, 20}}
	_, _, outer := order4Points(q, 100, 100)
	if outer[0] != (image.Point{0, 0}) {
		t.Errorf("outer top-left = %v, want clamped to (0,0)", outer[0])
	}
}

func gridCandidates() []Candidate {
	// Regular 3x3 grid with 40px spacing.
	var cands []Candidate
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			cands = append(cands, Candidate{
				Area:   900,
				Center: image.Pt(50+40*col, 50+40*row),
			})
		}
	}
	return cands
}

func TestOrder9PointsRestoresReadingOrder(t *testing.T) {
	cands := gridCandidates()
	rng := rand.New(rand.NewSource(3))
	shuffled := make([]Candidate, len(cands))
	copy(shuffled, cands)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	ordered := order9Points(shuffled)
	for i := range cands {
		if ordered[i].Center != cands[i].Center {
			t.Fatalf("slot %d = %v, want %v", i, ordered[i].Center, cands[i].Center)
		}
	}
}

func TestOrder9PointsTiltedFace(t *testing.T) {
	// The same grid rotated a few degrees must keep its reading order.
	base := gridCandidates()
	angle := 8 * math.Pi / 180
	tilted := make([]Candidate, len(base))
	for i, c := range base {
		x := float64(c.Center.X - 90)
		y := float64(c.Center.Y - 90)
		tilted[i] = Candidate{
			Area: c.Area,
			Center: image.Pt(
				90+int(x*math.Cos(angle)-y*math.Sin(angle)),
				90+int(x*math.Sin(angle)+y*math.Cos(angle)),
			),
		}
	}
	ordered := order9Points(tilted)
	for i := range tilted {
		if ordered[i].Center != tilted[i].Center {
			t.Fatalf("slot %d = %v, want %v", i, ordered[i].Center, tilted[i].Center)
		}
	}
}

func TestAreaDeviation(t *testing.T) {
	cands := gridCandidates()
	cands = append(cands, Candidate{Area: 9000, Center: image.Pt(200, 200)})
	exclude := areaDeviation(cands, 0.7)
	if len(exclude) != 1 || exclude[0] != 9 {
		t.Errorf("exclude = %v, want [9]", exclude)
	}
}

func TestDistanceDeviationRegularGrid(t *testing.T) {
	if exclude := distanceDeviation(gridCandidates(), 0.3); len(exclude) != 0 {
		t.Errorf("regular grid deviations = %v, want none", exclude)
	}
}

func TestDistanceDeviationStray(t *testing.T) {
	cands := gridCandidates()
	cands[8].Center = image.Pt(250, 130)
	if exclude := distanceDeviation(cands, 0.3); len(exclude) == 0 {
		t.Error("stray facelet should deviate")
	}
}
