package vision

import (
	"image"

	"gocv.io/x/gocv"
)

// Detector finds the nine facelets of one cube face in a camera frame.
type Detector struct {
	cfg Config
}

// NewDetector builds a Detector with the default configuration modified
// by opts.
func NewDetector(opts ...Option) *Detector {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Detector{cfg: cfg}
}

// DetectFace runs the full pipeline on frame. It returns exactly nine
// candidates ordered top-left to bottom-right, or ok=false when the
// frame does not yield a coherent face.
func (d *Detector) DetectFace(frame gocv.Mat) ([]Candidate, bool) {
	w := frame.Cols()
	h := frame.Rows()
	if w == 0 || h == 0 {
		return nil, false
	}

	edges := edgeMap(frame, d.cfg.Mode)
	defer edges.Close()

	cands := d.findCandidates(edges, w, h)

	if len(cands) >= 5 {
		if exclude := areaDeviation(cands, d.cfg.AreaDeviation); len(exclude) > 0 {
			kept := cands[:0]
			for i, c := range cands {
				if !contains(exclude, i) {
					kept = append(kept, c)
				}
			}
			cands = kept
		}
	}

	if len(cands) >= 5 && len(cands) < 9 && d.cfg.Mode != Framed {
		cands = estimateFacelets(cands, w, h)
	}
	if len(cands) != 9 {
		return nil, false
	}

	ordered := order9Points(cands)
	if len(distanceDeviation(ordered, d.cfg.DistanceDeviation)) > 0 {
		return nil, false
	}
	return ordered, true
}

// findCandidates extracts the quadrilateral contours that could be
// facelets from the edge map.
func (d *Detector) findCandidates(edges gocv.Mat, w, h int) []Candidate {
	minArea := d.cfg.MinAreaFrac * float64(w*h) / 9
	maxArea := minArea * d.cfg.MaxAreaRatio

	contours := gocv.FindContours(edges, gocv.RetrievalTree, gocv.ChainApproxSimple)
	defer contours.Close()

	var out []Candidate
	for i := 0; i < contours.Size(); i++ {
		pv := contours.At(i)
		area := gocv.ContourArea(pv)
		if area < minArea || area > maxArea {
			continue
		}

		hull := convexHull(pv.ToPoints())
		if len(hull) < 4 {
			continue
		}
		hullPV := gocv.NewPointVectorFromPoints(hull)
		eps := 0.1 * gocv.ArcLength(hullPV, true)
		approx := gocv.ApproxPolyDP(hullPV, eps, true)
		quad := approx.ToPoints()
		approx.Close()
		hullPV.Close()
		if len(quad) != 4 {
			continue
		}

		var q [4]image.Point
		copy(q[:], quad)
		edgeDelta, axesRatio := squareCheck(q)
		if edgeDelta >= d.cfg.SquareRatio || axesRatio <= d.cfg.RhombusRatio {
			continue
		}

		ordered, inner, outer := order4Points(q, w, h)
		center := image.Pt(
			(ordered[0].X+ordered[1].X+ordered[2].X+ordered[3].X)/4,
			(ordered[0].Y+ordered[1].Y+ordered[2].Y+ordered[3].Y)/4,
		)
		if duplicate(out, center, ordered) {
			continue
		}
		out = append(out, Candidate{
			Area:    area,
			Center:  center,
			Contour: ordered,
			Inner:   inner,
			Outer:   outer,
		})
	}
	return out
}

// duplicate reports whether an accepted candidate already covers pt.
// RetrievalTree yields a nested contour per edge side of every sticker,
// and all but the first must be dropped.
func duplicate(cands []Candidate, pt image.Point, q [4]image.Point) bool {
	for _, c := range cands {
		if quadContains(c.Contour, pt) || quadContains(q, c.Center) {
			return true
		}
	}
	return false
}

// quadContains reports whether pt lies inside the CW-ordered quad.
func quadContains(q [4]image.Point, pt image.Point) bool {
	for i := 0; i < 4; i++ {
		a := q[i]
		b := q[(i+1)%4]
		cross := (b.X-a.X)*(pt.Y-a.Y) - (b.Y-a.Y)*(pt.X-a.X)
		if cross < 0 {
			return false
		}
	}
	return true
}
