// Package classify interprets the 54 sampled facelet colors into a cube
// status. The primary method measures CIEDE2000 distance from the six
// center facelets in Lab space, with the references adapting as facelets
// are assigned. When that yields an incoherent status, a fallback based
// on HSV takes over: white by the value-saturation gap, every other
// color by Hue distance from its center.
package classify

import (
	"math"
	"sort"

	"github.com/cubepilot/cubepilot"
	"github.com/cubepilot/cubepilot/internal/colorspace"
)

// Method identifies which interpretation produced a cube status.
type Method int

const (
	MethodDistance Method = iota
	MethodHSV
	MethodNone
)

func (m Method) String() string {
	switch m {
	case MethodDistance:
		return "BGR"
	case MethodHSV:
		return "HSV"
	}
	return "Error"
}

// Result is one interpretation of the sampled facelets. Colors follows
// the conventional scheme where every face is named after the color of a
// standard orientation, so it maps directly onto URFDLB letters.
// Sequence records the colors actually found at the six centers, in
// URFDLB face order, which depends on how the cube was dropped on the
// robot.
type Result struct {
	Method   Method
	Colors   [54]cubepilot.CubeColor
	Sequence [6]cubepilot.CubeColor
}

// Status returns the 54-letter URFDLB cube string, validating coherence.
func (r Result) Status() (string, error) {
	return cubepilot.StatusString(r.Colors[:])
}

// ByDistance assigns each facelet to the center it is closest to in Lab
// color space. Facelets are processed in order of increasing distance
// from the initial references, and each assignment pulls the matched
// reference toward the assigned color. Certain facelets therefore anchor
// the references before ambiguous ones are judged, which resolves most
// red versus orange confusion from camera vignetting.
//
// The returned bool reports whether the HSV side analysis could also
// establish the cube orientation; when false the Sequence field is not
// meaningful.
func ByDistance(samples [54]cubepilot.BGR) (Result, bool) {
	var refs [6]cubepilot.BGR
	var labRefs [6]colorspace.Lab
	for i, c := range cubepilot.Centers {
		refs[i] = samples[c]
		labRefs[i] = labOf(samples[c])
	}

	// Rank facelets by their smallest distance from the initial
	// references, most certain first.
	order := make([]int, 54)
	minDist := make([]float64, 54)
	for i := range order {
		order[i] = i
		lab := labOf(samples[i])
		best := colorspace.CIEDE2000(lab, labRefs[0])
		for r := 1; r < 6; r++ {
			if d := colorspace.CIEDE2000(lab, labRefs[r]); d < best {
				best = d
			}
		}
		minDist[i] = best
	}
	sort.SliceStable(order, func(a, b int) bool { return minDist[order[a]] < minDist[order[b]] })

	res := Result{Method: MethodDistance}
	for _, f := range order {
		lab := labOf(samples[f])
		best := 0
		bestDist := colorspace.CIEDE2000(lab, labRefs[0])
		for r := 1; r < 6; r++ {
			if d := colorspace.CIEDE2000(lab, labRefs[r]); d < bestDist {
				best, bestDist = r, d
			}
		}
		res.Colors[f] = cubepilot.ColorSequence[best]

		refs[best] = rmsAverage(samples[f], refs[best])
		labRefs[best] = labOf(refs[best])
	}

	vs, hue := hsvValues(samples)
	seq, ok := ColorOrder(vs, hue)
	res.Sequence = seq
	return res, ok
}

// labOf converts a BGR sample to Lab.
func labOf(c cubepilot.BGR) colorspace.Lab {
	return colorspace.RGBToLab(c.R, c.G, c.B)
}

// rmsAverage blends a sample into a reference, per channel, weighting
// bright values more than a plain mean would.
func rmsAverage(sample, ref cubepilot.BGR) cubepilot.BGR {
	return cubepilot.BGR{
		B: rmsChan(sample.B, ref.B),
		G: rmsChan(sample.G, ref.G),
		R: rmsChan(sample.R, ref.R),
	}
}

func rmsChan(a, b uint8) uint8 {
	fa, fb := float64(a), float64(b)
	return uint8(math.Sqrt((fa*fa + fb*fb) / 2))
}

// hsvValues derives the value-saturation gap and Hue of every facelet.
func hsvValues(samples [54]cubepilot.BGR) (vs [54]int, hue [54]int) {
	for i, c := range samples {
		h := colorspace.BGRToHSV(c.B, c.G, c.R)
		vs[i] = h.ValueMinusSaturation()
		hue[i] = int(h.H)
	}
	return vs, hue
}
