package vision

import (
	"math"

	"gocv.io/x/gocv"

	"github.com/cubepilot/cubepilot"
	"github.com/cubepilot/cubepilot/internal/colorspace"
)

// SampleFace reads the dominant color of each of the nine ordered
// candidates from the BGR frame. The sampling window is a square whose
// side is derived from the total face area, so it shrinks with the cube's
// apparent size and stays well inside each sticker.
func SampleFace(frame gocv.Mat, cands []Candidate) (FaceSample, bool) {
	if len(cands) != 9 {
		return FaceSample{}, false
	}

	var totalArea float64
	for _, c := range cands {
		totalArea += c.Area
	}
	edge := int(math.Sqrt(totalArea / 270))
	if edge < 1 {
		edge = 1
	}

	var out FaceSample
	for i, c := range cands {
		bgr, ok := averageColor(frame, c.Center.X, c.Center.Y, edge)
		if !ok {
			return FaceSample{}, false
		}
		out.BGR[i] = bgr
		out.Hue[i] = colorspace.BGRToHSV(bgr.B, bgr.G, bgr.R).H
	}
	return out, true
}

// averageColor returns the root-mean-square per-channel average of the
// square window of side 2*half+1 centered at (cx, cy). RMS weighting
// keeps bright sticker pixels from being washed out by dark seam pixels
// caught at the window border.
func averageColor(frame gocv.Mat, cx, cy, half int) (cubepilot.BGR, bool) {
	x0, x1 := cx-half, cx+half
	y0, y1 := cy-half, cy+half
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= frame.Cols() {
		x1 = frame.Cols() - 1
	}
	if y1 >= frame.Rows() {
		y1 = frame.Rows() - 1
	}
	if x0 > x1 || y0 > y1 {
		return cubepilot.BGR{}, false
	}

	var sumB, sumG, sumR float64
	var n float64
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			v := frame.GetVecbAt(y, x)
			sumB += float64(v[0]) * float64(v[0])
			sumG += float64(v[1]) * float64(v[1])
			sumR += float64(v[2]) * float64(v[2])
			n++
		}
	}
	return cubepilot.BGR{
		B: uint8(math.Sqrt(sumB / n)),
		G: uint8(math.Sqrt(sumG / n)),
		R: uint8(math.Sqrt(sumR / n)),
	}, true
}
