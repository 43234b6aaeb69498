// Package colorspace implements the color conversions and the perceptual
// distance metric used by the facelet classifier: sRGB to CIE L*a*b*,
// CIEDE2000, and the OpenCV-scaled BGR to HSV conversion.
package colorspace

import "math"

// Lab is a color in CIE L*a*b* space (D65 illuminant, 2 degree observer).
type Lab struct {
	L, A, B float64
}

// RGBToLab converts 8-bit sRGB components to CIE L*a*b*.
// Gamma decode to linear RGB, a D65 XYZ transform, then the standard
// piecewise cube-root step.
func RGBToLab(r, g, b uint8) Lab {
	rl := linearize(float64(r)/255) * 100
	gl := linearize(float64(g)/255) * 100
	bl := linearize(float64(b)/255) * 100

	x := rl*0.4124 + gl*0.3576 + bl*0.1805
	y := rl*0.2126 + gl*0.7152 + bl*0.0722
	z := rl*0.0193 + gl*0.1192 + bl*0.9505

	// D65 reference white
	fx := labF(x / 95.047)
	fy := labF(y / 100.0)
	fz := labF(z / 108.883)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func linearize(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

func labF(v float64) float64 {
	if v > 0.008856 {
		return math.Cbrt(v)
	}
	return 7.787*v + 16.0/116.0
}
