// Package vision detects the nine facelets of a cube face in a camera
// frame and samples their colors.
//
// The pipeline mirrors a classic OpenCV approach: edge detection on the
// grayscale frame, contour extraction, quadrilateral approximation, a set
// of geometric filters (area, squareness, area deviation, inter-center
// distance), an estimation pass that synthesizes facelets missing from a
// partially detected 3x3 grid, and finally row-major ordering of the nine
// facelet centers.
package vision

import (
	"image"

	"github.com/cubepilot/cubepilot"
)

// FramelessMode selects the edge-detection tuning for cubes with or
// without the black plastic borders around facelets.
type FramelessMode int

const (
	// Framed is for ordinary cubes with black borders; facelet
	// estimation is disabled since all nine contours are expected.
	Framed FramelessMode = iota
	// Frameless is for stickerless cubes without borders.
	Frameless
	// AutoFrame combines both edge pipelines; slightly slower.
	AutoFrame
)

// Candidate is one potential facelet detected on a cube face.
type Candidate struct {
	Area   float64
	Center image.Point
	// Contour holds the four vertices ordered CW from top-left.
	Contour [4]image.Point
	// Inner and Outer are the contour shrunk and expanded by a few
	// pixels, retained for drawing and debugging overlays.
	Inner [4]image.Point
	Outer [4]image.Point
	// Estimated marks candidates synthesized by grid estimation
	// rather than detected as contours.
	Estimated bool
}

// Config tunes the geometric filters. The defaults are deliberately
// permissive; the area-deviation and distance filters do the fine
// rejection work.
type Config struct {
	Mode FramelessMode

	// MinAreaFrac is the minimum facelet contour area as a fraction
	// of frame_area/9; MaxAreaRatio scales that minimum to the upper
	// bound.
	MinAreaFrac  float64
	MaxAreaRatio float64

	// SquareRatio is the maximum edge-length delta for a contour to
	// count as square-like; RhombusRatio the minimum diagonal ratio.
	SquareRatio  float64
	RhombusRatio float64

	// AreaDeviation is the maximum fractional deviation of a facelet
	// area from the face median.
	AreaDeviation float64
	// DistanceDeviation is the maximum fractional deviation of an
	// inter-center distance from its group median.
	DistanceDeviation float64
}

// DefaultConfig returns the tuning used on the reference robot.
func DefaultConfig() Config {
	return Config{
		Mode:              AutoFrame,
		MinAreaFrac:       0.08,
		MaxAreaRatio:      6,
		SquareRatio:       1,
		RhombusRatio:      0.3,
		AreaDeviation:     0.7,
		DistanceDeviation: 0.3,
	}
}

// Option configures a Detector.
type Option func(*Config)

// WithMode selects the frameless-cube mode.
func WithMode(m FramelessMode) Option {
	return func(c *Config) { c.Mode = m }
}

// WithAreaDeviation overrides the facelet area-deviation threshold.
func WithAreaDeviation(d float64) Option {
	return func(c *Config) { c.AreaDeviation = d }
}

// WithDistanceDeviation overrides the inter-center distance threshold.
func WithDistanceDeviation(d float64) Option {
	return func(c *Config) { c.DistanceDeviation = d }
}

// FaceSample holds the sampled colors of one scanned face, in camera
// row-major facelet order.
type FaceSample struct {
	BGR [9]cubepilot.BGR
	Hue [9]uint8
}
