package vision

import (
	"image"
	"testing"

	"gocv.io/x/gocv"
)

func uniformFrame(t *testing.T, rows, cols int, b, g, r float64) gocv.Mat {
	t.Helper()
	m := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(b, g, r, 0),
		rows, cols, gocv.MatTypeCV8UC3)
	t.Cleanup(func() { m.Close() })
	return m
}

func TestSampleFaceUniformColor(t *testing.T) {
	frame := uniformFrame(t, 180, 180, 60, 160, 60)
	cands := gridCandidates()

	sample, ok := SampleFace(frame, cands)
	if !ok {
		t.Fatal("SampleFace failed on a uniform frame")
	}
	for i, bgr := range sample.BGR {
		if bgr.B != 60 || bgr.G != 160 || bgr.R != 60 {
			t.Errorf("facelet %d = %+v, want B=60 G=160 R=60", i, bgr)
		}
	}
	// Pure green sits at 60 on the halved OpenCV hue scale.
	for i, h := range sample.Hue {
		if h != 60 {
			t.Errorf("facelet %d hue = %d, want 60", i, h)
		}
	}
}

func TestSampleFaceWindowClamping(t *testing.T) {
	frame := uniformFrame(t, 180, 180, 230, 230, 230)
	cands := gridCandidates()
	// Push the first candidate into the frame corner so its window
	// must clamp.
	cands[0].Center = image.Point{X: 0, Y: 0}

	sample, ok := SampleFace(frame, cands)
	if !ok {
		t.Fatal("SampleFace failed with a corner candidate")
	}
	if bgr := sample.BGR[0]; bgr.B != 230 || bgr.G != 230 || bgr.R != 230 {
		t.Errorf("corner facelet = %+v, want uniform white", bgr)
	}
}

func TestSampleFaceRejectsPartialFace(t *testing.T) {
	frame := uniformFrame(t, 180, 180, 10, 10, 10)
	if _, ok := SampleFace(frame, gridCandidates()[:8]); ok {
		t.Error("SampleFace accepted 8 candidates")
	}
}
