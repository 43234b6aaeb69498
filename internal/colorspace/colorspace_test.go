package colorspace

import (
	"math"
	"testing"
)

func TestRGBToLabWhite(t *testing.T) {
	lab := RGBToLab(255, 255, 255)
	if math.Abs(lab.L-100) > 0.1 {
		t.Errorf("white L = %f, want 100", lab.L)
	}
	if math.Abs(lab.A) > 0.2 || math.Abs(lab.B) > 0.2 {
		t.Errorf("white a,b = %f,%f, want near 0", lab.A, lab.B)
	}
}

func TestRGBToLabBlack(t *testing.T) {
	lab := RGBToLab(0, 0, 0)
	if math.Abs(lab.L) > 0.1 {
		t.Errorf("black L = %f, want 0", lab.L)
	}
}

func TestRGBToLabPrimariesOrdering(t *testing.T) {
	// Green is the brightest primary, blue the darkest.
	r := RGBToLab(255, 0, 0)
	g := RGBToLab(0, 255, 0)
	b := RGBToLab(0, 0, 255)
	if !(g.L > r.L && r.L > b.L) {
		t.Errorf("primary lightness ordering wrong: R %f G %f B %f", r.L, g.L, b.L)
	}
	if r.A <= 0 {
		t.Errorf("red a* = %f, want positive", r.A)
	}
	if g.A >= 0 {
		t.Errorf("green a* = %f, want negative", g.A)
	}
	if b.B >= 0 {
		t.Errorf("blue b* = %f, want negative", b.B)
	}
}

func TestCIEDE2000Reflexive(t *testing.T) {
	colors := []Lab{
		RGBToLab(255, 255, 255),
		RGBToLab(200, 30, 30),
		RGBToLab(30, 30, 200),
		{L: 50, A: 2.6772, B: -79.7751},
	}
	for _, c := range colors {
		if d := CIEDE2000(c, c); d != 0 {
			t.Errorf("CIEDE2000(c, c) = %f, want 0", d)
		}
	}
}

func TestCIEDE2000Symmetric(t *testing.T) {
	a := RGBToLab(200, 30, 30)
	b := RGBToLab(230, 100, 30)
	d1 := CIEDE2000(a, b)
	d2 := CIEDE2000(b, a)
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("not symmetric: %f vs %f", d1, d2)
	}
	if d1 <= 0 {
		t.Errorf("distinct colors should have positive distance, got %f", d1)
	}
}

func TestCIEDE2000SharmaReference(t *testing.T) {
	// Pairs from the Sharma et al. CIEDE2000 test data set.
	cases := []struct {
		a, b Lab
		want float64
	}{
		{Lab{50.0000, 2.6772, -79.7751}, Lab{50.0000, 0.0000, -82.7485}, 2.0425},
		{Lab{50.0000, 3.1571, -77.2803}, Lab{50.0000, 0.0000, -82.7485}, 2.8615},
		{Lab{50.0000, 2.8361, -74.0200}, Lab{50.0000, 0.0000, -82.7485}, 3.4412},
		{Lab{50.0000, 2.5000, 0.0000}, Lab{50.0000, 0.0000, -2.5000}, 4.3065},
		{Lab{50.0000, 2.5000, 0.0000}, Lab{73.0000, 25.0000, -18.0000}, 27.1492},
	}
	for i, tc := range cases {
		if d := CIEDE2000(tc.a, tc.b); math.Abs(d-tc.want) > 0.0001 {
			t.Errorf("pair %d: dE00 = %f, want %f", i, d, tc.want)
		}
	}
}

func TestCIEDE2000SeparatesStickerColors(t *testing.T) {
	// The six sticker colors as the camera roughly sees them must be
	// mutually farther apart than typical sampling noise.
	stickers := []Lab{
		RGBToLab(230, 230, 230), // white
		RGBToLab(200, 30, 30),   // red
		RGBToLab(60, 160, 60),   // green
		RGBToLab(200, 200, 40),  // yellow
		RGBToLab(230, 100, 30),  // orange
		RGBToLab(30, 90, 180),   // blue
	}
	for i := range stickers {
		for j := i + 1; j < len(stickers); j++ {
			if d := CIEDE2000(stickers[i], stickers[j]); d < 10 {
				t.Errorf("stickers %d and %d too close: %f", i, j, d)
			}
		}
	}
}

func TestBGRToHSVKnownColors(t *testing.T) {
	cases := []struct {
		name    string
		b, g, r uint8
		want    HSV
	}{
		{"black", 0, 0, 0, HSV{H: 0, S: 0, V: 0}},
		{"white", 255, 255, 255, HSV{H: 0, S: 0, V: 255}},
		{"red", 0, 0, 255, HSV{H: 0, S: 255, V: 255}},
		{"green", 0, 255, 0, HSV{H: 60, S: 255, V: 255}},
		{"blue", 255, 0, 0, HSV{H: 120, S: 255, V: 255}},
		{"yellow", 0, 255, 255, HSV{H: 30, S: 255, V: 255}},
	}
	for _, tc := range cases {
		if got := BGRToHSV(tc.b, tc.g, tc.r); got != tc.want {
			t.Errorf("%s: BGRToHSV = %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestValueMinusSaturation(t *testing.T) {
	white := BGRToHSV(230, 230, 230)
	red := BGRToHSV(30, 30, 200)
	if white.ValueMinusSaturation() <= red.ValueMinusSaturation() {
		t.Errorf("white V-S %d should exceed red V-S %d",
			white.ValueMinusSaturation(), red.ValueMinusSaturation())
	}
}
