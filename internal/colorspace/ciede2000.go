package colorspace

import "math"

const pow25to7 = 6103515625 // 25^7

// CIEDE2000 returns the perceptual color difference between two Lab
// colors per the full CIEDE2000 formula, including the SL/SC/SH weighting
// functions and the RT rotation term.
func CIEDE2000(c1, c2 Lab) float64 {
	l1, a1, b1 := c1.L, c1.A, c1.B
	l2, a2, b2 := c2.L, c2.A, c2.B

	cc1 := math.Hypot(a1, b1)
	cc2 := math.Hypot(a2, b2)
	cAve := (cc1 + cc2) / 2
	g := 0.5 * (1 - math.Sqrt(math.Pow(cAve, 7)/(math.Pow(cAve, 7)+pow25to7)))

	a1p := (1 + g) * a1
	a2p := (1 + g) * a2

	c1p := math.Hypot(a1p, b1)
	c2p := math.Hypot(a2p, b2)

	h1p := hueAngle(a1p, b1)
	h2p := hueAngle(a2p, b2)

	dL := l2 - l1
	dC := c2p - c1p

	dh := h2p - h1p
	if c1p*c2p == 0 {
		dh = 0
	} else if dh > math.Pi {
		dh -= 2 * math.Pi
	} else if dh < -math.Pi {
		dh += 2 * math.Pi
	}
	dH := 2 * math.Sqrt(c1p*c2p) * math.Sin(dh/2)

	lAve := (l1 + l2) / 2
	cpAve := (c1p + c2p) / 2

	hDiff := math.Abs(h1p - h2p)
	hSum := h1p + h2p
	var hAve float64
	switch {
	case c1p*c2p == 0:
		hAve = hSum
	case hDiff <= math.Pi:
		hAve = hSum / 2
	case hSum < 2*math.Pi:
		hAve = hSum/2 + math.Pi
	default:
		hAve = hSum/2 - math.Pi
	}

	t := 1 -
		0.17*math.Cos(hAve-math.Pi/6) +
		0.24*math.Cos(2*hAve) +
		0.32*math.Cos(3*hAve+math.Pi/30) -
		0.20*math.Cos(4*hAve-63*math.Pi/180)

	hAveDeg := hAve * 180 / math.Pi
	if hAveDeg < 0 {
		hAveDeg += 360
	} else if hAveDeg > 360 {
		hAveDeg -= 360
	}
	dTheta := 30 * math.Exp(-((hAveDeg-275)/25)*((hAveDeg-275)/25))

	rc := 2 * math.Sqrt(math.Pow(cpAve, 7)/(math.Pow(cpAve, 7)+pow25to7))
	sc := 1 + 0.045*cpAve
	sh := 1 + 0.015*cpAve*t

	lm50s := (lAve - 50) * (lAve - 50)
	sl := 1 + 0.015*lm50s/math.Sqrt(20+lm50s)
	rt := -math.Sin(dTheta*math.Pi/90) * rc

	fL := dL / sl
	fC := dC / sc
	fH := dH / sh

	return math.Sqrt(fL*fL + fC*fC + fH*fH + rt*fC*fH)
}

func hueAngle(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a)
	if a < 0 {
		h += 2 * math.Pi
	}
	return h
}
