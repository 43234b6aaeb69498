package colorspace

// HSV holds an 8-bit HSV color on the OpenCV scale: hue 0..180 (degrees
// halved so red wraps at 180), saturation and value 0..255.
type HSV struct {
	H, S, V uint8
}

// BGRToHSV converts an 8-bit BGR color to OpenCV-scaled HSV.
func BGRToHSV(b, g, r uint8) HSV {
	maxC := b
	if g > maxC {
		maxC = g
	}
	if r > maxC {
		maxC = r
	}
	minC := b
	if g < minC {
		minC = g
	}
	if r < minC {
		minC = r
	}

	v := maxC
	diff := int(maxC) - int(minC)

	var s uint8
	if maxC > 0 {
		s = uint8((255*diff + int(maxC)/2) / int(maxC))
	}

	var h int
	if diff > 0 {
		switch maxC {
		case r:
			h = (60*(int(g)-int(b)) + diff/2) / diff
		case g:
			h = 120 + (60*(int(b)-int(r))+diff/2)/diff
		default:
			h = 240 + (60*(int(r)-int(g))+diff/2)/diff
		}
		if h < 0 {
			h += 360
		}
	}

	return HSV{H: uint8(h / 2), S: s, V: v}
}

// ValueMinusSaturation returns V-S, the brightness-minus-saturation score
// that separates white facelets from colored ones.
func (c HSV) ValueMinusSaturation() int {
	return int(c.V) - int(c.S)
}
