package cubepilot

// BGR is a blue-green-red pixel value, the byte order OpenCV frames use.
type BGR struct {
	B, G, R uint8
}

// NeutralGray marks facelets whose color has not been sampled yet.
var NeutralGray = BGR{B: 230, G: 230, R: 230}

// Centers holds the URFDLB indices of the six face-center facelets.
var Centers = [6]int{4, 13, 22, 31, 40, 49}

// OppositeFacelet returns the index of the facelet at the geometrically
// opposite position on the cube (URFDLB layout, offset of 27).
func OppositeFacelet(i int) int {
	if i < 27 {
		return i + 27
	}
	return i - 27
}

// scanBlocks maps each URFDLB face to its block in the robot scan order.
// The robot reads faces as U,B,D,F,R,L; URFDLB order is U,R,F,D,L,B.
var scanBlocks = [6]int{0, 4, 3, 2, 5, 1}

// ScanToURFDLB reorders per-facelet samples from the robot's physical
// scan order into canonical URFDLB order. A partial scan (a multiple of 9
// samples, fewer than 54) is padded with NeutralGray so partial progress
// can still be rendered.
func ScanToURFDLB(scan []BGR) []BGR {
	padded := make([]BGR, 54)
	for i := range padded {
		if i < len(scan) {
			padded[i] = scan[i]
		} else {
			padded[i] = NeutralGray
		}
	}

	out := make([]BGR, 0, 54)
	for _, block := range scanBlocks {
		out = append(out, padded[9*block:9*block+9]...)
	}
	return out
}

// StatusString renders a 54-facelet color status (URFDLB order) as the
// solver-compatible letter string.
func StatusString(status []CubeColor) (string, error) {
	if len(status) != 54 {
		return "", ErrStatusLength
	}
	b := make([]byte, 54)
	for i, c := range status {
		b[i] = byte(c.FaceLetter())
	}
	return string(b), nil
}

// CheckStatus verifies the color distribution invariant of a detected
// status: exactly 9 facelets per color and six mutually distinct center
// colors. A violation means the color detection cannot be trusted.
func CheckStatus(status []CubeColor) error {
	if len(status) != 54 {
		return ErrStatusLength
	}

	var counts [6]int
	for _, c := range status {
		if c < 0 || c > 5 {
			return ErrStatusIncoherent
		}
		counts[c]++
	}
	for _, n := range counts {
		if n != 9 {
			return ErrStatusIncoherent
		}
	}

	var seen [6]bool
	for _, i := range Centers {
		c := status[i]
		if seen[c] {
			return ErrStatusIncoherent
		}
		seen[c] = true
	}
	return nil
}
