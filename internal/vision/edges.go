package vision

import (
	"image"

	"gocv.io/x/gocv"
)

// edgeMap converts frame to grayscale and produces the dilated edge map
// the contour search runs on. The three modes trade edge sensitivity
// against noise tolerance: framed cubes have high-contrast black borders,
// frameless cubes only the faint seams between stickers.
func edgeMap(frame gocv.Mat, mode FramelessMode) gocv.Mat {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)

	switch mode {
	case Framed:
		return framedEdges(gray)
	case Frameless:
		return framelessEdges(gray)
	default:
		return autoEdges(gray)
	}
}

func framedEdges(gray gocv.Mat) gocv.Mat {
	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(gray, &blurred, image.Pt(5, 5), 0, 0, gocv.BorderDefault)

	edges := gocv.NewMat()
	gocv.Canny(blurred, &edges, 10, 30)
	morph(&edges, 5, 4, 3, 2)
	return edges
}

func framelessEdges(gray gocv.Mat) gocv.Mat {
	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.BilateralFilter(gray, &blurred, 3, 80, 80)

	edges := gocv.NewMat()
	gocv.Canny(blurred, &edges, 4, 25)
	morph(&edges, 7, 4, 5, 1)
	return edges
}

// autoEdges merges the framed and frameless edge responses so a cube of
// either kind is caught, at the cost of heavier dilation noise.
func autoEdges(gray gocv.Mat) gocv.Mat {
	gaussian := gocv.NewMat()
	defer gaussian.Close()
	gocv.GaussianBlur(gray, &gaussian, image.Pt(5, 5), 0, 0, gocv.BorderDefault)
	cannyA := gocv.NewMat()
	defer cannyA.Close()
	gocv.Canny(gaussian, &cannyA, 10, 30)

	bilateral := gocv.NewMat()
	defer bilateral.Close()
	gocv.BilateralFilter(gray, &bilateral, 3, 80, 80)
	cannyB := gocv.NewMat()
	defer cannyB.Close()
	gocv.Canny(bilateral, &cannyB, 4, 25)

	edges := gocv.NewMat()
	gocv.BitwiseOr(cannyA, cannyB, &edges)
	morph(&edges, 7, 3, 3, 2)
	return edges
}

// morph dilates then erodes in place with square kernels.
func morph(m *gocv.Mat, dilateK, dilateN, erodeK, erodeN int) {
	dk := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(dilateK, dilateK))
	defer dk.Close()
	for i := 0; i < dilateN; i++ {
		gocv.Dilate(*m, m, dk)
	}
	ek := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(erodeK, erodeK))
	defer ek.Close()
	for i := 0; i < erodeN; i++ {
		gocv.Erode(*m, m, ek)
	}
}
