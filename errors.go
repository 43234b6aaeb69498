package cubepilot

import "errors"

// Sentinel errors for the cubepilot package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubepilot: invalid move notation")
	ErrInvalidToken    = errors.New("cubepilot: invalid robot move token")

	// Status errors
	ErrStatusLength     = errors.New("cubepilot: cube status must have 54 facelets")
	ErrStatusIncoherent = errors.New("cubepilot: cube status is not a valid color distribution")

	// Detection and solving errors
	ErrDetectionFailed = errors.New("cubepilot: cube color detection failed")
	ErrSolverRejected  = errors.New("cubepilot: solver rejected the cube status")
	ErrScanTimeout     = errors.New("cubepilot: facelet detection timed out")
)
