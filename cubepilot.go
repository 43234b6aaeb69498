// Package cubepilot provides the perception and planning core for a small
// two-servo Rubik's cube solving robot.
//
// The robot presents each cube face to a fixed camera, one at a time. The
// library turns the resulting frames into a canonical 54-facelet cube
// status string, asks an external two-phase solver for a face-turn
// solution, and translates that solution into the primitive moves the
// robot can actually perform.
//
// # Robot primitives
//
// The holder can only turn the layer currently at the bottom, so the
// solver's fixed-frame solution is adapted on the fly:
//
//   - Spin: rotate the whole cube about its vertical axis
//   - Flip: tip the whole cube 90 degrees via the lifter
//   - Rotate: turn the bottom layer while the top cover holds the rest
//
// Serialized move strings use one letter plus one digit per primitive,
// e.g. "F2R1S3" is two flips, a CW bottom-layer rotation and a CCW spin.
//
// # Packages
//
// The root package holds the shared vocabulary: colors, faces, solver
// face-turns, robot move tokens and the cube status string assembly.
// Image processing lives in internal/vision, color classification in
// internal/classify, move planning in internal/plan and the acquisition
// loop in internal/scan.
package cubepilot
