// Package camera wraps the robot's camera behind the capture interface
// the scan orchestrator uses, pairing a video device with the facelet
// detector and sampler.
package camera

import (
	"context"
	"fmt"
	"time"

	"gocv.io/x/gocv"

	"github.com/cubepilot/cubepilot/internal/vision"
)

// Config holds the camera settings.
type Config struct {
	// DeviceID is the V4L capture device index.
	DeviceID int
	// Width and Height request a capture resolution; zero keeps the
	// device default.
	Width, Height int
	// WarmupFrames is how many frames are read and discarded so the
	// sensor's auto exposure and white balance settle.
	WarmupFrames int
	// Detector options forwarded to the facelet detector.
	Detector []vision.Option
}

// DefaultConfig matches the PiCamera setup on the robot.
func DefaultConfig() Config {
	return Config{
		DeviceID:     0,
		Width:        640,
		Height:       480,
		WarmupFrames: 20,
	}
}

// Camera reads frames from a video device and extracts facelet samples.
type Camera struct {
	cap      *gocv.VideoCapture
	detector *vision.Detector
	cfg      Config
}

// Open opens the capture device described by cfg.
func Open(cfg Config) (*Camera, error) {
	cap, err := gocv.OpenVideoCapture(cfg.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("camera: open device %d: %w", cfg.DeviceID, err)
	}
	if cfg.Width > 0 {
		cap.Set(gocv.VideoCaptureFrameWidth, float64(cfg.Width))
	}
	if cfg.Height > 0 {
		cap.Set(gocv.VideoCaptureFrameHeight, float64(cfg.Height))
	}
	return &Camera{
		cap:      cap,
		detector: vision.NewDetector(cfg.Detector...),
		cfg:      cfg,
	}, nil
}

// Warmup discards frames until the sensor settles.
func (c *Camera) Warmup(ctx context.Context) error {
	frame := gocv.NewMat()
	defer frame.Close()
	for i := 0; i < c.cfg.WarmupFrames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !c.cap.Read(&frame) {
			return fmt.Errorf("camera: device %d returned no frame", c.cfg.DeviceID)
		}
	}
	return nil
}

// CaptureFace reads frames until one yields a coherent face, then
// samples its colors. It returns the context error when the deadline
// passes first.
func (c *Camera) CaptureFace(ctx context.Context) (vision.FaceSample, error) {
	frame := gocv.NewMat()
	defer frame.Close()

	for {
		if err := ctx.Err(); err != nil {
			return vision.FaceSample{}, err
		}
		if !c.cap.Read(&frame) || frame.Empty() {
			// Give the device a moment rather than spinning.
			time.Sleep(20 * time.Millisecond)
			continue
		}
		cands, ok := c.detector.DetectFace(frame)
		if !ok {
			continue
		}
		sample, ok := vision.SampleFace(frame, cands)
		if !ok {
			continue
		}
		return sample, nil
	}
}

// Close releases the capture device.
func (c *Camera) Close() error {
	return c.cap.Close()
}
