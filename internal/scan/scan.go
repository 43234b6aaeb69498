// Package scan drives one full solve cycle: warm up the camera, present
// all six faces to the lens, interpret the sampled colors into a cube
// status, ask the solver for a solution, and run the translated move
// string on the servos.
package scan

import (
	"context"
	"time"

	"github.com/cubepilot/cubepilot"
	"github.com/cubepilot/cubepilot/internal/classify"
	"github.com/cubepilot/cubepilot/internal/plan"
	"github.com/cubepilot/cubepilot/internal/vision"
)

// Camera produces facelet samples of the face currently shown to the
// lens. CaptureFace blocks until a coherent face is detected or the
// context ends.
type Camera interface {
	Warmup(ctx context.Context) error
	CaptureFace(ctx context.Context) (vision.FaceSample, error)
	Close() error
}

// Servo executes a robot move string on the hardware.
type Servo interface {
	Execute(ctx context.Context, moves string) error
	Close() error
}

// Solver turns a 54-letter cube status into a face-turn solution.
type Solver interface {
	Solve(ctx context.Context, status string) ([]cubepilot.FaceTurn, error)
}

// Phase identifies the stage a cycle is in, for progress reporting.
type Phase int

const (
	PhaseWarmup Phase = iota
	PhaseScanning
	PhaseClassifying
	PhaseSolving
	PhaseMoving
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseWarmup:
		return "warming up camera"
	case PhaseScanning:
		return "scanning"
	case PhaseClassifying:
		return "reading colors"
	case PhaseSolving:
		return "solving"
	case PhaseMoving:
		return "moving"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

// Event reports cycle progress. Face is the 1-based scan side during
// PhaseScanning. Samples holds the URFDLB-ordered colors read so far,
// padded with gray, so a UI can render partial progress.
type Event struct {
	Phase   Phase
	Face    int
	Samples []cubepilot.BGR
}

// CycleResult summarizes one completed cycle for logging and storage.
type CycleResult struct {
	StartedAt   time.Time
	Status      string
	Solution    string
	Moves       string
	MovesCount  int
	Method      classify.Method
	WarmupTime  time.Duration
	DetectTime  time.Duration
	SolveTime   time.Duration
	RobotTime   time.Duration
	TotalTime   time.Duration
	AlreadyDone bool
}

// Orchestrator owns the devices for the duration of a cycle.
type Orchestrator struct {
	cam    Camera
	servo  Servo
	solver Solver

	notify      func(Event)
	faceTimeout time.Duration
}

// Option adjusts an Orchestrator.
type Option func(*Orchestrator)

// WithNotify registers a progress callback. The callback runs on the
// cycle's goroutine and must not block.
func WithNotify(fn func(Event)) Option {
	return func(o *Orchestrator) { o.notify = fn }
}

// WithFaceTimeout bounds how long a single face may take to detect.
func WithFaceTimeout(d time.Duration) Option {
	return func(o *Orchestrator) { o.faceTimeout = d }
}

// New builds an Orchestrator around the three devices.
func New(cam Camera, servo Servo, solver Solver, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		cam:         cam,
		servo:       servo,
		solver:      solver,
		faceTimeout: 20 * time.Second,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Orchestrator) emit(e Event) {
	if o.notify != nil {
		o.notify(e)
	}
}

// betweenFaces is the servo choreography that presents the next face to
// the camera after each scan. The last entry returns the cube to the
// solving start pose.
var betweenFaces = [6]string{"F1", "F1", "F1", "S1F1S3", "F2", ""}

// Run performs one full cycle. The cube is expected to already sit in
// the holder; the camera and servos must be open.
func (o *Orchestrator) Run(ctx context.Context) (*CycleResult, error) {
	res := &CycleResult{StartedAt: time.Now()}
	cycleStart := time.Now()

	o.emit(Event{Phase: PhaseWarmup})
	t := time.Now()
	if err := o.cam.Warmup(ctx); err != nil {
		return nil, err
	}
	res.WarmupTime = time.Since(t)

	t = time.Now()
	samples, err := o.scanFaces(ctx)
	if err != nil {
		return nil, err
	}
	res.DetectTime = time.Since(t)

	o.emit(Event{Phase: PhaseClassifying, Samples: samples[:]})
	t = time.Now()
	result, solution, err := o.interpret(ctx, samples)
	if err != nil {
		return nil, err
	}
	res.SolveTime = time.Since(t)
	res.Method = result.Method
	res.Status, _ = result.Status()
	res.Solution = cubepilot.FormatSolution(solution)

	if len(solution) == 0 {
		res.AlreadyDone = true
		res.TotalTime = time.Since(cycleStart)
		o.emit(Event{Phase: PhaseDone, Samples: samples[:]})
		return res, nil
	}

	res.Moves, res.MovesCount = plan.Translate(solution)

	o.emit(Event{Phase: PhaseMoving, Samples: samples[:]})
	t = time.Now()
	if err := o.servo.Execute(ctx, res.Moves); err != nil {
		return nil, err
	}
	res.RobotTime = time.Since(t)

	res.TotalTime = time.Since(cycleStart)
	o.emit(Event{Phase: PhaseDone, Samples: samples[:]})
	return res, nil
}

// scanFaces captures the six faces in the robot's scan order, reversing
// the facelets on the sides the camera sees upside down, and returns
// the samples in URFDLB order.
func (o *Orchestrator) scanFaces(ctx context.Context) ([54]cubepilot.BGR, error) {
	var urfdlb [54]cubepilot.BGR
	scanned := make([]cubepilot.BGR, 0, 54)

	for side := 1; side <= 6; side++ {
		o.emit(Event{
			Phase:   PhaseScanning,
			Face:    side,
			Samples: cubepilot.ScanToURFDLB(scanned),
		})

		sample, err := o.captureFace(ctx)
		if err != nil {
			return urfdlb, err
		}

		face := sample.BGR
		if side == 1 || side == 3 || side == 4 || side == 5 {
			reverseFace(&face)
		}
		scanned = append(scanned, face[:]...)

		if mv := betweenFaces[side-1]; mv != "" {
			if err := o.servo.Execute(ctx, mv); err != nil {
				return urfdlb, err
			}
		}
	}

	copy(urfdlb[:], cubepilot.ScanToURFDLB(scanned))
	return urfdlb, nil
}

func (o *Orchestrator) captureFace(ctx context.Context) (vision.FaceSample, error) {
	faceCtx, cancel := context.WithTimeout(ctx, o.faceTimeout)
	defer cancel()

	sample, err := o.cam.CaptureFace(faceCtx)
	if err != nil {
		if faceCtx.Err() != nil && ctx.Err() == nil {
			return sample, cubepilot.ErrScanTimeout
		}
		return sample, err
	}
	return sample, nil
}

// reverseFace mirrors the nine facelets of one face in place.
func reverseFace(face *[9]cubepilot.BGR) {
	for i, j := 0, 8; i < j; i, j = i+1, j-1 {
		face[i], face[j] = face[j], face[i]
	}
}

// interpret escalates through the two color interpretations until the
// solver accepts a status. The distance method goes first; an
// incoherent status or a solver rejection falls back to HSV; failure of
// both is a detection error.
func (o *Orchestrator) interpret(ctx context.Context, samples [54]cubepilot.BGR) (classify.Result, []cubepilot.FaceTurn, error) {
	o.emit(Event{Phase: PhaseSolving, Samples: samples[:]})

	primary, _ := classify.ByDistance(samples)
	if sol, err := o.trySolve(ctx, primary); err == nil {
		return primary, sol, nil
	} else if ctx.Err() != nil {
		return primary, nil, err
	}

	fallback, ok := classify.ByHSV(samples)
	if !ok {
		return fallback, nil, cubepilot.ErrDetectionFailed
	}
	sol, err := o.trySolve(ctx, fallback)
	if err != nil {
		if ctx.Err() != nil {
			return fallback, nil, err
		}
		return fallback, nil, cubepilot.ErrDetectionFailed
	}
	return fallback, sol, nil
}

func (o *Orchestrator) trySolve(ctx context.Context, r classify.Result) ([]cubepilot.FaceTurn, error) {
	if err := cubepilot.CheckStatus(r.Colors[:]); err != nil {
		return nil, err
	}
	status, err := r.Status()
	if err != nil {
		return nil, err
	}
	return o.solver.Solve(ctx, status)
}
