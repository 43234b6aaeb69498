package scan

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cubepilot/cubepilot"
	"github.com/cubepilot/cubepilot/internal/classify"
	"github.com/cubepilot/cubepilot/internal/servo"
	"github.com/cubepilot/cubepilot/internal/solver"
	"github.com/cubepilot/cubepilot/internal/vision"
)

var stickerBGR = map[cubepilot.CubeColor]cubepilot.BGR{
	cubepilot.White:  {B: 230, G: 230, R: 230},
	cubepilot.Red:    {B: 30, G: 30, R: 200},
	cubepilot.Green:  {B: 60, G: 160, R: 60},
	cubepilot.Yellow: {B: 40, G: 200, R: 200},
	cubepilot.Orange: {B: 30, G: 100, R: 230},
	cubepilot.Blue:   {B: 180, G: 90, R: 30},
}

// solvedScanFaces returns the six uniform faces of a solved cube in the
// robot's scan order. Uniform faces make the upside-down reversal a
// no-op, so the samples map straight onto the solved status.
func solvedScanFaces() [][9]cubepilot.BGR {
	order := []cubepilot.CubeColor{
		cubepilot.White, cubepilot.Blue, cubepilot.Yellow,
		cubepilot.Green, cubepilot.Red, cubepilot.Orange,
	}
	faces := make([][9]cubepilot.BGR, len(order))
	for i, c := range order {
		for j := range faces[i] {
			faces[i][j] = stickerBGR[c]
		}
	}
	return faces
}

type fakeCamera struct {
	faces [][9]cubepilot.BGR
	next  int
}

func (c *fakeCamera) Warmup(ctx context.Context) error { return ctx.Err() }

func (c *fakeCamera) CaptureFace(ctx context.Context) (vision.FaceSample, error) {
	if err := ctx.Err(); err != nil {
		return vision.FaceSample{}, err
	}
	if c.next >= len(c.faces) {
		return vision.FaceSample{}, fmt.Errorf("no face queued for capture %d", c.next+1)
	}
	s := vision.FaceSample{BGR: c.faces[c.next]}
	c.next++
	return s, nil
}

func (c *fakeCamera) Close() error { return nil }

// stuckCamera never detects a face.
type stuckCamera struct{}

func (stuckCamera) Warmup(ctx context.Context) error { return ctx.Err() }

func (stuckCamera) CaptureFace(ctx context.Context) (vision.FaceSample, error) {
	<-ctx.Done()
	return vision.FaceSample{}, ctx.Err()
}

func (stuckCamera) Close() error { return nil }

func TestRunSolvedCube(t *testing.T) {
	cam := &fakeCamera{faces: solvedScanFaces()}
	mock := &servo.Mock{}
	var events []Event
	orch := New(cam, mock, &solver.Stub{Output: "(0 moves)"},
		WithNotify(func(e Event) { events = append(events, e) }))

	res, err := orch.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !res.AlreadyDone {
		t.Error("AlreadyDone = false, want true")
	}
	if res.Status != solvedStatus {
		t.Errorf("Status = %q, want solved", res.Status)
	}
	if res.Solution != "" || res.Moves != "" || res.MovesCount != 0 {
		t.Errorf("solution %q moves %q count %d, want all empty",
			res.Solution, res.Moves, res.MovesCount)
	}
	if res.Method != classify.MethodDistance {
		t.Errorf("Method = %v, want %v", res.Method, classify.MethodDistance)
	}

	wantChoreo := []string{"F1", "F1", "F1", "S1F1S3", "F2"}
	if len(mock.Executed) != len(wantChoreo) {
		t.Fatalf("servo executed %v, want %v", mock.Executed, wantChoreo)
	}
	for i, mv := range wantChoreo {
		if mock.Executed[i] != mv {
			t.Errorf("servo move %d = %q, want %q", i, mock.Executed[i], mv)
		}
	}

	if len(events) == 0 {
		t.Fatal("no events emitted")
	}
	if events[0].Phase != PhaseWarmup {
		t.Errorf("first event phase = %v, want %v", events[0].Phase, PhaseWarmup)
	}
	if last := events[len(events)-1]; last.Phase != PhaseDone {
		t.Errorf("last event phase = %v, want %v", last.Phase, PhaseDone)
	}
	scans := 0
	for _, e := range events {
		if e.Phase == PhaseScanning {
			scans++
			if e.Face != scans {
				t.Errorf("scan event %d has face %d", scans, e.Face)
			}
		}
	}
	if scans != 6 {
		t.Errorf("scanning events = %d, want 6", scans)
	}
}

func TestRunExecutesSolution(t *testing.T) {
	cam := &fakeCamera{faces: solvedScanFaces()}
	mock := &servo.Mock{}
	orch := New(cam, mock, &solver.Stub{Output: "U1 R2 F3 (3 moves)"})

	res, err := orch.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.AlreadyDone {
		t.Error("AlreadyDone = true, want false")
	}
	if res.Solution != "U1 R2 F3" {
		t.Errorf("Solution = %q, want %q", res.Solution, "U1 R2 F3")
	}
	if res.Moves == "" || res.MovesCount == 0 {
		t.Errorf("moves %q count %d, want non-empty", res.Moves, res.MovesCount)
	}
	if last := mock.Executed[len(mock.Executed)-1]; last != res.Moves {
		t.Errorf("last servo string = %q, want %q", last, res.Moves)
	}
	if mock.Strokes < res.MovesCount {
		t.Errorf("servo strokes = %d, want at least %d", mock.Strokes, res.MovesCount)
	}
}

func TestRunFallsBackToHSV(t *testing.T) {
	cam := &fakeCamera{faces: solvedScanFaces()}
	calls := 0
	sv := solver.Func(func(ctx context.Context, status string) ([]cubepilot.FaceTurn, error) {
		calls++
		if calls == 1 {
			return nil, cubepilot.ErrSolverRejected
		}
		return nil, nil
	})
	orch := New(cam, &servo.Mock{}, sv)

	res, err := orch.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if calls != 2 {
		t.Errorf("solver called %d times, want 2", calls)
	}
	if res.Method != classify.MethodHSV {
		t.Errorf("Method = %v, want %v", res.Method, classify.MethodHSV)
	}
	if !res.AlreadyDone {
		t.Error("AlreadyDone = false, want true")
	}
}

func TestRunDetectionFailed(t *testing.T) {
	cam := &fakeCamera{faces: solvedScanFaces()}
	sv := solver.Func(func(ctx context.Context, status string) ([]cubepilot.FaceTurn, error) {
		return nil, cubepilot.ErrSolverRejected
	})
	orch := New(cam, &servo.Mock{}, sv)

	_, err := orch.Run(context.Background())
	if !errors.Is(err, cubepilot.ErrDetectionFailed) {
		t.Errorf("Run error = %v, want %v", err, cubepilot.ErrDetectionFailed)
	}
}

func TestRunFaceTimeout(t *testing.T) {
	orch := New(stuckCamera{}, &servo.Mock{}, &solver.Stub{Output: "(0 moves)"},
		WithFaceTimeout(10*time.Millisecond))

	_, err := orch.Run(context.Background())
	if !errors.Is(err, cubepilot.ErrScanTimeout) {
		t.Errorf("Run error = %v, want %v", err, cubepilot.ErrScanTimeout)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	orch := New(stuckCamera{}, &servo.Mock{}, &solver.Stub{Output: "(0 moves)"})

	_, err := orch.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want %v", err, context.Canceled)
	}
	if errors.Is(err, cubepilot.ErrScanTimeout) {
		t.Error("cancellation reported as scan timeout")
	}
}

const solvedStatus = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"
