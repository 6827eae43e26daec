package animation

import (
	"math"
	"testing"
	"time"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestFrames() (*FrameSource, *stepClock) {
	clk := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return NewFrameSource(clk), clk
}

func TestAnimationController_ReachesTarget(t *testing.T) {
	frames, clk := newTestFrames()
	c := NewAnimationController(frames, 500*time.Millisecond)
	c.Value = 0.2

	var statuses []AnimationStatus
	c.AddStatusListener(func(s AnimationStatus) { statuses = append(statuses, s) })

	c.AnimateTo(1)
	if !c.IsAnimating() {
		t.Fatal("expected controller to be animating")
	}

	clk.advance(250 * time.Millisecond)
	frames.Step()
	if math.Abs(c.Value-0.6) > 1e-9 {
		t.Errorf("halfway value = %v, want 0.6", c.Value)
	}

	clk.advance(300 * time.Millisecond)
	frames.Step()
	if c.Value != 1 {
		t.Errorf("final value = %v, want 1", c.Value)
	}
	if c.Status() != AnimationCompleted {
		t.Errorf("status = %v, want completed", c.Status())
	}
	if frames.Active() {
		t.Error("expected no active tickers after completion")
	}

	want := []AnimationStatus{AnimationRunning, AnimationCompleted}
	if len(statuses) != len(want) {
		t.Fatalf("statuses = %v, want %v", statuses, want)
	}
	for i := range want {
		if statuses[i] != want[i] {
			t.Errorf("statuses[%d] = %v, want %v", i, statuses[i], want[i])
		}
	}
}

func TestAnimationController_InterruptReportsStopped(t *testing.T) {
	frames, clk := newTestFrames()
	c := NewAnimationController(frames, time.Second)

	var statuses []AnimationStatus
	c.AddStatusListener(func(s AnimationStatus) { statuses = append(statuses, s) })

	c.AnimateTo(10)
	clk.advance(500 * time.Millisecond)
	frames.Step()
	c.AnimateTo(0)

	want := []AnimationStatus{AnimationRunning, AnimationStopped, AnimationRunning}
	if len(statuses) != len(want) {
		t.Fatalf("statuses = %v, want %v", statuses, want)
	}
	for i := range want {
		if statuses[i] != want[i] {
			t.Errorf("statuses[%d] = %v, want %v", i, statuses[i], want[i])
		}
	}
}

func TestAnimationController_ZeroDurationCompletesImmediately(t *testing.T) {
	frames, _ := newTestFrames()
	c := NewAnimationController(frames, 0)

	notified := 0
	c.AddListener(func() { notified++ })
	c.AnimateTo(3)

	if c.Value != 3 {
		t.Errorf("value = %v, want 3", c.Value)
	}
	if c.Status() != AnimationCompleted {
		t.Errorf("status = %v, want completed", c.Status())
	}
	if notified != 1 {
		t.Errorf("listener calls = %d, want 1", notified)
	}
}

func TestAnimationController_SetStopsRun(t *testing.T) {
	frames, _ := newTestFrames()
	c := NewAnimationController(frames, time.Second)
	c.AnimateTo(1)
	c.Set(0.4)

	if c.IsAnimating() {
		t.Error("expected Set to stop the run")
	}
	if c.Value != 0.4 {
		t.Errorf("value = %v, want 0.4", c.Value)
	}
}

func TestAnimationStatusString(t *testing.T) {
	tests := []struct {
		status AnimationStatus
		want   string
	}{
		{AnimationIdle, "idle"},
		{AnimationRunning, "running"},
		{AnimationCompleted, "completed"},
		{AnimationStopped, "stopped"},
		{AnimationStatus(9), "AnimationStatus(9)"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	for _, curve := range []Curve{EaseOut, EaseInOut} {
		if got := curve(0); got != 0 {
			t.Errorf("curve(0) = %v, want 0", got)
		}
		if got := curve(1); got != 1 {
			t.Errorf("curve(1) = %v, want 1", got)
		}
		prev := 0.0
		for i := 1; i < 10; i++ {
			v := curve(float64(i) / 10)
			if v < prev {
				t.Errorf("curve not monotonic at %d: %v < %v", i, v, prev)
			}
			prev = v
		}
	}
}
