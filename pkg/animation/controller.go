package animation

import (
	"fmt"
	"time"
)

// AnimationStatus represents the current state of an animation.
//
//	         AnimateTo()             reaches target
//	Idle ─────────────────► Running ────────────────► Completed
//	                           │
//	                           │ Stop() / AnimateTo()
//	                           ▼
//	                        Stopped
type AnimationStatus int

const (
	// AnimationIdle means the controller has never run.
	AnimationIdle AnimationStatus = iota
	// AnimationRunning means the value is moving toward its target.
	AnimationRunning
	// AnimationCompleted means the last run reached its target.
	AnimationCompleted
	// AnimationStopped means the last run was interrupted before its target.
	AnimationStopped
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationIdle:
		return "idle"
	case AnimationRunning:
		return "running"
	case AnimationCompleted:
		return "completed"
	case AnimationStopped:
		return "stopped"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController drives Value from its current position to a target
// over Duration, shaped by Curve. Frames come from the FrameSource passed
// to NewAnimationController.
//
// Always call Dispose when done to stop the ticker.
type AnimationController struct {
	// Value is the current animated value.
	Value float64

	// Duration is the length of each run.
	Duration time.Duration

	// Curve transforms linear progress (optional).
	Curve Curve

	frames          *FrameSource
	status          AnimationStatus
	ticker          *Ticker
	target          float64
	startValue      float64
	listeners       map[int]func()
	statusListeners map[int]func(AnimationStatus)
	nextListenerID  int
}

// NewAnimationController creates an animation controller with the given duration.
func NewAnimationController(frames *FrameSource, duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:        duration,
		Curve:           LinearCurve,
		frames:          frames,
		status:          AnimationIdle,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(AnimationStatus)),
	}
}

// AnimateTo animates from the current value to target. A run already in
// progress is stopped first and reports AnimationStopped.
func (c *AnimationController) AnimateTo(target float64) {
	c.Stop()

	c.target = target
	c.startValue = c.Value
	c.setStatus(AnimationRunning)

	if c.Duration <= 0 || c.frames == nil {
		c.Value = target
		c.notifyListeners()
		c.finish()
		return
	}

	c.ticker = c.frames.NewTicker(c.tick)
	c.ticker.Start()
}

// Set jumps to value without animating. Any run in progress is stopped.
func (c *AnimationController) Set(value float64) {
	c.Stop()
	c.Value = value
	c.notifyListeners()
}

// Target returns the value the current or last run is heading to.
func (c *AnimationController) Target() float64 {
	return c.target
}

func (c *AnimationController) tick(elapsed time.Duration) {
	progress := float64(elapsed) / float64(c.Duration)
	if progress >= 1.0 {
		progress = 1.0
	}

	if progress >= 1.0 {
		c.Value = c.target
	} else {
		eased := progress
		if c.Curve != nil {
			eased = c.Curve(progress)
		}
		c.Value = Lerp(c.startValue, c.target, eased)
	}
	c.notifyListeners()

	if progress >= 1.0 {
		c.finish()
	}
}

func (c *AnimationController) finish() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	c.Value = c.target
	c.setStatus(AnimationCompleted)
}

// Stop halts the animation at the current value.
func (c *AnimationController) Stop() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	c.ticker = nil
	c.setStatus(AnimationStopped)
}

// Status returns the current animation status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating returns true if the animation is currently running.
func (c *AnimationController) IsAnimating() bool {
	return c.status == AnimationRunning
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose stops the controller and drops its listeners.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = map[int]func(){}
	c.statusListeners = map[int]func(AnimationStatus){}
}
