// Package animation provides the timing primitives behind scroll motion and
// tab fades.
//
// A [FrameSource] is owned by one widget instance (through its event loop)
// and advances every active [Ticker] once per frame. [AnimationController]
// builds on tickers to move a value between two bounds over a duration with
// an easing curve.
//
//	frames := animation.NewFrameSource(animation.SystemClock{})
//	c := animation.NewAnimationController(frames, 500*time.Millisecond)
//	c.AddListener(func() { view.SetAlpha(c.Value) })
//	c.AnimateTo(1)
//	// every frame:
//	frames.Step()
package animation

import (
	"sync"
	"time"
)

// FrameSource advances registered tickers. It replaces a process-wide
// ticker registry so that each widget instance owns its own motion.
type FrameSource struct {
	clock Clock

	mu      sync.Mutex
	tickers map[*Ticker]struct{}
}

// NewFrameSource creates a frame source reading time from clock.
// A nil clock uses SystemClock.
func NewFrameSource(clock Clock) *FrameSource {
	if clock == nil {
		clock = SystemClock{}
	}
	return &FrameSource{
		clock:   clock,
		tickers: make(map[*Ticker]struct{}),
	}
}

// Now returns the current time of the frame source's clock.
func (f *FrameSource) Now() time.Time {
	return f.clock.Now()
}

// NewTicker creates an inactive ticker bound to this frame source.
func (f *FrameSource) NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{frames: f, callback: callback}
}

// Step advances all active tickers. Call once per frame.
func (f *FrameSource) Step() {
	f.mu.Lock()
	if len(f.tickers) == 0 {
		f.mu.Unlock()
		return
	}
	// Copy so callbacks may start or stop tickers.
	tickers := make([]*Ticker, 0, len(f.tickers))
	for ticker := range f.tickers {
		tickers = append(tickers, ticker)
	}
	f.mu.Unlock()

	now := f.clock.Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// Active reports whether any ticker is running.
func (f *FrameSource) Active() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tickers) > 0
}

func (f *FrameSource) register(t *Ticker) {
	f.mu.Lock()
	f.tickers[t] = struct{}{}
	f.mu.Unlock()
}

func (f *FrameSource) unregister(t *Ticker) {
	f.mu.Lock()
	delete(f.tickers, t)
	f.mu.Unlock()
}

// Ticker calls a callback on each frame while active. The callback receives
// the elapsed time since Start.
type Ticker struct {
	frames   *FrameSource
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.frames.Now()
	t.frames.register(t)
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.frames.unregister(t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}
