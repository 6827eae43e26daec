// Package platform provides the single-threaded event loop that tab scroll
// widgets run on.
package platform

import (
	"context"
	"sync"
	"time"

	"github.com/go-drift/tabscroll/pkg/animation"
)

// Scheduler posts work to run on a later turn of the event loop.
type Scheduler interface {
	// Post schedules task to run on the next loop turn. Returns false if
	// the task is nil.
	Post(task func()) bool
}

// Loop is a cooperative UI event loop. Tasks posted with Post run on the
// next Pump, after the work that posted them has returned, and before any
// frame is stepped. Post may be called from any goroutine; everything else
// must be called from the goroutine that pumps the loop.
type Loop struct {
	frames *animation.FrameSource

	mu      sync.Mutex
	pending []func()
}

// NewLoop creates a loop whose frame source reads time from clock.
// A nil clock uses wall time.
func NewLoop(clock animation.Clock) *Loop {
	return &Loop{frames: animation.NewFrameSource(clock)}
}

// Frames returns the loop's frame source.
func (l *Loop) Frames() *animation.FrameSource {
	return l.frames
}

// Post schedules task for the next loop turn.
func (l *Loop) Post(task func()) bool {
	if task == nil {
		return false
	}
	l.mu.Lock()
	l.pending = append(l.pending, task)
	l.mu.Unlock()
	return true
}

// Pump runs one loop turn: every task posted before the call, in order,
// followed by one frame step. Tasks posted while pumping wait for the next
// turn.
func (l *Loop) Pump() {
	l.mu.Lock()
	tasks := l.pending
	l.pending = nil
	l.mu.Unlock()

	for _, task := range tasks {
		task()
	}
	l.frames.Step()
}

// Idle reports whether the loop has no pending tasks and no running motion.
func (l *Loop) Idle() bool {
	l.mu.Lock()
	n := len(l.pending)
	l.mu.Unlock()
	return n == 0 && !l.frames.Active()
}

// PumpUntilIdle pumps until Idle or until maxTurns turns have run. It
// returns the number of turns taken.
func (l *Loop) PumpUntilIdle(maxTurns int) int {
	turns := 0
	for turns < maxTurns && !l.Idle() {
		l.Pump()
		turns++
	}
	return turns
}

// Run pumps the loop every interval until ctx is cancelled.
func (l *Loop) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Second / 60
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.Pump()
		}
	}
}
