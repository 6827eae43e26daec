package animation

import "time"

// Clock provides time for animations. Each FrameSource owns one, so tests
// can drive a single widget instance with a fake clock without touching any
// other instance.
type Clock interface {
	Now() time.Time
}

// SystemClock uses wall time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }
