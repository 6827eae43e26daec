package testing

import (
	"github.com/go-drift/tabscroll/pkg/graphics"
	"github.com/go-drift/tabscroll/pkg/platform"
	"github.com/go-drift/tabscroll/pkg/tabscroll"
)

// maxSettleFrames bounds Settle so a runaway animation fails fast.
const maxSettleFrames = 10000

// Tester drives a tabscroll.View on fake time.
type Tester struct {
	Clock    *FakeClock
	Loop     *platform.Loop
	Source   *StubSource
	Recorder *Recorder
	View     *tabscroll.View
}

// NewTester creates a view over source whose callbacks and errors go to the
// tester's Recorder. Extra options are applied last.
func NewTester(cfg tabscroll.Config, source *StubSource, opts ...tabscroll.Option) *Tester {
	t := &Tester{
		Clock:    NewFakeClock(),
		Source:   source,
		Recorder: &Recorder{},
	}
	t.Loop = platform.NewLoop(t.Clock)
	base := []tabscroll.Option{
		tabscroll.WithLoop(t.Loop),
		tabscroll.WithCallbacks(t.Recorder.Callbacks()),
		tabscroll.WithErrorHandler(t.Recorder),
	}
	if source != nil {
		base = append(base, tabscroll.WithDataSource(source))
	}
	t.View = tabscroll.New(cfg, append(base, opts...)...)
	return t
}

// Layout sizes the view without pumping.
func (t *Tester) Layout(size graphics.Size) {
	t.View.Layout(size)
}

// Pump runs one loop turn without advancing time.
func (t *Tester) Pump() {
	t.Loop.Pump()
}

// Frame advances the clock by one FrameInterval and pumps.
func (t *Tester) Frame() {
	t.Clock.Step()
	t.Loop.Pump()
}

// Frames runs n frames.
func (t *Tester) Frames(n int) {
	for range n {
		t.Frame()
	}
}

// Settle runs frames until the loop is idle and returns how many ran.
func (t *Tester) Settle() int {
	t.Loop.Pump()
	n := 0
	for !t.Loop.Idle() && n < maxSettleFrames {
		t.Frame()
		n++
	}
	return n
}

// Drag performs a complete drag on region: begin, one move by delta, and a
// release at velocity.
func (t *Tester) Drag(region tabscroll.RegionKind, delta, velocity float64) {
	t.View.BeginDrag(region)
	t.View.DragBy(region, delta)
	t.View.EndDrag(region, velocity)
}
