// Package testing provides helpers for testing tab scroll widgets.
//
// A Tester wires a tabscroll.View to a FakeClock-driven loop, a StubSource
// and a Recorder, so tests can step time deterministically:
//
//	tester := tstesting.NewTester(tabscroll.DefaultConfig(), tstesting.NewStubSource(8))
//	tester.Layout(graphics.Size{Width: 100, Height: 200})
//	tester.Pump() // runs the deferred placement
//
//	tester.View.ChangePage(5, true)
//	tester.Settle()
//
//	if got := tester.Recorder.Changed(); !slices.Equal(got, []int{5}) {
//	    t.Errorf("changed = %v", got)
//	}
//
// Import it under an alias to avoid clashing with the standard library:
//
//	import tstesting "github.com/go-drift/tabscroll/pkg/testing"
package testing
