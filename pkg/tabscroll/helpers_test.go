package tabscroll

import (
	"github.com/go-drift/tabscroll/pkg/animation"
	"github.com/go-drift/tabscroll/pkg/errors"
	"github.com/go-drift/tabscroll/pkg/graphics"
	"github.com/go-drift/tabscroll/pkg/scroll"
)

type fakeView struct {
	name     string
	frame    graphics.Rect
	alpha    float64
	attached *Region
}

func (f *fakeView) Frame() graphics.Rect         { return f.frame }
func (f *fakeView) SetFrame(frame graphics.Rect) { f.frame = frame }
func (f *fakeView) SetAlpha(alpha float64)       { f.alpha = alpha }
func (f *fakeView) DidAttach(r *Region)          { f.attached = r }
func (f *fakeView) DidDetach()                   { f.attached = nil }

type fakeSource struct {
	count    int
	nils     map[int]bool
	panics   map[int]bool
	requests map[int]int
}

func newFakeSource(count int) *fakeSource {
	return &fakeSource{
		count:    count,
		nils:     map[int]bool{},
		panics:   map[int]bool{},
		requests: map[int]int{},
	}
}

func (s *fakeSource) PageCount() int { return s.count }

func (s *fakeSource) TabView(index int) Positionable {
	return &fakeView{name: "tab"}
}

func (s *fakeSource) ContentView(index int) Positionable {
	s.requests[index]++
	if s.panics[index] {
		panic("boom")
	}
	if s.nils[index] {
		return nil
	}
	return &fakeView{name: "page"}
}

type errorLog struct {
	errs []*errors.Error
}

func (l *errorLog) reporter() errors.Reporter {
	return errors.Reporter{Handler: errors.HandlerFunc(func(err *errors.Error) {
		l.errs = append(l.errs, err)
	})}
}

func newTestRegion(kind RegionKind) *Region {
	return NewRegion(kind, scroll.NewPosition(animation.NewFrameSource(nil)))
}
