package tabscroll

import (
	"reflect"

	"github.com/go-drift/tabscroll/pkg/graphics"
)

// Positionable is the opaque handle a data source hands back for a tab or a
// page. The widget only ever positions it; everything else is optional and
// discovered through the interfaces below.
type Positionable interface {
	Frame() graphics.Rect
	SetFrame(frame graphics.Rect)
}

// Fader is implemented by handles that support the tab gradient.
type Fader interface {
	SetAlpha(alpha float64)
}

// Measurable is implemented by handles that know their preferred size.
// Tabs without a TabWidthProvider are measured through it, falling back to
// their current frame.
type Measurable interface {
	IntrinsicSize() graphics.Size
}

// Attachable is implemented by handles that want to know when they enter or
// leave a region.
type Attachable interface {
	DidAttach(region *Region)
	DidDetach()
}

// DataSource supplies pages. TabView and ContentView may return a fresh
// handle on every call; the widget keeps its own cache of content handles.
// A nil handle means "nothing to show for now" and is retried later.
//
//go:generate mockgen -package=tabscroll -destination=mock_datasource_test.go github.com/go-drift/tabscroll/pkg/tabscroll DataSource
type DataSource interface {
	PageCount() int
	TabView(index int) Positionable
	ContentView(index int) Positionable
}

// TabWidthProvider lets a data source size tabs externally.
type TabWidthProvider interface {
	TabWidth(index int) float64
}

// TabHeightProvider lets a data source fix the tab section height when the
// config asks for an automatic height.
type TabHeightProvider interface {
	TabHeight() float64
}

// Callbacks are optional notifications. Either field may be nil.
type Callbacks struct {
	// OnPageChanged fires when the widget settles on a different page.
	OnPageChanged func(index int)
	// OnPageScrolled fires whenever the resolved page changes during motion.
	OnPageScrolled func(index int)
}

func (c Callbacks) pageChanged(index int) {
	if c.OnPageChanged != nil {
		c.OnPageChanged(index)
	}
}

func (c Callbacks) pageScrolled(index int) {
	if c.OnPageScrolled != nil {
		c.OnPageScrolled(index)
	}
}

// isNil reports whether a handle is nil, including typed nil pointers
// stored in the interface.
func isNil(v Positionable) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
