package tabscroll

import (
	"slices"

	"github.com/go-drift/tabscroll/pkg/graphics"
	"github.com/go-drift/tabscroll/pkg/scroll"
)

// RegionKind names one of the widget's two scroll regions.
type RegionKind int

const (
	// RegionNone means no region is driving synchronization.
	RegionNone RegionKind = iota
	// RegionTab is the tab strip.
	RegionTab
	// RegionContent is the paged content area.
	RegionContent
)

func (k RegionKind) String() string {
	switch k {
	case RegionTab:
		return "tab"
	case RegionContent:
		return "content"
	default:
		return "none"
	}
}

// Region is a scrollable container: a scroll position plus the handles
// currently attached to it, in attach order.
type Region struct {
	kind     RegionKind
	position *scroll.Position
	frame    graphics.Rect
	children []Positionable
}

// NewRegion creates an empty region of the given kind scrolling with
// position.
func NewRegion(kind RegionKind, position *scroll.Position) *Region {
	return &Region{kind: kind, position: position}
}

// Kind reports which region this is.
func (r *Region) Kind() RegionKind {
	return r.kind
}

// Position returns the region's scroll position.
func (r *Region) Position() *scroll.Position {
	return r.position
}

// Offset returns the current scroll offset.
func (r *Region) Offset() float64 {
	return r.position.Offset()
}

// Frame returns the region's frame in widget coordinates.
func (r *Region) Frame() graphics.Rect {
	return r.frame
}

func (r *Region) setFrame(frame graphics.Rect) {
	r.frame = frame
}

// Attach adds v to the region. Attaching a handle twice is a no-op.
func (r *Region) Attach(v Positionable) {
	if r.Contains(v) {
		return
	}
	r.children = append(r.children, v)
	if a, ok := v.(Attachable); ok {
		a.DidAttach(r)
	}
}

// Detach removes v from the region if present.
func (r *Region) Detach(v Positionable) {
	i := slices.Index(r.children, v)
	if i < 0 {
		return
	}
	r.children = slices.Delete(r.children, i, i+1)
	if a, ok := v.(Attachable); ok {
		a.DidDetach()
	}
}

// DetachAll removes every handle.
func (r *Region) DetachAll() {
	children := r.children
	r.children = nil
	for _, v := range children {
		if a, ok := v.(Attachable); ok {
			a.DidDetach()
		}
	}
}

// Contains reports whether v is attached.
func (r *Region) Contains(v Positionable) bool {
	return slices.Contains(r.children, v)
}

// Children returns a copy of the attached handles in attach order.
func (r *Region) Children() []Positionable {
	return slices.Clone(r.children)
}

// Len returns the number of attached handles.
func (r *Region) Len() int {
	return len(r.children)
}
