// Package widgets provides ready-made view handles for tab scroll widgets.
//
// Box and Label implement every optional handle interface of the tabscroll
// package, so hosts can use them directly or embed them.
package widgets

import (
	"github.com/go-drift/tabscroll/pkg/graphics"
	"github.com/go-drift/tabscroll/pkg/tabscroll"
)

// Box is a rectangular view handle with an opacity and a background color.
// Use NewBox; the zero value is fully transparent.
type Box struct {
	Color graphics.Color

	frame  graphics.Rect
	alpha  float64
	region *tabscroll.Region
}

// NewBox creates an opaque box filled with color.
func NewBox(color graphics.Color) *Box {
	return &Box{Color: color, alpha: 1}
}

// Frame returns the box's frame in its region's content coordinates.
func (b *Box) Frame() graphics.Rect {
	return b.frame
}

// SetFrame moves and resizes the box.
func (b *Box) SetFrame(frame graphics.Rect) {
	b.frame = frame
}

// Alpha returns the opacity in [0, 1].
func (b *Box) Alpha() float64 {
	return b.alpha
}

// SetAlpha sets the opacity, clamped to [0, 1].
func (b *Box) SetAlpha(alpha float64) {
	b.alpha = graphics.Clamp(alpha, 0, 1)
}

// Region returns the region the box is attached to, or nil.
func (b *Box) Region() *tabscroll.Region {
	return b.region
}

// Attached reports whether the box is in a region.
func (b *Box) Attached() bool {
	return b.region != nil
}

// DidAttach records the region.
func (b *Box) DidAttach(region *tabscroll.Region) {
	b.region = region
}

// DidDetach clears the region.
func (b *Box) DidDetach() {
	b.region = nil
}

var (
	_ tabscroll.Positionable = (*Box)(nil)
	_ tabscroll.Fader        = (*Box)(nil)
	_ tabscroll.Attachable   = (*Box)(nil)
)
