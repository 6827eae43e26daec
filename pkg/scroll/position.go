// Package scroll models a one-dimensional scrollable region: its offset,
// extents, user drags, inertial deceleration, paging snap, and animated
// programmatic scrolls.
//
// A Position reports motion through its Handlers, which mirror the signals
// a host toolkit delivers for a scroll view:
//
//   - Scroll: the offset changed, for any reason
//   - BeginDrag: the user started dragging
//   - EndDrag: the user lifted; decelerate says whether motion continues
//   - EndDecelerating: motion that continued after a drag has stopped
//   - EndAnimation: a programmatic AnimateTo finished
//
// Positions are not safe for concurrent use; drive them from the event loop.
package scroll

import (
	"math"
	"time"

	"github.com/go-drift/tabscroll/pkg/animation"
	"github.com/go-drift/tabscroll/pkg/graphics"
)

const (
	// minFlingVelocity is the speed below which a released drag stops dead.
	minFlingVelocity = 5.0
	// pageFlingVelocity is the speed above which a paging release advances
	// to the neighbouring page even if less than half of it is showing.
	pageFlingVelocity = 300.0
	// snapDuration is the time a paging snap takes to settle.
	snapDuration = 250 * time.Millisecond
)

// Handlers are optional callbacks fired by a Position.
type Handlers struct {
	Scroll          func()
	BeginDrag       func()
	EndDrag         func(decelerate bool)
	EndDecelerating func()
	EndAnimation    func()
}

// Position stores the current scroll offset and extents of one region.
type Position struct {
	Handlers Handlers

	offset   float64
	min      float64
	max      float64
	viewport float64
	content  float64
	insets   graphics.EdgeInsets

	paging     bool
	pageExtent float64

	frames    *animation.FrameSource
	motion    *animation.AnimationController
	motionEnd func()
	ballistic *ballisticState
	dragging  bool
}

// NewPosition creates a position whose motion runs on frames.
func NewPosition(frames *animation.FrameSource) *Position {
	p := &Position{frames: frames}
	p.motion = animation.NewAnimationController(frames, 0)
	p.motion.AddListener(func() {
		p.setOffset(p.motion.Value)
	})
	p.motion.AddStatusListener(func(status animation.AnimationStatus) {
		if status != animation.AnimationCompleted {
			return
		}
		end := p.motionEnd
		p.motionEnd = nil
		if end != nil {
			end()
		}
	})
	return p
}

// Offset returns the current scroll offset.
func (p *Position) Offset() float64 {
	return p.offset
}

// Min returns the smallest reachable offset (-insets.Left).
func (p *Position) Min() float64 {
	return p.min
}

// Max returns the largest reachable offset.
func (p *Position) Max() float64 {
	return p.max
}

// Viewport returns the visible extent.
func (p *Position) Viewport() float64 {
	return p.viewport
}

// ContentExtent returns the scrollable content length, excluding insets.
func (p *Position) ContentExtent() float64 {
	return p.content
}

// Insets returns the content insets.
func (p *Position) Insets() graphics.EdgeInsets {
	return p.insets
}

// SetPaging enables snap-to-page on release. pageExtent <= 0 uses the
// viewport extent.
func (p *Position) SetPaging(enabled bool, pageExtent float64) {
	p.paging = enabled
	p.pageExtent = pageExtent
}

// Paging reports whether snap-to-page is enabled.
func (p *Position) Paging() bool {
	return p.paging
}

// SetExtents updates viewport, content length and insets. The offset range
// becomes [-insets.Left, content - viewport + insets.Right]; the current
// offset is clamped into it.
func (p *Position) SetExtents(viewport, content float64, insets graphics.EdgeInsets) {
	p.viewport = viewport
	p.content = content
	p.insets = insets
	p.min = -insets.Left
	p.max = content - viewport + insets.Right
	if p.max < p.min {
		p.max = p.min
	}
	p.setOffset(p.offset)
}

// SetOffset assigns the offset without stopping motion. It is the
// assignment a synchronizer uses to mirror another region.
func (p *Position) SetOffset(value float64) {
	p.setOffset(value)
}

// JumpTo stops any motion and moves to value.
func (p *Position) JumpTo(value float64) {
	p.Stop()
	p.setOffset(value)
}

// AnimateTo stops any motion and scrolls to value over duration. EndAnimation
// fires when the target is reached, immediately if there is nothing to
// animate. A later Stop, JumpTo, AnimateTo or BeginDrag cancels it silently.
func (p *Position) AnimateTo(value float64, duration time.Duration) {
	p.Stop()
	p.animate(value, duration, animation.EaseOut, p.fireEndAnimation)
}

// Stop halts animations and deceleration, pinning the current offset.
// No end signal fires for the interrupted motion.
func (p *Position) Stop() {
	p.motionEnd = nil
	p.motion.Stop()
	p.stopBallistic()
}

// CancelDrag abandons a drag in progress without any end signal. Later
// DragBy and EndDrag calls for that gesture are ignored.
func (p *Position) CancelDrag() {
	p.dragging = false
}

// IsDragging reports whether a user drag is in progress.
func (p *Position) IsDragging() bool {
	return p.dragging
}

// IsMoving reports whether an animation or deceleration is in progress.
func (p *Position) IsMoving() bool {
	return p.motion.IsAnimating() || p.ballistic != nil
}

// BeginDrag starts a user drag, stopping any motion.
func (p *Position) BeginDrag() {
	p.Stop()
	p.dragging = true
	if p.Handlers.BeginDrag != nil {
		p.Handlers.BeginDrag()
	}
}

// DragBy applies a drag delta in offset units. Deltas outside a drag are
// ignored.
func (p *Position) DragBy(delta float64) {
	if !p.dragging {
		return
	}
	p.setOffset(p.offset + delta)
}

// EndDrag finishes a drag with the release velocity in offset units per
// second. With paging enabled the position snaps to a page boundary;
// otherwise it decelerates from velocity.
func (p *Position) EndDrag(velocity float64) {
	if !p.dragging {
		return
	}
	p.dragging = false
	if math.IsNaN(velocity) || math.IsInf(velocity, 0) {
		velocity = 0
	}

	if p.paging {
		target := p.snapTarget(velocity)
		if graphics.NearlyEqual(target, p.offset) {
			p.setOffset(target)
			p.fireEndDrag(false)
			return
		}
		p.fireEndDrag(true)
		p.animate(target, snapDuration, animation.EaseOut, p.fireEndDecelerating)
		return
	}

	if math.Abs(velocity) < minFlingVelocity {
		p.fireEndDrag(false)
		return
	}
	p.fireEndDrag(true)
	p.startBallistic(velocity)
}

func (p *Position) animate(value float64, duration time.Duration, curve animation.Curve, end func()) {
	target := graphics.Clamp(value, p.min, p.max)
	if graphics.NearlyEqual(target, p.offset) {
		duration = 0
	}
	p.motion.Duration = duration
	p.motion.Curve = curve
	p.motion.Value = p.offset
	p.motionEnd = end
	p.motion.AnimateTo(target)
}

func (p *Position) snapTarget(velocity float64) float64 {
	extent := p.pageExtent
	if extent <= 0 {
		extent = p.viewport
	}
	if extent <= 0 {
		return p.offset
	}
	page := math.Floor((p.offset + extent/2) / extent)
	switch {
	case velocity > pageFlingVelocity && page*extent <= p.offset:
		page++
	case velocity < -pageFlingVelocity && page*extent >= p.offset:
		page--
	}
	return graphics.Clamp(page*extent, p.min, p.max)
}

func (p *Position) setOffset(value float64) {
	clamped := graphics.Clamp(value, p.min, p.max)
	if clamped == p.offset {
		return
	}
	p.offset = clamped
	if p.Handlers.Scroll != nil {
		p.Handlers.Scroll()
	}
}

func (p *Position) fireEndDrag(decelerate bool) {
	if p.Handlers.EndDrag != nil {
		p.Handlers.EndDrag(decelerate)
	}
}

func (p *Position) fireEndDecelerating() {
	if p.Handlers.EndDecelerating != nil {
		p.Handlers.EndDecelerating()
	}
}

func (p *Position) fireEndAnimation() {
	if p.Handlers.EndAnimation != nil {
		p.Handlers.EndAnimation()
	}
}
