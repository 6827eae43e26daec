package tabscroll

import (
	"time"

	"github.com/go-drift/tabscroll/pkg/animation"
)

// gradientDuration is how long a scroll-driven tab fade takes.
const gradientDuration = 500 * time.Millisecond

// GradientAlpha returns the tab opacity for a tab at distance |tab-current|
// from the current page.
func GradientAlpha(tab, current int) float64 {
	d := tab - current
	if d < 0 {
		d = -d
	}
	switch d {
	case 0:
		return 1.0
	case 1:
		return 0.4
	default:
		return 0.2
	}
}

// tabGradient tracks the target opacity of every tab and fades the ones
// that implement Fader.
type tabGradient struct {
	frames  *animation.FrameSource
	targets []float64
	fades   []*animation.AnimationController
}

func (g *tabGradient) reset(frames *animation.FrameSource, tabs []Positionable) {
	g.dispose()
	g.frames = frames
	g.targets = make([]float64, len(tabs))
	g.fades = make([]*animation.AnimationController, len(tabs))
	for i, tab := range tabs {
		g.targets[i] = 1
		fader, ok := tab.(Fader)
		if !ok || isNil(tab) {
			continue
		}
		c := animation.NewAnimationController(frames, gradientDuration)
		c.Curve = animation.EaseInOut
		c.Value = 1
		c.AddListener(func() {
			fader.SetAlpha(c.Value)
		})
		g.fades[i] = c
	}
}

// apply moves every tab toward its alpha for current. Animated fades that
// already head to the right target are left running.
func (g *tabGradient) apply(current int, animated bool) {
	for i := range g.targets {
		target := GradientAlpha(i, current)
		if animated && g.targets[i] == target {
			continue
		}
		g.targets[i] = target
		c := g.fades[i]
		if c == nil {
			continue
		}
		if animated {
			c.AnimateTo(target)
		} else {
			c.Set(target)
		}
	}
}

// alpha returns the recorded target for tab i, 1 when unknown.
func (g *tabGradient) alpha(i int) float64 {
	if i < 0 || i >= len(g.targets) {
		return 1
	}
	return g.targets[i]
}

func (g *tabGradient) dispose() {
	for _, c := range g.fades {
		if c != nil {
			c.Dispose()
		}
	}
	g.fades = nil
	g.targets = nil
}
