package scroll

import (
	"math"
	"time"

	"github.com/go-drift/tabscroll/pkg/animation"
)

// ballisticState decelerates a released drag frame by frame.
type ballisticState struct {
	position *Position
	velocity float64
	lastTime time.Time
	ticker   *animation.Ticker
}

func (p *Position) startBallistic(velocity float64) {
	p.stopBallistic()
	b := &ballisticState{
		position: p,
		velocity: velocity,
		lastTime: p.frames.Now(),
	}
	b.ticker = p.frames.NewTicker(func(time.Duration) {
		if b.step(p.frames.Now()) {
			p.stopBallistic()
			p.fireEndDecelerating()
		}
	})
	p.ballistic = b
	b.ticker.Start()
}

func (p *Position) stopBallistic() {
	if p.ballistic == nil {
		return
	}
	p.ballistic.ticker.Stop()
	p.ballistic = nil
}

func (b *ballisticState) step(now time.Time) bool {
	if !now.After(b.lastTime) {
		b.lastTime = now
		return false
	}
	dt := now.Sub(b.lastTime).Seconds()
	b.lastTime = now
	// Cap dt so a stalled frame doesn't jump the content.
	const maxDt = 0.032
	if dt > maxDt {
		dt = maxDt
	}
	return b.advance(dt)
}

func (b *ballisticState) advance(dt float64) bool {
	pos := b.position
	velocity := b.velocity

	decel := 2200.0 + 0.385*math.Abs(velocity)
	if velocity > 0 {
		velocity = math.Max(0, velocity-decel*dt)
	} else if velocity < 0 {
		velocity = math.Min(0, velocity+decel*dt)
	}
	b.velocity = velocity

	before := pos.offset
	pos.setOffset(pos.offset + velocity*dt)
	if pos.offset == before && velocity != 0 {
		// Pinned against an edge.
		return true
	}
	return math.Abs(velocity) < minFlingVelocity
}
