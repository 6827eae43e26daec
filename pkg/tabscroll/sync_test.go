package tabscroll

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/tabscroll/pkg/animation"
	"github.com/go-drift/tabscroll/pkg/graphics"
	"github.com/go-drift/tabscroll/pkg/scroll"
)

func newTestSync() (*Synchronizer, *scroll.Position, *scroll.Position) {
	widths := []float64{40, 80, 60}
	s := &Synchronizer{}
	s.configure(100, widths, 30)

	frames := animation.NewFrameSource(nil)
	tab := scroll.NewPosition(frames)
	tab.SetExtents(100, 180, graphics.EdgeInsets{Left: 30, Right: 20})
	content := scroll.NewPosition(frames)
	content.SetExtents(100, 300, graphics.EdgeInsets{})
	return s, tab, content
}

func TestSynchronizer_PageStartsCenterTabs(t *testing.T) {
	s, _, _ := newTestSync()
	widths := []float64{40, 80, 60}
	for k := range widths {
		center := TabCenterOffset(k, 100, widths)
		assert.InDelta(t, center, s.TabForContent(float64(k)*100), 1e-9, "page %d", k)
		assert.InDelta(t, float64(k)*100, s.ContentForTab(center), 1e-9, "tab %d", k)
	}
}

func TestSynchronizer_RoundTrip(t *testing.T) {
	s, _, _ := newTestSync()
	for c := 0.0; c <= 200; c += 7 {
		assert.InDelta(t, c, s.ContentForTab(s.TabForContent(c)), 1e-9, "content=%v", c)
	}
}

func TestSynchronizer_ContinuousAtPageBoundary(t *testing.T) {
	s, _, _ := newTestSync()
	below := s.TabForContent(149.9999)
	at := s.TabForContent(150)
	assert.InDelta(t, at, below, 1e-3)

	// Both sides of the boundary are the seam between tab 1 and tab 2.
	assert.InDelta(t, 70.0, at, 1e-9)
}

func TestSynchronizer_PropagateFromActiveOnly(t *testing.T) {
	s, tab, content := newTestSync()
	s.SetActive(RegionContent)

	content.SetOffset(100)
	assert.True(t, s.Propagate(RegionContent, tab, content))
	assert.InDelta(t, 30.0, tab.Offset(), 1e-9)

	tab.SetOffset(-30)
	assert.False(t, s.Propagate(RegionTab, tab, content))
	assert.Equal(t, 100.0, content.Offset())
}

func TestSynchronizer_MirroredScrollDoesNotFeedBack(t *testing.T) {
	s, tab, content := newTestSync()
	s.SetActive(RegionTab)

	var reentrant []bool
	content.Handlers.Scroll = func() {
		reentrant = append(reentrant, s.Propagate(RegionContent, tab, content))
	}

	tab.SetOffset(100)
	assert.True(t, s.Propagate(RegionTab, tab, content))
	assert.InDelta(t, 200.0, content.Offset(), 1e-9)
	assert.Equal(t, []bool{false}, reentrant)
}

func TestSynchronizer_Place(t *testing.T) {
	s, tab, content := newTestSync()
	fired := 0
	tab.Handlers.Scroll = func() {
		if s.Propagate(RegionTab, tab, content) {
			fired++
		}
	}
	s.SetActive(RegionTab)

	s.Place(2, tab, content)

	assert.Equal(t, 200.0, content.Offset())
	assert.Equal(t, 100.0, tab.Offset())
	assert.Zero(t, fired)
}
