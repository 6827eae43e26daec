package tabscroll_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/tabscroll/pkg/errors"
	"github.com/go-drift/tabscroll/pkg/graphics"
	"github.com/go-drift/tabscroll/pkg/tabscroll"
	tstesting "github.com/go-drift/tabscroll/pkg/testing"
	"github.com/go-drift/tabscroll/pkg/widgets"
)

// Stub tabs are "Page N" labels: 6 glyphs * 7px + 24px padding = 66 wide,
// 13px + 16px padding = 29 tall.
const (
	tabWidth  = 66.0
	tabHeight = 29.0
)

var viewport = graphics.Size{Width: 100, Height: 200}

func newReadyTester(t *testing.T, cfg tabscroll.Config, pages int, opts ...tabscroll.Option) *tstesting.Tester {
	t.Helper()
	tester := tstesting.NewTester(cfg, tstesting.NewStubSource(pages), opts...)
	tester.Layout(viewport)
	tester.Pump()
	require.Equal(t, tabscroll.StateReady, tester.View.State())
	return tester
}

func centerOf(index int) float64 {
	return float64(index)*tabWidth + tabWidth/2 - viewport.Width/2
}

func TestScenarioA_InitialLayout(t *testing.T) {
	cfg := tabscroll.DefaultConfig()
	cfg.DefaultPage = 1
	tester := newReadyTester(t, cfg, 8)
	v := tester.View

	assert.Equal(t, 1, v.CurrentIndex())
	assert.Equal(t, []int{0, 1, 2}, v.Materialized())
	assert.Equal(t, 100.0, v.ContentOffset())
	assert.Equal(t, centerOf(1), v.TabOffset())
	assert.Empty(t, tester.Recorder.Changed(), "initial placement is not a change")
	assert.Empty(t, tester.Recorder.Scrolled())
}

func TestScenarioB_ChangePageMovesWindow(t *testing.T) {
	cfg := tabscroll.DefaultConfig()
	cfg.DefaultPage = 1
	tester := newReadyTester(t, cfg, 8)
	v := tester.View
	first := tester.Source.Pages(0)[0]

	v.ChangePage(5, true)
	assert.Equal(t, []int{5}, tester.Recorder.Changed(), "fires before the scroll finishes")

	tester.Settle()

	assert.Equal(t, []int{5}, tester.Recorder.Changed())
	assert.Equal(t, 5, v.CurrentIndex())
	assert.Equal(t, []int{4, 5, 6}, v.Materialized())
	assert.False(t, first.Attached(), "page 0 should have been evicted")
	scrolled := tester.Recorder.Scrolled()
	require.NotEmpty(t, scrolled)
	assert.Equal(t, 5, scrolled[len(scrolled)-1])
}

func TestScenarioC_UnboundedCacheKeepsEveryPage(t *testing.T) {
	cfg := tabscroll.DefaultConfig()
	cfg.CachePageLimit = 0
	tester := newReadyTester(t, cfg, 8)

	for i := 1; i < 8; i++ {
		tester.View.ChangePage(i, false)
	}

	assert.Equal(t, 8, tester.View.CacheLen())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, tester.View.Materialized())
}

func TestScenarioD_LastCompletionWins(t *testing.T) {
	tester := newReadyTester(t, tabscroll.DefaultConfig(), 8)
	var first, second int

	tester.View.ChangePageWithCompletion(2, true, func() { first++ })
	tester.Frames(3)
	tester.View.ChangePageWithCompletion(3, true, func() { second++ })
	tester.Settle()

	assert.Zero(t, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 3, tester.View.CurrentIndex())
	assert.Equal(t, []int{2, 3}, tester.Recorder.Changed())
}

func TestScenarioE_OutOfRangeIsIgnored(t *testing.T) {
	tester := newReadyTester(t, tabscroll.DefaultConfig(), 8)
	v := tester.View
	called := false

	assert.NotPanics(t, func() {
		v.ChangePage(-1, true)
		v.ChangePage(8, false)
		v.ChangePageWithCompletion(99, true, func() { called = true })
		v.TapTab(-3)
	})
	tester.Settle()

	assert.Equal(t, 0, v.CurrentIndex())
	assert.Equal(t, 0.0, v.ContentOffset())
	assert.False(t, called)
	assert.Empty(t, tester.Recorder.Changed())
	assert.Empty(t, tester.Recorder.Errors())
}

func TestChangePage_SameIndexDoesNotNotify(t *testing.T) {
	tester := newReadyTester(t, tabscroll.DefaultConfig(), 8)
	done := 0

	tester.View.ChangePage(0, true)
	tester.View.ChangePageWithCompletion(0, true, func() { done++ })

	assert.Empty(t, tester.Recorder.Changed())
	assert.Equal(t, 1, done, "nothing to animate completes at once")
}

func TestChangePage_NotAnimatedIsSynchronous(t *testing.T) {
	tester := newReadyTester(t, tabscroll.DefaultConfig(), 8)
	done := 0

	tester.View.ChangePageWithCompletion(3, false, func() { done++ })

	assert.Equal(t, 1, done)
	assert.Equal(t, 300.0, tester.View.ContentOffset())
	assert.InDelta(t, centerOf(3), tester.View.TabOffset(), 1e-9)
	assert.Equal(t, []int{2, 3, 4}, tester.View.Materialized())
	assert.Equal(t, []int{3}, tester.Recorder.Changed())
	assert.Equal(t, []int{3}, tester.Recorder.Scrolled())
}

func TestChangePage_PlainCallCancelsPendingCompletion(t *testing.T) {
	tester := newReadyTester(t, tabscroll.DefaultConfig(), 8)
	called := false

	tester.View.ChangePageWithCompletion(4, true, func() { called = true })
	tester.Frames(2)
	tester.View.ChangePage(6, true)
	tester.Settle()

	assert.False(t, called)
	assert.Equal(t, 6, tester.View.CurrentIndex())
}

func TestChangePage_FromOnPageChangedWins(t *testing.T) {
	tester := newReadyTester(t, tabscroll.DefaultConfig(), 8)
	v := tester.View
	var changed []int
	redirected := false
	v.SetCallbacks(tabscroll.Callbacks{OnPageChanged: func(index int) {
		changed = append(changed, index)
		if index == 5 && !redirected {
			redirected = true
			v.ChangePage(2, true)
		}
	}})

	v.ChangePage(5, true)
	tester.Settle()

	assert.Equal(t, 2, v.CurrentIndex())
	assert.Equal(t, 200.0, v.ContentOffset())
	assert.Equal(t, []int{5, 2}, changed)

	v.ChangePage(4, true)
	tester.Settle()
	v.ChangePage(2, true)
	tester.Settle()

	assert.Equal(t, 2, v.CurrentIndex())
	assert.Equal(t, []int{5, 2, 4, 2}, changed)
}

func TestChangePage_CancelsDragInProgress(t *testing.T) {
	tester := newReadyTester(t, tabscroll.DefaultConfig(), 8)
	v := tester.View

	v.BeginDrag(tabscroll.RegionContent)
	v.DragBy(tabscroll.RegionContent, 30)
	v.ChangePage(5, true)
	tester.Frames(3)
	v.DragBy(tabscroll.RegionContent, 10)
	tester.Frames(2)
	v.EndDrag(tabscroll.RegionContent, 0)
	tester.Settle()

	assert.Equal(t, 5, v.CurrentIndex())
	assert.Equal(t, 500.0, v.ContentOffset())
	assert.InDelta(t, centerOf(5), v.TabOffset(), 1e-9)
	assert.Equal(t, []int{5}, tester.Recorder.Changed())
}

func TestChangePage_ScrollsWithPagingDisabled(t *testing.T) {
	cfg := tabscroll.DefaultConfig()
	cfg.PagingEnabled = false
	tester := newReadyTester(t, cfg, 8)

	tester.View.ChangePage(2, true)
	tester.Settle()

	assert.Equal(t, 200.0, tester.View.ContentOffset())
}

func TestSynchronization_EveryPageCentersItsTab(t *testing.T) {
	tester := newReadyTester(t, tabscroll.DefaultConfig(), 8)
	v := tester.View
	frames := v.TabFrames()

	for k := 0; k < 8; k++ {
		v.ChangePage(k, false)
		require.Equal(t, k, v.CurrentIndex())
		assert.InDelta(t, centerOf(k), v.TabOffset(), 1e-9, "page %d", k)

		visible := graphics.RectFromLTWH(v.TabOffset(), 0, viewport.Width, tabHeight)
		assert.Equal(t, frames[k], frames[k].Intersect(visible), "tab %d should be fully visible", k)
	}
}

func TestSynchronization_FinalTabCentersWithUnevenWidths(t *testing.T) {
	source := tstesting.NewStubSourceWithTitles("a", "b", "c", "d")
	source.Widths = []float64{40, 80, 60, 120}
	tester := tstesting.NewTester(tabscroll.DefaultConfig(), source)
	tester.Layout(viewport)
	tester.Pump()
	v := tester.View

	v.ChangePage(3, false)

	// 40+80+60 before the last tab, plus half of it, minus half the viewport.
	assert.InDelta(t, 190.0, v.TabOffset(), 1e-9)
	assert.InDelta(t, 190.0, v.TabRegion().Position().Max(), 1e-9)
	assert.InDelta(t, -30.0, v.TabRegion().Position().Min(), 1e-9)

	v.ChangePage(0, false)
	assert.InDelta(t, -30.0, v.TabOffset(), 1e-9)
}

func TestDrag_TabStripDrivesContent(t *testing.T) {
	tester := newReadyTester(t, tabscroll.DefaultConfig(), 8)
	v := tester.View

	v.BeginDrag(tabscroll.RegionTab)
	v.DragBy(tabscroll.RegionTab, tabWidth)

	assert.InDelta(t, centerOf(1), v.TabOffset(), 1e-9)
	assert.InDelta(t, 100.0, v.ContentOffset(), 1e-9)
	assert.Equal(t, []int{1}, tester.Recorder.Scrolled())
	assert.Empty(t, tester.Recorder.Changed(), "no settle yet")

	v.EndDrag(tabscroll.RegionTab, 0)
	tester.Settle()

	assert.Equal(t, []int{1}, tester.Recorder.Changed())
	assert.Equal(t, []int{0, 1, 2}, v.Materialized())
}

func TestDrag_ContentSnapsToPage(t *testing.T) {
	tester := newReadyTester(t, tabscroll.DefaultConfig(), 8)
	v := tester.View

	tester.Drag(tabscroll.RegionContent, 60, 0)
	assert.Empty(t, tester.Recorder.Changed())
	tester.Settle()

	assert.Equal(t, 100.0, v.ContentOffset())
	assert.InDelta(t, centerOf(1), v.TabOffset(), 1e-9)
	assert.Equal(t, []int{1}, tester.Recorder.Changed())
}

func TestDrag_ShortDragReturns(t *testing.T) {
	tester := newReadyTester(t, tabscroll.DefaultConfig(), 8)

	tester.Drag(tabscroll.RegionContent, 30, 0)
	tester.Settle()

	assert.Equal(t, 0.0, tester.View.ContentOffset())
	assert.Empty(t, tester.Recorder.Changed())
}

func TestDrag_FreeScrollWithoutPaging(t *testing.T) {
	cfg := tabscroll.DefaultConfig()
	cfg.PagingEnabled = false
	tester := newReadyTester(t, cfg, 8)

	tester.Drag(tabscroll.RegionContent, 130, 0)
	tester.Settle()

	assert.Equal(t, 130.0, tester.View.ContentOffset())
	assert.Equal(t, []int{1}, tester.Recorder.Changed())
}

func TestDrag_FlingDeceleratesThenSettles(t *testing.T) {
	cfg := tabscroll.DefaultConfig()
	cfg.PagingEnabled = false
	tester := newReadyTester(t, cfg, 8)

	tester.Drag(tabscroll.RegionContent, 10, 2000)
	assert.Empty(t, tester.Recorder.Changed(), "still decelerating")
	tester.Settle()

	v := tester.View
	assert.Greater(t, v.ContentOffset(), 10.0)
	changed := tester.Recorder.Changed()
	require.Len(t, changed, 1)
	assert.Equal(t, v.CurrentIndex(), changed[0])
}

func TestDrag_InterruptsProgrammaticScroll(t *testing.T) {
	tester := newReadyTester(t, tabscroll.DefaultConfig(), 8)
	called := false
	v := tester.View

	v.ChangePageWithCompletion(6, true, func() { called = true })
	tester.Frames(2)
	pinned := v.ContentOffset()
	v.BeginDrag(tabscroll.RegionContent)
	tester.Frames(5)

	assert.Equal(t, pinned, v.ContentOffset())
	assert.False(t, called)
}

func TestGradient_InstantOnLayout(t *testing.T) {
	cfg := tabscroll.DefaultConfig()
	cfg.DefaultPage = 1
	tester := newReadyTester(t, cfg, 5)
	v := tester.View

	want := []float64{0.4, 1, 0.4, 0.2, 0.2}
	tabs := v.Tabs()
	for i, alpha := range want {
		assert.Equal(t, alpha, v.TabAlpha(i), "target %d", i)
		assert.InDelta(t, alpha, tabs[i].(*widgets.Label).Alpha(), 1e-9, "tab %d", i)
	}
}

func TestGradient_AnimatesOnScroll(t *testing.T) {
	tester := newReadyTester(t, tabscroll.DefaultConfig(), 5)
	v := tester.View
	last := v.Tabs()[4].(*widgets.Label)
	require.InDelta(t, 0.2, last.Alpha(), 1e-9)

	v.ChangePage(4, true)
	tester.Settle()

	assert.Equal(t, 1.0, v.TabAlpha(4))
	assert.Equal(t, 0.2, v.TabAlpha(0))
	assert.InDelta(t, 1.0, last.Alpha(), 1e-9)
	assert.InDelta(t, 0.2, v.Tabs()[0].(*widgets.Label).Alpha(), 1e-9)
}

func TestGradient_Disabled(t *testing.T) {
	cfg := tabscroll.DefaultConfig()
	cfg.TabGradient = false
	tester := newReadyTester(t, cfg, 5)

	tester.View.ChangePage(2, true)
	tester.Settle()

	for i, tab := range tester.View.Tabs() {
		assert.Equal(t, 1.0, tester.View.TabAlpha(i))
		assert.Equal(t, 1.0, tab.(*widgets.Label).Alpha())
	}
}

func TestTapTab_DropsTapsWhileScrolling(t *testing.T) {
	tester := newReadyTester(t, tabscroll.DefaultConfig(), 8)
	v := tester.View

	v.TapTab(3)
	v.TapTab(5)
	tester.Settle()

	assert.Equal(t, 3, v.CurrentIndex())
	assert.Equal(t, []int{3}, tester.Recorder.Changed())

	v.TapTab(5)
	tester.Settle()
	assert.Equal(t, 5, v.CurrentIndex())
	assert.Equal(t, []int{3, 5}, tester.Recorder.Changed())
}

func TestTapTabStrip_HitTestsTabs(t *testing.T) {
	tester := newReadyTester(t, tabscroll.DefaultConfig(), 8)
	v := tester.View

	// Page 0 centers tab 0, so the strip starts at -17: x=95 lands in tab 1.
	v.TapTabStrip(95)
	tester.Settle()
	assert.Equal(t, 1, v.CurrentIndex())

	v.ChangePage(7, false)
	tester.Recorder.Reset()

	// Right of the last tab re-centers the current one.
	v.TapTabStrip(99)
	tester.Settle()
	assert.Equal(t, 7, v.CurrentIndex())
	assert.Empty(t, tester.Recorder.Changed())
}

func TestStopScrolling_PinsBothRegions(t *testing.T) {
	tester := newReadyTester(t, tabscroll.DefaultConfig(), 8)
	v := tester.View

	v.ChangePage(6, true)
	tester.Frames(4)
	v.StopScrolling()
	content, tab := v.ContentOffset(), v.TabOffset()
	tester.Frames(40)

	assert.Equal(t, content, v.ContentOffset())
	assert.Equal(t, tab, v.TabOffset())
}

func TestDeferredInitialization(t *testing.T) {
	cfg := tabscroll.DefaultConfig()
	cfg.DefaultPage = 2
	tester := tstesting.NewTester(cfg, tstesting.NewStubSource(8))
	v := tester.View

	tester.Layout(viewport)

	assert.Equal(t, tabscroll.StateLayingOut, v.State())
	assert.Len(t, v.TabFrames(), 8, "tabs are built eagerly")
	assert.Equal(t, -1, v.CurrentIndex())
	assert.Empty(t, v.Materialized())
	assert.Zero(t, tester.Source.Requests(2))

	v.ChangePage(5, false)
	assert.Empty(t, tester.Recorder.Changed(), "calls before placement are ignored")

	tester.Pump()

	assert.Equal(t, tabscroll.StateReady, v.State())
	assert.Equal(t, 2, v.CurrentIndex())
	assert.Equal(t, []int{1, 2, 3}, v.Materialized())
}

func TestLayout_LatestLayoutWins(t *testing.T) {
	cfg := tabscroll.DefaultConfig()
	cfg.DefaultPage = 1
	tester := tstesting.NewTester(cfg, tstesting.NewStubSource(4))

	tester.Layout(graphics.Size{Width: 50, Height: 100})
	tester.Layout(viewport)
	tester.Pump()

	assert.Equal(t, 100.0, tester.View.ContentOffset())
	assert.Equal(t, 3, tester.View.CacheLen())
}

func TestLayout_RelayoutKeepsCurrentPage(t *testing.T) {
	tester := newReadyTester(t, tabscroll.DefaultConfig(), 8)
	tester.View.ChangePage(4, false)

	tester.Layout(graphics.Size{Width: 200, Height: 300})
	tester.Pump()

	assert.Equal(t, 4, tester.View.CurrentIndex())
	assert.Equal(t, 800.0, tester.View.ContentOffset())
	frame, ok := tester.View.ContentFrame(4)
	require.True(t, ok)
	assert.Equal(t, graphics.RectFromLTWH(800, 0, 200, 300-tabHeight), frame)
}

func TestReloadData_ClampsCurrentPage(t *testing.T) {
	tester := newReadyTester(t, tabscroll.DefaultConfig(), 8)
	v := tester.View
	v.ChangePage(5, false)
	page5 := tester.Source.Pages(5)[0]
	tester.Recorder.Reset()

	tester.Source.SetTitles("x", "y", "z")
	v.ReloadData()

	assert.Equal(t, tabscroll.StateReady, v.State(), "reload does not defer")
	assert.Equal(t, 3, v.PageCount())
	assert.Equal(t, 2, v.CurrentIndex())
	assert.Equal(t, []int{1, 2}, v.Materialized())
	assert.Len(t, v.TabFrames(), 3)
	assert.False(t, page5.Attached())
	assert.Empty(t, tester.Recorder.Changed())
}

func TestReloadData_RequeriesContent(t *testing.T) {
	tester := newReadyTester(t, tabscroll.DefaultConfig(), 8)

	tester.View.ReloadData()

	assert.Equal(t, 2, tester.Source.Requests(0))
	assert.Equal(t, 0, tester.View.CurrentIndex())
}

func TestNoDataSourceIsInert(t *testing.T) {
	tester := tstesting.NewTester(tabscroll.DefaultConfig(), nil)
	v := tester.View

	assert.NotPanics(t, func() {
		v.Layout(viewport)
		tester.Settle()
		v.ChangePage(0, true)
		v.TapTab(0)
		v.TapTabStrip(10)
		v.BeginDrag(tabscroll.RegionContent)
		v.DragBy(tabscroll.RegionContent, 20)
		v.EndDrag(tabscroll.RegionContent, 100)
		v.ReloadData()
	})
	assert.Equal(t, tabscroll.StateUninitialized, v.State())
	assert.Equal(t, -1, v.CurrentIndex())
	_, ok := v.ArrowIndicatorFrame()
	assert.False(t, ok)
}

func TestZeroPagesIsInert(t *testing.T) {
	tester := tstesting.NewTester(tabscroll.DefaultConfig(), tstesting.NewStubSource(0))
	tester.Layout(viewport)
	tester.Settle()

	assert.Equal(t, tabscroll.StateUninitialized, tester.View.State())
	assert.Zero(t, tester.View.PageCount())
	assert.Empty(t, tester.View.Materialized())
}

func TestSetDataSource_LaysOutAgain(t *testing.T) {
	tester := tstesting.NewTester(tabscroll.DefaultConfig(), nil)
	tester.Layout(viewport)
	tester.Pump()
	require.Equal(t, tabscroll.StateUninitialized, tester.View.State())

	tester.View.SetDataSource(tstesting.NewStubSource(3))
	tester.Pump()

	assert.Equal(t, tabscroll.StateReady, tester.View.State())
	assert.Equal(t, 3, tester.View.PageCount())
}

func TestDataSourceFaultsAreReported(t *testing.T) {
	source := tstesting.NewStubSource(8)
	source.NilContent[1] = true
	source.PanicContent[2] = true
	cfg := tabscroll.DefaultConfig()
	cfg.DefaultPage = 1
	tester := tstesting.NewTester(cfg, source)
	tester.Layout(viewport)
	tester.Pump()

	assert.Equal(t, []int{0}, tester.View.Materialized())
	errs := tester.Recorder.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, errors.KindDataSource, errs[0].Kind)
	assert.Equal(t, 1, errs[0].Index)
	assert.Equal(t, errors.KindPanic, errs[1].Kind)
	assert.Equal(t, 2, errs[1].Index)

	source.NilContent[1] = false
	tester.View.ChangePage(0, false)
	tester.View.ChangePage(1, false)
	assert.Contains(t, tester.View.Materialized(), 1)
	assert.Equal(t, 2, source.Requests(1))
}

func TestMissingTabsAreReported(t *testing.T) {
	source := tstesting.NewStubSource(6)
	source.NilTab[2] = true
	source.PanicTab[4] = true
	tester := tstesting.NewTester(tabscroll.DefaultConfig(), source)
	tester.Layout(viewport)
	tester.Pump()
	v := tester.View

	require.Equal(t, tabscroll.StateReady, v.State())
	errs := tester.Recorder.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, errors.KindDataSource, errs[0].Kind)
	assert.Equal(t, 2, errs[0].Index)
	assert.Equal(t, errors.KindPanic, errs[1].Kind)
	assert.Equal(t, 4, errs[1].Index)
	assert.Empty(t, tester.Recorder.Changed())
	assert.Empty(t, tester.Recorder.Scrolled())

	tabs := v.Tabs()
	assert.Nil(t, tabs[2])
	assert.Nil(t, tabs[4])
	assert.Len(t, v.TabRegion().Children(), 4)

	v.ChangePage(2, true)
	tester.Settle()

	assert.Equal(t, 2, v.CurrentIndex())
	assert.Equal(t, 200.0, v.ContentOffset())
	assert.InDelta(t, centerOf(2), v.TabOffset(), 1e-9)
	assert.Equal(t, []int{2}, tester.Recorder.Changed())
	assert.Equal(t, []int{1, 2, 3}, v.Materialized())
}

func TestLayout_WithoutPagesDropsPendingCompletion(t *testing.T) {
	source := tstesting.NewStubSource(8)
	tester := tstesting.NewTester(tabscroll.DefaultConfig(), source)
	tester.Layout(viewport)
	tester.Pump()
	v := tester.View
	called := false

	v.ChangePageWithCompletion(5, true, func() { called = true })
	tester.Frames(2)
	source.SetTitles()
	v.ReloadData()
	require.Equal(t, tabscroll.StateUninitialized, v.State())

	v.SetDataSource(tstesting.NewStubSource(8))
	tester.Pump()
	tester.Drag(tabscroll.RegionContent, 60, 0)
	tester.Settle()

	assert.Equal(t, 1, v.CurrentIndex())
	assert.False(t, called)
}

func TestInvalidConfigIsReportedAndRepaired(t *testing.T) {
	cfg := tabscroll.DefaultConfig()
	cfg.DefaultPage = -3
	tester := tstesting.NewTester(cfg, tstesting.NewStubSource(4))

	errs := tester.Recorder.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, errors.KindConfig, errs[0].Kind)
	assert.Equal(t, 0, tester.View.Config().DefaultPage)
}

func TestFrames(t *testing.T) {
	tester := newReadyTester(t, tabscroll.DefaultConfig(), 4)
	v := tester.View

	assert.Equal(t, graphics.RectFromLTWH(0, 0, 100, tabHeight), v.TabSectionFrame())
	assert.Equal(t, graphics.RectFromLTWH(0, tabHeight, 100, 200-tabHeight), v.ContentSectionFrame())

	frames := v.TabFrames()
	require.Len(t, frames, 4)
	assert.Equal(t, graphics.RectFromLTWH(2*tabWidth, 0, tabWidth, tabHeight), frames[2])

	page, ok := v.ContentFrame(1)
	require.True(t, ok)
	assert.Equal(t, graphics.RectFromLTWH(100, 0, 100, 200-tabHeight), page)
	_, ok = v.ContentFrame(3)
	assert.False(t, ok)

	arrow, ok := v.ArrowIndicatorFrame()
	require.True(t, ok)
	assert.Equal(t, graphics.RectFromLTWH(35, tabHeight, 30, 10), arrow)
}

func TestFixedTabSectionHeight(t *testing.T) {
	cfg := tabscroll.DefaultConfig()
	cfg.TabSectionHeight = 40
	cfg.ArrowIndicator = false
	tester := newReadyTester(t, cfg, 3)

	assert.Equal(t, 40.0, tester.View.TabSectionFrame().Height())
	assert.Equal(t, 40.0, tester.View.Tabs()[0].Frame().Height())
	_, ok := tester.View.ArrowIndicatorFrame()
	assert.False(t, ok)
}

func TestMetricsAreRecorded(t *testing.T) {
	m, err := tabscroll.NewMetrics(prometheus.NewRegistry(), "view")
	require.NoError(t, err)
	cfg := tabscroll.DefaultConfig()
	cfg.DefaultPage = 1
	tester := newReadyTester(t, cfg, 8, tabscroll.WithMetrics(m))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.Materialized))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.CachedPages))

	tester.View.ChangePage(5, true)
	tester.Settle()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.PageChanges))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.CachedPages))
	assert.GreaterOrEqual(t, testutil.ToFloat64(m.Evicted), 3.0)
}

func TestInstancesAreIndependent(t *testing.T) {
	a := newReadyTester(t, tabscroll.DefaultConfig(), 4)
	b := newReadyTester(t, tabscroll.DefaultConfig(), 4)

	a.View.ChangePage(3, false)

	assert.NotEqual(t, a.View.ID(), b.View.ID())
	assert.Len(t, a.View.ID(), 26)
	assert.Equal(t, 0, b.View.CurrentIndex())
	assert.Empty(t, b.Recorder.Changed())
}
