// Package tabscroll implements a tab strip synchronized with a horizontally
// paged content area.
//
// A [View] owns two scroll regions. Dragging or animating either one moves
// the other in lockstep through a [Synchronizer]; content pages are
// materialized lazily around the current page by a [LifecycleManager] and
// held in a bounded [PageCache].
//
// Views run on a [platform.Loop]. Layout is finished on the next loop turn,
// so hosts must pump the loop:
//
//	loop := platform.NewLoop(nil)
//	v := tabscroll.New(tabscroll.DefaultConfig(),
//		tabscroll.WithLoop(loop),
//		tabscroll.WithDataSource(pages),
//		tabscroll.WithCallbacks(tabscroll.Callbacks{
//			OnPageChanged: func(i int) { log.Println("page", i) },
//		}),
//	)
//	v.Layout(graphics.Size{Width: 320, Height: 480})
//	loop.Pump()
//	v.ChangePage(2, true)
//
// No operation on a View returns an error. Invalid indices are ignored and
// data source faults are reported to the instance's error handler.
package tabscroll

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/go-drift/tabscroll/pkg/errors"
	"github.com/go-drift/tabscroll/pkg/graphics"
	"github.com/go-drift/tabscroll/pkg/platform"
	"github.com/go-drift/tabscroll/pkg/scroll"
)

const (
	// pageScrollDuration is the length of an animated page change.
	pageScrollDuration = 300 * time.Millisecond
	// defaultTabHeight is used when an automatic tab height measures zero.
	defaultTabHeight = 60

	arrowWidth  = 30
	arrowHeight = 10
)

// State is the view's layout state.
type State int

const (
	// StateUninitialized means there is nothing to show: no data source, no
	// pages, or no size.
	StateUninitialized State = iota
	// StateLayingOut means tabs are built and the first placement is queued
	// on the loop.
	StateLayingOut
	// StateReady is the steady state.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLayingOut:
		return "laying-out"
	case StateReady:
		return "ready"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Option configures a View.
type Option func(*View)

// WithDataSource sets the page provider.
func WithDataSource(source DataSource) Option {
	return func(v *View) { v.source = source }
}

// WithCallbacks sets the page notifications.
func WithCallbacks(callbacks Callbacks) Option {
	return func(v *View) { v.callbacks = callbacks }
}

// WithLoop runs the view on loop. Without it the view creates a private
// loop on wall time, reachable through Loop.
func WithLoop(loop *platform.Loop) Option {
	return func(v *View) { v.loop = loop }
}

// WithErrorHandler receives data source faults. The default logs them.
func WithErrorHandler(handler errors.Handler) Option {
	return func(v *View) { v.reporter.Handler = handler }
}

// WithMetrics records lifecycle activity on m.
func WithMetrics(m *Metrics) Option {
	return func(v *View) { v.metrics = m }
}

// WithLogger sets the base logger. The view adds a widget attribute.
func WithLogger(logger *slog.Logger) Option {
	return func(v *View) { v.logger = logger }
}

// View is the tab scroll controller.
type View struct {
	id        string
	cfg       Config
	source    DataSource
	callbacks Callbacks
	loop      *platform.Loop
	logger    *slog.Logger
	reporter  errors.Reporter
	metrics   *Metrics

	tab       *Region
	content   *Region
	cache     *PageCache
	lifecycle *LifecycleManager
	sync      Synchronizer
	gradient  tabGradient

	state     State
	started   bool
	layoutGen int
	size      graphics.Size
	pageCount int
	tabs      []Positionable
	tabWidths []float64
	tabHeight float64

	prevPageIndex   int
	prevScrollIndex int
	pending         func()
	moveSeq         int
	tapping         bool
}

// New creates a view. Invalid config values are reported and replaced by
// their defaults.
func New(cfg Config, opts ...Option) *View {
	v := &View{
		id:              ulid.Make().String(),
		prevPageIndex:   -1,
		prevScrollIndex: -1,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.logger == nil {
		v.logger = slog.Default()
	}
	v.logger = v.logger.With("widget", v.id)
	if v.reporter.Handler == nil {
		v.reporter.Handler = &errors.LogHandler{Logger: v.logger}
	}
	if v.loop == nil {
		v.loop = platform.NewLoop(nil)
	}
	v.cfg = v.sanitize(cfg)

	frames := v.loop.Frames()
	v.tab = NewRegion(RegionTab, scroll.NewPosition(frames))
	v.content = NewRegion(RegionContent, scroll.NewPosition(frames))
	v.tab.position.Handlers = scroll.Handlers{
		Scroll:          func() { v.regionScrolled(RegionTab) },
		EndDrag:         v.dragEnded,
		EndDecelerating: v.settle,
	}
	v.content.position.Handlers = scroll.Handlers{
		Scroll:          func() { v.regionScrolled(RegionContent) },
		EndDrag:         v.dragEnded,
		EndDecelerating: v.settle,
		EndAnimation:    v.contentAnimationEnded,
	}
	v.cache = NewPageCache()
	v.lifecycle = NewLifecycleManager(v.cache, v.content, v.reporter, v.metrics)
	v.lifecycle.Limit = v.cfg.CachePageLimit
	return v
}

func (v *View) sanitize(cfg Config) Config {
	if err := cfg.Validate(); err != nil {
		v.reporter.Report(&errors.Error{
			Op:    "tabscroll.New",
			Kind:  errors.KindConfig,
			Index: errors.NoIndex,
			Err:   err,
		})
		defaults := DefaultConfig()
		if cfg.DefaultPage < 0 {
			cfg.DefaultPage = defaults.DefaultPage
		}
		if cfg.TabSectionHeight < 0 && !cfg.TabSectionHeight.IsAuto() {
			cfg.TabSectionHeight = defaults.TabSectionHeight
		}
	}
	return cfg
}

// ID returns the instance's unique identifier.
func (v *View) ID() string {
	return v.id
}

// Config returns the effective configuration.
func (v *View) Config() Config {
	return v.cfg
}

// Loop returns the loop the view runs on.
func (v *View) Loop() *platform.Loop {
	return v.loop
}

// State returns the layout state.
func (v *View) State() State {
	return v.state
}

// SetDataSource replaces the page provider. A view that already has a size
// lays out again.
func (v *View) SetDataSource(source DataSource) {
	v.source = source
	if !v.size.IsEmpty() {
		v.Layout(v.size)
	}
}

// SetCallbacks replaces the page notifications.
func (v *View) SetCallbacks(callbacks Callbacks) {
	v.callbacks = callbacks
}

// Layout sizes the view. Tabs are rebuilt immediately; page placement and
// the first lifecycle pass run on the next loop turn. The first layout
// shows Config.DefaultPage, later ones keep the current page.
func (v *View) Layout(size graphics.Size) {
	index := v.placementIndex()
	v.size = size
	if !v.rebuild() {
		return
	}
	gen := v.layoutGen
	v.loop.Post(func() {
		if gen != v.layoutGen {
			return
		}
		v.place(index)
	})
}

// ReloadData re-queries the data source and lays out synchronously. The
// current page is kept, clamped to the new page count.
func (v *View) ReloadData() {
	index := v.placementIndex()
	if !v.rebuild() {
		return
	}
	v.place(index)
}

func (v *View) placementIndex() int {
	if v.started && v.pageCount > 0 {
		return v.resolvedIndex()
	}
	return v.cfg.DefaultPage
}

// rebuild builds the tab strip and region geometry. It reports whether
// there is anything to place.
func (v *View) rebuild() bool {
	v.layoutGen++
	v.stopScrolling()
	v.lifecycle.Clear()
	v.tab.DetachAll()
	v.gradient.dispose()
	v.tabs, v.tabWidths = nil, nil
	v.pageCount = 0
	v.state = StateUninitialized

	if v.source == nil {
		v.pending = nil
		return false
	}
	count := 0
	v.reporter.Guard("tabscroll.PageCount", errors.NoIndex, func() {
		count = v.source.PageCount()
	})
	if count <= 0 {
		v.pending = nil
		return false
	}
	if v.size.IsEmpty() {
		v.reporter.Report(&errors.Error{
			Op:    "tabscroll.Layout",
			Kind:  errors.KindLayout,
			Index: errors.NoIndex,
			Err:   fmt.Errorf("cannot lay out %d pages in %vx%v", count, v.size.Width, v.size.Height),
		})
		v.pending = nil
		return false
	}

	v.pageCount = count
	v.buildTabs(count)

	w := v.size.Width
	contentHeight := max(v.size.Height-v.tabHeight, 0)
	v.tab.setFrame(graphics.RectFromLTWH(0, 0, w, v.tabHeight))
	v.content.setFrame(graphics.RectFromLTWH(0, v.tabHeight, w, contentHeight))

	insets := graphics.EdgeInsets{
		Left:  w/2 - v.tabWidths[0]/2,
		Right: w/2 - v.tabWidths[count-1]/2,
	}
	v.tab.position.SetExtents(w, TabsBefore(count, v.tabWidths), insets)
	v.content.position.SetExtents(w, w*float64(count), graphics.EdgeInsets{})
	v.content.position.SetPaging(v.cfg.PagingEnabled, w)
	v.sync.configure(w, v.tabWidths, insets.Left)
	v.gradient.reset(v.loop.Frames(), v.tabs)

	v.state = StateLayingOut
	return true
}

func (v *View) buildTabs(count int) {
	v.tabs = make([]Positionable, count)
	v.tabWidths = make([]float64, count)
	heights := make([]float64, count)
	widths, _ := v.source.(TabWidthProvider)

	for i := range count {
		var tab Positionable
		if v.reporter.Guard("tabscroll.TabView", i, func() { tab = v.source.TabView(i) }) && isNil(tab) {
			v.reporter.Report(&errors.Error{
				Op:    "tabscroll.TabView",
				Kind:  errors.KindDataSource,
				Index: i,
				Err:   fmt.Errorf("data source returned no tab view"),
			})
			tab = nil
		}
		v.tabs[i] = tab

		size := measure(tab)
		heights[i] = size.Height
		if widths != nil {
			v.reporter.Guard("tabscroll.TabWidth", i, func() { size.Width = widths.TabWidth(i) })
		}
		v.tabWidths[i] = max(size.Width, 0)
	}

	v.tabHeight = v.resolveTabHeight(heights)

	for i, tab := range v.tabs {
		if tab == nil {
			continue
		}
		tab.SetFrame(graphics.RectFromLTWH(TabsBefore(i, v.tabWidths), 0, v.tabWidths[i], v.tabHeight))
		v.tab.Attach(tab)
	}
}

func (v *View) resolveTabHeight(measured []float64) float64 {
	var h float64
	switch {
	case !v.cfg.TabSectionHeight.IsAuto():
		h = float64(v.cfg.TabSectionHeight)
	default:
		if p, ok := v.source.(TabHeightProvider); ok {
			v.reporter.Guard("tabscroll.TabHeight", errors.NoIndex, func() { h = p.TabHeight() })
		} else {
			h = slices.Max(measured)
		}
		if h <= 0 {
			h = defaultTabHeight
		}
	}
	return graphics.Clamp(h, 0, v.size.Height)
}

func measure(tab Positionable) graphics.Size {
	if tab == nil {
		return graphics.Size{}
	}
	if m, ok := tab.(Measurable); ok {
		if size := m.IntrinsicSize(); !size.IsEmpty() {
			return size
		}
	}
	return tab.Frame().Size()
}

// place finishes a layout at page index: both regions jump there, the
// gradient is applied without animation, and the first lifecycle pass
// runs. No callbacks fire.
func (v *View) place(index int) {
	index = graphics.ClampInt(index, 0, v.pageCount-1)
	v.sync.SetActive(RegionNone)
	v.sync.Place(index, v.tab.position, v.content.position)
	v.prevPageIndex = index
	v.prevScrollIndex = index
	if v.cfg.TabGradient {
		v.gradient.apply(index, false)
	}
	v.state = StateReady
	v.started = true
	v.runLifecycle()
	v.logger.Debug("tabscroll ready", "pages", v.pageCount, "index", index)
}

// ChangePage scrolls to page index. OnPageChanged fires at once if index
// differs from the last reported page. Out of range indices are ignored.
func (v *View) ChangePage(index int, animated bool) {
	v.changePage(index, animated, nil)
}

// ChangePageWithCompletion is ChangePage with a callback run when the
// scroll finishes. A later page change replaces a pending callback, which
// then never runs. Changes that do not animate complete before returning.
func (v *View) ChangePageWithCompletion(index int, animated bool, done func()) {
	v.changePage(index, animated, done)
}

func (v *View) changePage(index int, animated bool, done func()) {
	if !v.acceptIndex("ChangePage", index) {
		return
	}
	v.stopScrolling()
	v.pending = done
	v.goTo(index, animated)
}

// TapTab handles a tap on tab index. Taps that arrive while a previous tap
// is still scrolling are dropped.
func (v *View) TapTab(index int) {
	if !v.acceptIndex("TapTab", index) {
		return
	}
	if v.tapping {
		v.logger.Debug("tab tap dropped: previous tap still scrolling", "index", index)
		return
	}
	v.stopScrolling()
	v.tapping = true
	v.goTo(index, true)
}

// TapTabStrip handles a tap at x in tab strip viewport coordinates. A tap
// between tabs re-centers the current tab.
func (v *View) TapTabStrip(x float64) {
	if v.state != StateReady {
		return
	}
	index := TabAt(x+v.tab.Offset(), v.tabWidths)
	if index < 0 {
		index = v.resolvedIndex()
	}
	v.TapTab(index)
}

// StopScrolling halts all motion, pinning both regions where they are.
func (v *View) StopScrolling() {
	v.stopScrolling()
}

func (v *View) stopScrolling() {
	v.tab.position.CancelDrag()
	v.content.position.CancelDrag()
	v.tab.position.Stop()
	v.content.position.Stop()
	v.tapping = false
}

// BeginDrag starts a user drag on kind, which becomes the active region.
func (v *View) BeginDrag(kind RegionKind) {
	r := v.region(kind)
	if r == nil || v.state != StateReady {
		return
	}
	v.sync.SetActive(kind)
	v.stopScrolling()
	r.position.BeginDrag()
}

// DragBy moves the dragged region by delta offset units.
func (v *View) DragBy(kind RegionKind, delta float64) {
	if r := v.region(kind); r != nil && v.state == StateReady {
		r.position.DragBy(delta)
	}
}

// EndDrag releases a drag on kind with velocity in offset units per second.
func (v *View) EndDrag(kind RegionKind, velocity float64) {
	if r := v.region(kind); r != nil && v.state == StateReady {
		r.position.EndDrag(velocity)
	}
}

func (v *View) region(kind RegionKind) *Region {
	switch kind {
	case RegionTab:
		return v.tab
	case RegionContent:
		return v.content
	default:
		return nil
	}
}

func (v *View) acceptIndex(op string, index int) bool {
	if v.state != StateReady {
		v.logger.Debug("call ignored: view not ready", "op", op, "index", index, "state", v.state.String())
		return false
	}
	if index < 0 || index >= v.pageCount {
		v.logger.Debug("call ignored: index out of range", "op", op, "index", index, "pages", v.pageCount)
		return false
	}
	return true
}

// goTo makes content the active region, scrolls content to index, and then
// reports the page change. A page change issued from a callback while the
// scroll starts replaces this one, and index is then never reported.
func (v *View) goTo(index int, animated bool) {
	v.sync.SetActive(RegionContent)
	v.moveSeq++
	seq := v.moveSeq
	duration := time.Duration(0)
	if animated {
		duration = pageScrollDuration
	}
	v.content.position.AnimateTo(float64(index)*v.size.Width, duration)
	if seq != v.moveSeq || v.state != StateReady {
		return
	}
	v.notifyChanged(index)
}

func (v *View) notifyChanged(index int) {
	if index == v.prevPageIndex {
		return
	}
	v.prevPageIndex = index
	v.metrics.pageChanged()
	v.callbacks.pageChanged(index)
}

func (v *View) regionScrolled(kind RegionKind) {
	if v.state != StateReady {
		return
	}
	if !v.sync.Propagate(kind, v.tab.position, v.content.position) {
		return
	}
	index := v.resolvedIndex()
	if v.cfg.TabGradient {
		v.gradient.apply(index, true)
	}
	if index != v.prevScrollIndex {
		v.prevScrollIndex = index
		v.runLifecycle()
		v.callbacks.pageScrolled(index)
	}
}

func (v *View) dragEnded(decelerate bool) {
	if !decelerate {
		v.settle()
	}
}

// settle runs when user motion stops. With paging the content snaps to the
// resolved page; either way the page change is reported.
func (v *View) settle() {
	if v.state != StateReady {
		return
	}
	index := v.resolvedIndex()
	if v.cfg.PagingEnabled {
		v.stopScrolling()
		v.goTo(index, true)
		return
	}
	v.notifyChanged(index)
	v.runLifecycle()
}

func (v *View) contentAnimationEnded() {
	v.tapping = false
	if v.state != StateReady {
		return
	}
	v.runLifecycle()
	if done := v.pending; done != nil {
		v.pending = nil
		done()
	}
}

func (v *View) runLifecycle() {
	v.lifecycle.Pass(v.source, v.resolvedIndex(), v.pageCount, v.pageSize())
}

func (v *View) pageSize() graphics.Size {
	return graphics.Size{Width: v.size.Width, Height: v.content.frame.Height()}
}

func (v *View) resolvedIndex() int {
	return ContentIndex(v.content.Offset(), v.size.Width, v.pageCount)
}

// CurrentIndex returns the page nearest the content offset, or -1 until the
// view is ready.
func (v *View) CurrentIndex() int {
	if v.state != StateReady {
		return -1
	}
	return v.resolvedIndex()
}

// PageCount returns the number of pages from the last layout.
func (v *View) PageCount() int {
	return v.pageCount
}

// TabOffset returns the tab strip scroll offset.
func (v *View) TabOffset() float64 {
	return v.tab.Offset()
}

// ContentOffset returns the content scroll offset.
func (v *View) ContentOffset() float64 {
	return v.content.Offset()
}

// TabRegion returns the tab strip region.
func (v *View) TabRegion() *Region {
	return v.tab
}

// ContentRegion returns the content region.
func (v *View) ContentRegion() *Region {
	return v.content
}

// Tabs returns the tab handles from the last layout. Slots whose tab the
// data source failed to provide are nil.
func (v *View) Tabs() []Positionable {
	return slices.Clone(v.tabs)
}

// Materialized returns the indices of attached content pages in ascending
// order.
func (v *View) Materialized() []int {
	indices := v.cache.Indices()
	slices.Sort(indices)
	return indices
}

// CacheLen returns the number of cached content pages.
func (v *View) CacheLen() int {
	return v.cache.Len()
}

// TabFrames returns every tab's frame in tab strip content coordinates.
func (v *View) TabFrames() []graphics.Rect {
	frames := make([]graphics.Rect, len(v.tabWidths))
	for i, w := range v.tabWidths {
		frames[i] = graphics.RectFromLTWH(TabsBefore(i, v.tabWidths), 0, w, v.tabHeight)
	}
	return frames
}

// ContentFrame returns the frame of materialized page index in content
// coordinates.
func (v *View) ContentFrame(index int) (graphics.Rect, bool) {
	page, ok := v.cache.Get(index)
	if !ok {
		return graphics.Rect{}, false
	}
	return page.Frame(), true
}

// TabSectionFrame returns the tab strip frame in view coordinates.
func (v *View) TabSectionFrame() graphics.Rect {
	return v.tab.Frame()
}

// ContentSectionFrame returns the content area frame in view coordinates.
func (v *View) ContentSectionFrame() graphics.Rect {
	return v.content.Frame()
}

// ArrowIndicatorFrame returns the frame of the marker under the centered
// tab. ok is false when the indicator is disabled or nothing is laid out.
func (v *View) ArrowIndicatorFrame() (graphics.Rect, bool) {
	if !v.cfg.ArrowIndicator || v.state == StateUninitialized {
		return graphics.Rect{}, false
	}
	w := min(float64(arrowWidth), v.size.Width)
	h := min(float64(arrowHeight), v.content.frame.Height())
	return graphics.RectFromLTWH(v.size.Width/2-w/2, v.tabHeight, w, h), true
}

// TabAlpha returns the gradient opacity targeted for tab index, 1 when the
// gradient is off.
func (v *View) TabAlpha(index int) float64 {
	if !v.cfg.TabGradient {
		return 1
	}
	return v.gradient.alpha(index)
}

// Dispose stops motion and detaches everything. The view returns to
// StateUninitialized.
func (v *View) Dispose() {
	v.layoutGen++
	v.stopScrolling()
	v.lifecycle.Clear()
	v.tab.DetachAll()
	v.gradient.dispose()
	v.pending = nil
	v.pageCount = 0
	v.state = StateUninitialized
}
