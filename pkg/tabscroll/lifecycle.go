package tabscroll

import (
	stderrors "errors"

	"github.com/go-drift/tabscroll/pkg/errors"
	"github.com/go-drift/tabscroll/pkg/graphics"
)

// WindowRadius is the number of pages on each side of the current page that
// a lifecycle pass keeps materialized.
const WindowRadius = 1

var errNilContent = stderrors.New("data source returned no content view")

// Window returns the inclusive page range materialized around current,
// clamped to [0, pageCount). ok is false when there are no pages.
func Window(current, pageCount int) (first, last int, ok bool) {
	if pageCount <= 0 {
		return 0, 0, false
	}
	current = graphics.ClampInt(current, 0, pageCount-1)
	first = max(current-WindowRadius, 0)
	last = min(current+WindowRadius, pageCount-1)
	return first, last, true
}

// LifecycleManager materializes content pages into the content region and
// keeps the page cache within its limit.
type LifecycleManager struct {
	cache    *PageCache
	region   *Region
	reporter errors.Reporter
	metrics  *Metrics

	// Limit is the configured cache page limit, resolved per pass with
	// EffectiveLimit.
	Limit int
}

// NewLifecycleManager creates a manager that attaches pages to region.
func NewLifecycleManager(cache *PageCache, region *Region, reporter errors.Reporter, metrics *Metrics) *LifecycleManager {
	return &LifecycleManager{
		cache:    cache,
		region:   region,
		reporter: reporter,
		metrics:  metrics,
	}
}

// Pass materializes the window around current. Cached pages in the window
// are touched, missing ones are requested from source, framed at
// index*page.Width and attached. Pages outside the window stay until the
// cache limit evicts them.
func (m *LifecycleManager) Pass(source DataSource, current, pageCount int, page graphics.Size) {
	first, last, ok := Window(current, pageCount)
	if !ok || source == nil {
		return
	}
	for index := first; index <= last; index++ {
		if _, cached := m.cache.Get(index); cached {
			m.cache.Touch(index)
			m.metrics.cacheHit()
			continue
		}
		m.materialize(source, index, page)
	}
	evicted := m.cache.Enforce(EffectiveLimit(m.Limit, pageCount), func(_ int, v Positionable) {
		m.region.Detach(v)
	})
	m.metrics.evicted(evicted)
	m.metrics.setCached(m.cache.Len())
}

// Clear detaches and forgets every cached page.
func (m *LifecycleManager) Clear() {
	m.cache.Purge(func(_ int, v Positionable) {
		m.region.Detach(v)
	})
	m.metrics.setCached(0)
}

func (m *LifecycleManager) materialize(source DataSource, index int, page graphics.Size) {
	var v Positionable
	if !m.reporter.Guard("tabscroll.ContentView", index, func() {
		v = source.ContentView(index)
	}) {
		return
	}
	if isNil(v) {
		m.reporter.Report(&errors.Error{
			Op:    "tabscroll.ContentView",
			Kind:  errors.KindDataSource,
			Index: index,
			Err:   errNilContent,
		})
		return
	}
	v.SetFrame(graphics.RectFromLTWH(float64(index)*page.Width, 0, page.Width, page.Height))
	m.region.Attach(v)
	m.cache.Put(index, v)
	m.metrics.materialized()
}
