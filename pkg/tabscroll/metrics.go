package tabscroll

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts page lifecycle activity. A nil *Metrics records nothing.
type Metrics struct {
	Materialized prometheus.Counter
	Evicted      prometheus.Counter
	CacheHits    prometheus.Counter
	PageChanges  prometheus.Counter
	CachedPages  prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg. The
// collectors carry a widget const label so several widgets can share a
// registry. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer, widget string) (*Metrics, error) {
	labels := prometheus.Labels{"widget": widget}
	m := &Metrics{
		Materialized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "tabscroll",
			Name:        "materialized_total",
			Help:        "Content pages requested from the data source and attached.",
			ConstLabels: labels,
		}),
		Evicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "tabscroll",
			Name:        "evicted_total",
			Help:        "Content pages detached to honor the cache limit.",
			ConstLabels: labels,
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "tabscroll",
			Name:        "cache_hits_total",
			Help:        "Window pages served from the page cache.",
			ConstLabels: labels,
		}),
		PageChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "tabscroll",
			Name:        "page_changes_total",
			Help:        "Settled page changes reported to the host.",
			ConstLabels: labels,
		}),
		CachedPages: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "tabscroll",
			Name:        "cached_pages",
			Help:        "Content pages currently cached.",
			ConstLabels: labels,
		}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.Materialized, m.Evicted, m.CacheHits, m.PageChanges, m.CachedPages} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func (m *Metrics) materialized() {
	if m != nil {
		m.Materialized.Inc()
	}
}

func (m *Metrics) evicted(n int) {
	if m != nil && n > 0 {
		m.Evicted.Add(float64(n))
	}
}

func (m *Metrics) cacheHit() {
	if m != nil {
		m.CacheHits.Inc()
	}
}

func (m *Metrics) pageChanged() {
	if m != nil {
		m.PageChanges.Inc()
	}
}

func (m *Metrics) setCached(n int) {
	if m != nil {
		m.CachedPages.Set(float64(n))
	}
}
