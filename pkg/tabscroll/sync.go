package tabscroll

import "github.com/go-drift/tabscroll/pkg/scroll"

// Synchronizer mirrors scroll offsets between the tab strip and the content
// area. Content pages are one viewport wide while tabs vary in width, so the
// mapping is affine per page: around page k the content moves
// viewport/tabWidth(k) times faster than the tab strip.
type Synchronizer struct {
	active    RegionKind
	syncing   bool
	viewport  float64
	tabWidths []float64
	insetLeft float64
}

func (s *Synchronizer) configure(viewport float64, tabWidths []float64, insetLeft float64) {
	s.viewport = viewport
	s.tabWidths = tabWidths
	s.insetLeft = insetLeft
}

// Active returns the region whose offset is authoritative.
func (s *Synchronizer) Active() RegionKind {
	return s.active
}

// SetActive makes kind the authoritative region.
func (s *Synchronizer) SetActive(kind RegionKind) {
	s.active = kind
}

// ContentForTab maps a tab strip offset to the matching content offset.
func (s *Synchronizer) ContentForTab(tab float64) float64 {
	k := TabIndex(tab, s.insetLeft, s.tabWidths)
	if k < 0 {
		return 0
	}
	w := s.viewport
	page := float64(k) * w
	tw := s.tabWidths[k]
	if tw <= 0 {
		return page
	}
	return (tab+w/2-TabsBefore(k, s.tabWidths))*w/tw + page - w/2
}

// TabForContent maps a content offset to the matching tab strip offset.
func (s *Synchronizer) TabForContent(content float64) float64 {
	k := ContentIndex(content, s.viewport, len(s.tabWidths))
	if k < 0 {
		return 0
	}
	w := s.viewport
	tw := s.tabWidths[k]
	if tw <= 0 {
		return TabCenterOffset(k, w, s.tabWidths)
	}
	return (content+w/2-float64(k)*w)*tw/w + TabsBefore(k, s.tabWidths) - w/2
}

// Propagate mirrors source into the other region when source is the active
// region. Offsets assigned here fire Scroll on the other position; those
// re-entrant notifications are swallowed. It reports whether the change
// came from the active region.
func (s *Synchronizer) Propagate(source RegionKind, tab, content *scroll.Position) bool {
	if s.syncing || source != s.active {
		return false
	}
	s.syncing = true
	defer func() { s.syncing = false }()

	switch source {
	case RegionTab:
		content.SetOffset(s.ContentForTab(tab.Offset()))
	case RegionContent:
		tab.SetOffset(s.TabForContent(content.Offset()))
	}
	return true
}

// Place jumps both regions to page index without treating either move as
// user motion.
func (s *Synchronizer) Place(index int, tab, content *scroll.Position) {
	s.syncing = true
	defer func() { s.syncing = false }()

	content.JumpTo(float64(index) * s.viewport)
	tab.JumpTo(TabCenterOffset(index, s.viewport, s.tabWidths))
}
