package testing

import (
	"fmt"
	"sync"

	"github.com/go-drift/tabscroll/pkg/graphics"
	"github.com/go-drift/tabscroll/pkg/tabscroll"
	"github.com/go-drift/tabscroll/pkg/widgets"
)

// StubSource is a tabscroll.DataSource with labelled tabs and box pages.
// It counts content requests and can be told to misbehave per index.
type StubSource struct {
	mu sync.Mutex

	// Titles are the tab labels; their count is the page count.
	Titles []string
	// Widths, when set, make the source a tabscroll.TabWidthProvider.
	Widths []float64
	// NilContent lists pages whose ContentView returns nil.
	NilContent map[int]bool
	// PanicContent lists pages whose ContentView panics.
	PanicContent map[int]bool
	// NilTab lists pages whose TabView returns nil.
	NilTab map[int]bool
	// PanicTab lists pages whose TabView panics.
	PanicTab map[int]bool

	requests map[int]int
	pages    map[int][]*widgets.Box
}

// NewStubSource creates a source with count pages titled "Page N".
func NewStubSource(count int) *StubSource {
	titles := make([]string, count)
	for i := range titles {
		titles[i] = fmt.Sprintf("Page %d", i)
	}
	return NewStubSourceWithTitles(titles...)
}

// NewStubSourceWithTitles creates a source with one page per title.
func NewStubSourceWithTitles(titles ...string) *StubSource {
	return &StubSource{
		Titles:       titles,
		NilContent:   map[int]bool{},
		PanicContent: map[int]bool{},
		NilTab:       map[int]bool{},
		PanicTab:     map[int]bool{},
		requests:     map[int]int{},
		pages:        map[int][]*widgets.Box{},
	}
}

// PageCount implements tabscroll.DataSource.
func (s *StubSource) PageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Titles)
}

// TabView implements tabscroll.DataSource.
func (s *StubSource) TabView(index int) tabscroll.Positionable {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PanicTab[index] {
		panic(fmt.Sprintf("tab %d exploded", index))
	}
	if s.NilTab[index] {
		return nil
	}
	return widgets.NewLabel(s.Titles[index])
}

// ContentView implements tabscroll.DataSource. Every call returns a new box.
func (s *StubSource) ContentView(index int) tabscroll.Positionable {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[index]++
	if s.PanicContent[index] {
		panic(fmt.Sprintf("content %d exploded", index))
	}
	if s.NilContent[index] {
		return nil
	}
	page := widgets.NewBox(graphics.RGB(uint8(index*40), 0x80, 0xC0))
	s.pages[index] = append(s.pages[index], page)
	return page
}

// TabWidth implements tabscroll.TabWidthProvider when Widths is set;
// otherwise tabs are measured.
func (s *StubSource) TabWidth(index int) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < len(s.Widths) {
		return s.Widths[index]
	}
	return widgets.NewLabel(s.Titles[index]).IntrinsicSize().Width
}

// Requests returns how many times ContentView was called for index.
func (s *StubSource) Requests(index int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[index]
}

// Pages returns every content box handed out for index, oldest first.
func (s *StubSource) Pages(index int) []*widgets.Box {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*widgets.Box(nil), s.pages[index]...)
}

// SetTitles replaces the page set. Call View.ReloadData afterwards.
func (s *StubSource) SetTitles(titles ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Titles = titles
}
