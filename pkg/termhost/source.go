package termhost

import (
	"strings"

	"github.com/go-drift/tabscroll/pkg/graphics"
	"github.com/go-drift/tabscroll/pkg/tabscroll"
)

// Page is one tab title and the text shown under it.
type Page struct {
	Title string
	Body  string
}

// DefaultPalette tints content pages in turn.
var DefaultPalette = []graphics.Color{
	graphics.RGB(0xF4, 0xF1, 0xDE),
	graphics.RGB(0xE0, 0xEC, 0xF8),
	graphics.RGB(0xE6, 0xF4, 0xEA),
	graphics.RGB(0xFC, 0xE8, 0xE6),
}

// TextSource serves Pages as Cells. Every ContentView call builds a new
// cell, so evicted pages are rebuilt from Pages when they come back.
type TextSource struct {
	Pages   []Page
	Palette []graphics.Color
}

// NewTextSource creates a source over pages tinted with DefaultPalette.
func NewTextSource(pages ...Page) *TextSource {
	return &TextSource{Pages: pages, Palette: DefaultPalette}
}

// PageCount implements tabscroll.DataSource.
func (s *TextSource) PageCount() int {
	return len(s.Pages)
}

// TabView implements tabscroll.DataSource.
func (s *TextSource) TabView(index int) tabscroll.Positionable {
	if index < 0 || index >= len(s.Pages) {
		return nil
	}
	return NewCell(s.Pages[index].Title)
}

// ContentView implements tabscroll.DataSource.
func (s *TextSource) ContentView(index int) tabscroll.Positionable {
	if index < 0 || index >= len(s.Pages) {
		return nil
	}
	page := s.Pages[index]
	cell := NewCell(page.Title, strings.Split(page.Body, "\n")...)
	if len(s.Palette) > 0 {
		cell.Color = s.Palette[index%len(s.Palette)]
	}
	return cell
}

// TabHeight implements tabscroll.TabHeightProvider: the strip is one row.
func (s *TextSource) TabHeight() float64 {
	return 1
}

var (
	_ tabscroll.DataSource        = (*TextSource)(nil)
	_ tabscroll.TabHeightProvider = (*TextSource)(nil)
)
