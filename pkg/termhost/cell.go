// Package termhost runs a tab scroll view inside a bubbletea program.
//
// Layout units are terminal cells: a tab is as wide as its title in display
// columns plus padding, the tab strip is one row high, and a content page is
// as wide as the terminal. Model feeds window sizes, input and frame ticks to
// the view and renders it with lipgloss.
package termhost

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/go-drift/tabscroll/pkg/graphics"
	"github.com/go-drift/tabscroll/pkg/tabscroll"
	"github.com/go-drift/tabscroll/pkg/widgets"
)

// cellPadding is the number of blank columns on each side of a tab title.
const cellPadding = 1

// Cell is a view handle drawn as text. Tabs use only Title; content pages
// draw Body, one string per row.
type Cell struct {
	*widgets.Box

	Title     string
	Body      []string
	TextColor graphics.Color
}

// NewCell creates a cell with black text on a transparent background.
func NewCell(title string, body ...string) *Cell {
	return &Cell{
		Box:       widgets.NewBox(graphics.ColorTransparent),
		Title:     title,
		Body:      body,
		TextColor: graphics.ColorBlack,
	}
}

// IntrinsicSize returns the padded title width in columns by one row.
func (c *Cell) IntrinsicSize() graphics.Size {
	return graphics.Size{
		Width:  float64(runewidth.StringWidth(c.Title) + 2*cellPadding),
		Height: 1,
	}
}

func (c *Cell) label() string {
	pad := strings.Repeat(" ", cellPadding)
	return pad + c.Title + pad
}

// Lines returns Body word-wrapped to width columns. A non-positive width
// returns Body as is.
func (c *Cell) Lines(width int) []string {
	if width <= 0 {
		return c.Body
	}
	return strings.Split(wordwrap.String(strings.Join(c.Body, "\n"), width), "\n")
}

var (
	_ tabscroll.Positionable = (*Cell)(nil)
	_ tabscroll.Measurable   = (*Cell)(nil)
	_ tabscroll.Fader        = (*Cell)(nil)
	_ tabscroll.Attachable   = (*Cell)(nil)
)
