package termhost

import (
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/go-drift/tabscroll/pkg/graphics"
	"github.com/go-drift/tabscroll/pkg/tabscroll"
)

const arrowGlyph = "▲"

// pageMargin is the blank columns on each side of page text.
const pageMargin = 1

// Styles are the lipgloss styles drawn outside of tabs and pages.
type Styles struct {
	Arrow  lipgloss.Style
	Footer lipgloss.Style
}

// DefaultStyles returns the styles Model uses unless WithStyles is given.
func DefaultStyles() Styles {
	return Styles{
		Arrow:  lipgloss.NewStyle().Foreground(lipgloss.Color("#5A56E0")).Bold(true),
		Footer: lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A")),
	}
}

// span is text occupying columns [left, right) of a row.
type span struct {
	left, right int
	text        string
	style       lipgloss.Style
}

// cells rounds a layout extent to whole terminal columns or rows.
func cells(v float64) int {
	return int(math.Round(v))
}

func colorStyle(fg, bg graphics.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
}

// columns returns display columns [from, to) of s, padded with spaces where
// s is short or a wide rune straddles an edge.
func columns(s string, from, to int) string {
	if to <= from {
		return ""
	}
	s = runewidth.TruncateLeft(s, from, "")
	s = runewidth.Truncate(s, to-from, "")
	return runewidth.FillRight(s, to-from)
}

// composeLine draws spans, sorted by left edge, over a row of width columns.
// Columns no span covers are drawn with fill.
func composeLine(spans []span, width int, fill lipgloss.Style) string {
	var b strings.Builder
	col := 0
	for _, s := range spans {
		if s.right <= col {
			continue
		}
		if s.left >= width {
			break
		}
		if s.left > col {
			b.WriteString(fill.Render(strings.Repeat(" ", s.left-col)))
			col = s.left
		}
		end := min(s.right, width)
		b.WriteString(s.style.Render(columns(s.text, col-s.left, end-s.left)))
		col = end
	}
	if col < width {
		b.WriteString(fill.Render(strings.Repeat(" ", width-col)))
	}
	return b.String()
}

// Render draws the tab strip, the arrow indicator row and the visible
// content rows of v. Nothing is drawn before the first layout.
func Render(v *tabscroll.View, styles Styles) string {
	if v.State() == tabscroll.StateUninitialized {
		return ""
	}
	width := cells(v.TabSectionFrame().Width())
	if width <= 0 {
		return ""
	}
	rows := tabRows(v, width)
	if arrow, ok := v.ArrowIndicatorFrame(); ok {
		rows = append(rows, arrowRow(v, arrow, width, styles))
	}
	rows = append(rows, contentRows(v, width)...)
	return strings.Join(rows, "\n")
}

func tabRows(v *tabscroll.View, width int) []string {
	cfg := v.Config()
	bg := cfg.TabSectionColor
	fill := lipgloss.NewStyle().Background(lipgloss.Color(bg.Hex()))
	offset := cells(v.TabOffset())

	var spans []span
	for _, tab := range v.Tabs() {
		cell, ok := tab.(*Cell)
		if !ok || cell == nil {
			continue
		}
		frame := cell.Frame()
		style := colorStyle(cell.TextColor.Over(bg, cell.Alpha()), bg).Bold(cell.Alpha() >= 1)
		spans = append(spans, span{
			left:  cells(frame.Left) - offset,
			right: cells(frame.Right) - offset,
			text:  cell.label(),
			style: style,
		})
	}

	height := max(cells(v.TabSectionFrame().Height()), 1)
	blank := composeLine(nil, width, fill)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = blank
	}
	rows[height/2] = composeLine(spans, width, fill)
	return rows
}

func arrowRow(v *tabscroll.View, arrow graphics.Rect, width int, styles Styles) string {
	bg := v.Config().ContentSectionColor
	fill := lipgloss.NewStyle().Background(lipgloss.Color(bg.Hex()))
	center := int(arrow.Center().X)
	glyph := span{left: center, right: center + 1, text: arrowGlyph, style: styles.Arrow.Background(lipgloss.Color(bg.Hex()))}
	return composeLine([]span{glyph}, width, fill)
}

func contentRows(v *tabscroll.View, width int) []string {
	bg := v.Config().ContentSectionColor
	fill := lipgloss.NewStyle().Background(lipgloss.Color(bg.Hex()))
	offset := cells(v.ContentOffset())

	var pages []*Cell
	for _, child := range v.ContentRegion().Children() {
		if cell, ok := child.(*Cell); ok {
			pages = append(pages, cell)
		}
	}
	slices.SortFunc(pages, func(a, b *Cell) int {
		return cells(a.Frame().Left) - cells(b.Frame().Left)
	})

	height := cells(v.ContentSectionFrame().Height())
	if _, ok := v.ArrowIndicatorFrame(); ok {
		height--
	}
	type drawn struct {
		left, right int
		lines       []string
		style       lipgloss.Style
	}
	drawPages := make([]drawn, len(pages))
	for i, page := range pages {
		frame := page.Frame()
		pageBG := page.Color
		if pageBG.Alpha() == 0 {
			pageBG = bg
		}
		drawPages[i] = drawn{
			left:  cells(frame.Left) - offset,
			right: cells(frame.Right) - offset,
			lines: page.Lines(cells(frame.Width()) - 2*pageMargin),
			style: colorStyle(page.TextColor, pageBG),
		}
	}

	margin := strings.Repeat(" ", pageMargin)
	rows := make([]string, 0, max(height, 0))
	for r := 0; r < height; r++ {
		spans := make([]span, len(drawPages))
		for i, p := range drawPages {
			line := ""
			if r < len(p.lines) {
				line = p.lines[r]
			}
			spans[i] = span{left: p.left, right: p.right, text: margin + line, style: p.style}
		}
		rows = append(rows, composeLine(spans, width, fill))
	}
	return rows
}
