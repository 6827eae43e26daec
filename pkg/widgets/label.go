package widgets

import (
	"golang.org/x/image/font"

	"github.com/go-drift/tabscroll/pkg/graphics"
	"github.com/go-drift/tabscroll/pkg/tabscroll"
)

// DefaultLabelPadding surrounds label text unless overridden.
var DefaultLabelPadding = graphics.EdgeInsets{Left: 12, Top: 8, Right: 12, Bottom: 8}

// Label is a Box showing a single line of text. Its intrinsic size is the
// measured text plus padding, which is how tabs get their widths.
type Label struct {
	Box

	Text      string
	TextColor graphics.Color
	Face      font.Face
	Padding   graphics.EdgeInsets
}

// NewLabel creates an opaque label on a transparent background.
func NewLabel(text string) *Label {
	return &Label{
		Box:       Box{Color: graphics.ColorTransparent, alpha: 1},
		Text:      text,
		TextColor: graphics.ColorBlack,
		Padding:   DefaultLabelPadding,
	}
}

// IntrinsicSize returns the text extent with padding.
func (l *Label) IntrinsicSize() graphics.Size {
	text := graphics.MeasureText(l.Text, l.Face)
	return graphics.Size{
		Width:  text.Width + l.Padding.Horizontal(),
		Height: text.Height + l.Padding.Top + l.Padding.Bottom,
	}
}

var _ tabscroll.Measurable = (*Label)(nil)
