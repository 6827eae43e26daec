package graphics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is the bitmap face used when a label does not supply one.
var DefaultFace font.Face = basicfont.Face7x13

// MeasureText returns the advance width and line height of text drawn with
// face. A nil face falls back to DefaultFace.
func MeasureText(text string, face font.Face) Size {
	if face == nil {
		face = DefaultFace
	}
	width := font.MeasureString(face, text)
	metrics := face.Metrics()
	return Size{
		Width:  float64(width.Ceil()),
		Height: float64(metrics.Height.Ceil()),
	}
}
