package graphics

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(math.Round(Clamp(a, 0, 1)*maxByte))<<24 | uint32(c)&0x00FFFFFF)
}

// Hex returns the color as "#RRGGBB", dropping alpha. Terminal hosts use this
// form for lipgloss colors.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06X", uint32(c)&0x00FFFFFF)
}

// Over composites c at opacity alpha onto an opaque background and returns
// the opaque result. The color's own alpha channel is ignored.
func (c Color) Over(bg Color, alpha float64) Color {
	a := Clamp(alpha, 0, 1)
	mix := func(shift uint) uint8 {
		fg := float64(uint8(c >> shift))
		back := float64(uint8(bg >> shift))
		return uint8(math.Round(back + (fg-back)*a))
	}
	return RGB(mix(16), mix(8), mix(0))
}

// ParseColor parses "#RRGGBB" or "#AARRGGBB". Six-digit colors are opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6, 8:
	default:
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #AARRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v |= 0xFF000000
	}
	return Color(v), nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("#%08X", uint32(c))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)
