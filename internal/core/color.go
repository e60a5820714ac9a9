package core

import "fmt"

// Color is an opaque 24-bit draw color.
// It satisfies image/color.Color so graphical backends can use it directly.
type Color struct {
	R, G, B uint8
}

// Predefined colors for maze elements.
var (
	ColorBlack  = Color{0, 0, 0}
	ColorWhite  = Color{255, 255, 255}
	ColorCyan   = Color{0, 255, 255}
	ColorYellow = Color{255, 255, 0}
	ColorRed    = Color{255, 0, 0}
	ColorGray   = Color{128, 128, 128}
)

// RGBA implements image/color.Color with full opacity.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the color as "#rrggbb", the form terminal styling libraries accept.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a "#rrggbb" color.
func ParseHex(s string) (Color, error) {
	var c Color
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("core: invalid color %q", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return c, nil
}
