package core

import "fmt"

// Color is a 24-bit RGB color. The day/night cycle interpolates sky colors
// continuously, so cells carry full RGB rather than a fixed palette.
type Color struct {
	R, G, B uint8
}

// NewColor creates a color from 8-bit channel values.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Lerp linearly interpolates between this color and other by t in [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	t = ClampF(t, 0, 1)
	return Color{
		R: uint8(float64(c.R) + (float64(other.R)-float64(c.R))*t),
		G: uint8(float64(c.G) + (float64(other.G)-float64(c.G))*t),
		B: uint8(float64(c.B) + (float64(other.B)-float64(c.B))*t),
	}
}

// Hex returns the color as a "#rrggbb" string for terminal styling.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Common colors used by the renderer.
var (
	ColorWhite = NewColor(0xee, 0xee, 0xee)
	ColorBlack = NewColor(0x10, 0x10, 0x10)
	ColorGray  = NewColor(0x8a, 0x8a, 0x8a)
)
