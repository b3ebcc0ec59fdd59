// Package colour parses CSS colour notations into normalised sRGB values.
package colour

import (
	"fmt"
)

// RGB represents an opaque colour in 8-bit sRGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// RGBA is a parsed colour with straight (non-premultiplied) alpha.
// A is 255 for fully opaque colours.
type RGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// RGB drops the alpha channel.
func (c RGBA) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// Opaque reports whether the colour has no transparency.
func (c RGBA) Opaque() bool {
	return c.A == 255
}

// Alpha returns the alpha channel in the range [0, 1].
func (c RGBA) Alpha() float64 {
	return float64(c.A) / 255.0
}

// Hex returns "#rrggbb" for opaque colours and "#rrggbbaa" otherwise.
func (c RGBA) Hex() string {
	if c.Opaque() {
		return c.RGB().Hex()
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// String returns the colour in CSS functional notation.
func (c RGBA) String() string {
	if c.Opaque() {
		return c.RGB().String()
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %.3g)", c.R, c.G, c.B, c.Alpha())
}
