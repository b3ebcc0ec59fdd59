// Package contrast scores the perceptual contrast of two CSS colours using
// APCA and compares scores against a minimum.
//
// All functions are pure and safe for concurrent use.
package contrast

import (
	"math"

	"github.com/jmylchreest/apcheck/internal/apca"
	"github.com/jmylchreest/apcheck/internal/colour"
)

// ErrInvalidColorFormat is returned when either colour cannot be parsed.
var ErrInvalidColorFormat = colour.ErrInvalidColorFormat

// APCAContrast returns the signed APCA Lc score of foreground text on a
// background. Colours may use any notation accepted by the colour parser
// (hex, rgb(), hsl(), oklch(), oklab(), CSS names). Alpha is ignored.
//
// The order of the arguments matters: APCA is not symmetric.
// Parse errors are returned unchanged.
func APCAContrast(foreground, background string) (float64, error) {
	fg, err := colour.Parse(foreground)
	if err != nil {
		return 0, err
	}
	bg, err := colour.Parse(background)
	if err != nil {
		return 0, err
	}
	return apca.Contrast(apca.SRGBToY(fg), apca.SRGBToY(bg)), nil
}

// BlendedAPCAContrast is like APCAContrast, but a translucent foreground is
// composited onto the background before scoring.
func BlendedAPCAContrast(foreground, background string) (float64, error) {
	fg, err := colour.Parse(foreground)
	if err != nil {
		return 0, err
	}
	bg, err := colour.Parse(background)
	if err != nil {
		return 0, err
	}
	if !fg.Opaque() {
		fg = apca.AlphaBlend(fg, bg)
	}
	return apca.Contrast(apca.SRGBToY(fg), apca.SRGBToY(bg)), nil
}

// MeetsThreshold reports whether |value| >= threshold. The sign of an Lc
// score only encodes polarity, so both polarities are treated alike.
// A NaN value never meets any threshold.
func MeetsThreshold(value, threshold float64) bool {
	return math.Abs(value) >= threshold
}
