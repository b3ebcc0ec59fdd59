// Package apca implements the Advanced Perceptual Contrast Algorithm,
// version 0.0.98G-4g (the constants published with apca-w3 0.1.9).
//
// Contrast values are reported as Lc, scaled so that black text on a white
// background is roughly 106. Positive values mean dark text on a light
// background; negative values mean light text on a dark background.
package apca

import (
	"math"

	"github.com/jmylchreest/apcheck/internal/colour"
)

// sRGB to Y constants.
const (
	mainTRC = 2.4

	sRco = 0.2126729
	sGco = 0.7151522
	sBco = 0.0721750
)

// SAPC constants.
const (
	normBG  = 0.56
	normTXT = 0.57
	revTXT  = 0.62
	revBG   = 0.65

	blkThrs = 0.022
	blkClmp = 1.414

	scaleBoW    = 1.14
	scaleWoB    = 1.14
	loBoWoffset = 0.027
	loWoBoffset = 0.027

	deltaYmin = 0.0005
	loClip    = 0.1

	// Valid input range for Y.
	minY = 0.0
	maxY = 1.1
)

// SRGBToY maps an sRGB colour to APCA screen luminance Y in [0, 1].
// The alpha channel is ignored.
func SRGBToY(c colour.RGBA) float64 {
	return sRco*simpleExp(c.R) + sGco*simpleExp(c.G) + sBco*simpleExp(c.B)
}

func simpleExp(channel uint8) float64 {
	return math.Pow(float64(channel)/255.0, mainTRC)
}

// Contrast returns the Lc value for text luminance textY on background
// luminance bgY. Argument order matters: swapping them changes the sign
// and, in general, the magnitude.
//
// NaN or out of range inputs yield 0.
func Contrast(textY, bgY float64) float64 {
	if math.IsNaN(textY) || math.IsNaN(bgY) ||
		math.Min(textY, bgY) < minY || math.Max(textY, bgY) > maxY {
		return 0
	}

	// Soft clamp near black.
	textY = softClamp(textY)
	bgY = softClamp(bgY)

	if math.Abs(bgY-textY) < deltaYmin {
		return 0
	}

	var out float64
	if bgY > textY {
		// Dark text on a light background.
		sapc := (math.Pow(bgY, normBG) - math.Pow(textY, normTXT)) * scaleBoW
		if sapc < loClip {
			out = 0
		} else {
			out = sapc - loBoWoffset
		}
	} else {
		// Light text on a dark background.
		sapc := (math.Pow(bgY, revBG) - math.Pow(textY, revTXT)) * scaleWoB
		if sapc > -loClip {
			out = 0
		} else {
			out = sapc + loWoBoffset
		}
	}

	return out * 100
}

func softClamp(y float64) float64 {
	if y > blkThrs {
		return y
	}
	return y + math.Pow(blkThrs-y, blkClmp)
}

// AlphaBlend composites fg over bg and returns an opaque colour.
// The alpha of bg is ignored.
func AlphaBlend(fg, bg colour.RGBA) colour.RGBA {
	a := fg.Alpha()
	comp := 1 - a
	blend := func(f, b uint8) uint8 {
		v := math.Round(float64(b)*comp + float64(f)*a)
		return uint8(math.Min(v, 255))
	}
	return colour.RGBA{
		R: blend(fg.R, bg.R),
		G: blend(fg.G, bg.G),
		B: blend(fg.B, bg.B),
		A: 255,
	}
}

// Polarity describes which side of the pair is lighter.
type Polarity int

const (
	// PolarityNone means the colours are too close to score.
	PolarityNone Polarity = iota
	// PolarityDarkOnLight is dark text on a light background (positive Lc).
	PolarityDarkOnLight
	// PolarityLightOnDark is light text on a dark background (negative Lc).
	PolarityLightOnDark
)

// PolarityOf classifies an Lc value by its sign.
func PolarityOf(lc float64) Polarity {
	switch {
	case lc > 0:
		return PolarityDarkOnLight
	case lc < 0:
		return PolarityLightOnDark
	default:
		return PolarityNone
	}
}

// String returns a human-readable description of the polarity.
func (p Polarity) String() string {
	switch p {
	case PolarityDarkOnLight:
		return "dark text on light background"
	case PolarityLightOnDark:
		return "light text on dark background"
	default:
		return "no contrast"
	}
}
