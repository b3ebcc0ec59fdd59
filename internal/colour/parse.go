package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColorFormat is returned when a string is not a recognised colour.
var ErrInvalidColorFormat = errors.New("invalid color format")

// Parse converts a CSS colour string into RGBA.
//
// Supported notations: hex (#rgb, #rgba, #rrggbb, #rrggbbaa), rgb()/rgba(),
// hsl()/hsla(), oklch(), oklab(), the CSS named colours and "transparent".
// Input is case-insensitive and surrounding whitespace is ignored.
func Parse(s string) (RGBA, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	if value == "" {
		return RGBA{}, invalid(s, "empty string")
	}

	if value == "transparent" {
		return RGBA{}, nil
	}

	// CSS Color 4 addition missing from colornames.
	if value == "rebeccapurple" {
		return RGBA{R: 0x66, G: 0x33, B: 0x99, A: 255}, nil
	}

	if c, ok := colornames.Map[value]; ok {
		return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}

	if name, args, ok := splitFunction(value); ok {
		var (
			c   RGBA
			err error
		)
		switch name {
		case "rgb", "rgba":
			c, err = parseRGBFunction(args)
		case "hsl", "hsla":
			c, err = parseHSLFunction(args)
		case "oklch":
			c, err = parseOKLCHFunction(args)
		case "oklab":
			c, err = parseOKLABFunction(args)
		default:
			return RGBA{}, invalid(s, fmt.Sprintf("unsupported function %q", name))
		}
		if err != nil {
			return RGBA{}, invalid(s, err.Error())
		}
		return c, nil
	}

	c, err := parseHex(value)
	if err != nil {
		return RGBA{}, invalid(s, err.Error())
	}
	return c, nil
}

// MustParse is like Parse but panics on error. Intended for constants in tests.
func MustParse(s string) RGBA {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func invalid(input, reason string) error {
	return fmt.Errorf("%w: %q: %s", ErrInvalidColorFormat, input, reason)
}

// splitFunction splits "name(a, b, c)" into its name and argument list.
// Commas and slashes are treated as whitespace.
func splitFunction(value string) (string, []string, bool) {
	open := strings.IndexByte(value, '(')
	if open <= 0 || !strings.HasSuffix(value, ")") {
		return "", nil, false
	}
	name := strings.TrimSpace(value[:open])
	inner := value[open+1 : len(value)-1]
	inner = strings.NewReplacer(",", " ", "/", " ").Replace(inner)
	return name, strings.Fields(inner), true
}

// parseHex parses a hex colour with or without the leading '#'.
// Without '#', only the 3 and 6 digit forms are accepted.
func parseHex(value string) (RGBA, error) {
	hasHash := strings.HasPrefix(value, "#")
	hex := strings.TrimPrefix(value, "#")

	switch len(hex) {
	case 3, 6:
	case 4, 8:
		if !hasHash {
			return RGBA{}, fmt.Errorf("%d digit hex requires a leading '#'", len(hex))
		}
	default:
		return RGBA{}, fmt.Errorf("invalid hex color length: %d", len(hex))
	}

	// Expand shorthand format (RGB[A] -> RRGGBB[AA]).
	if len(hex) <= 4 {
		expanded := make([]byte, 0, len(hex)*2)
		for i := 0; i < len(hex); i++ {
			expanded = append(expanded, hex[i], hex[i])
		}
		hex = string(expanded)
	}

	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid hex digits %q", hex)
	}

	if len(hex) == 6 {
		return RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 255}, nil
	}
	return RGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

// parseRGBFunction handles rgb(r g b [a]) with numeric or percentage channels.
func parseRGBFunction(args []string) (RGBA, error) {
	if len(args) != 3 && len(args) != 4 {
		return RGBA{}, fmt.Errorf("rgb expects 3 or 4 arguments, got %d", len(args))
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, pct, err := parseNumber(args[i])
		if err != nil {
			return RGBA{}, err
		}
		if pct {
			v = v / 100 * 255
		}
		channels[i] = toByte(v)
	}

	a, err := parseAlpha(args[3:])
	if err != nil {
		return RGBA{}, err
	}

	return RGBA{R: channels[0], G: channels[1], B: channels[2], A: a}, nil
}

// parseHSLFunction handles hsl(h s l [a]). Saturation and lightness are
// percentages, with or without the '%' sign.
func parseHSLFunction(args []string) (RGBA, error) {
	if len(args) != 3 && len(args) != 4 {
		return RGBA{}, fmt.Errorf("hsl expects 3 or 4 arguments, got %d", len(args))
	}

	h, err := parseHue(args[0])
	if err != nil {
		return RGBA{}, err
	}
	s, err := parsePercentage(args[1])
	if err != nil {
		return RGBA{}, err
	}
	l, err := parsePercentage(args[2])
	if err != nil {
		return RGBA{}, err
	}
	a, err := parseAlpha(args[3:])
	if err != nil {
		return RGBA{}, err
	}

	return fromColorful(colorful.Hsl(h, s, l), a), nil
}

// parseOKLCHFunction handles oklch(L C H [a]) where L is 0-1 or a percentage.
func parseOKLCHFunction(args []string) (RGBA, error) {
	if len(args) != 3 && len(args) != 4 {
		return RGBA{}, fmt.Errorf("oklch expects 3 or 4 arguments, got %d", len(args))
	}

	l, err := parseFraction(args[0])
	if err != nil {
		return RGBA{}, err
	}
	c, _, err := parseNumber(args[1])
	if err != nil {
		return RGBA{}, err
	}
	h, err := parseHue(args[2])
	if err != nil {
		return RGBA{}, err
	}
	a, err := parseAlpha(args[3:])
	if err != nil {
		return RGBA{}, err
	}

	return fromColorful(colorful.OkLch(l, c, h), a), nil
}

// parseOKLABFunction handles oklab(L a b [alpha]).
func parseOKLABFunction(args []string) (RGBA, error) {
	if len(args) != 3 && len(args) != 4 {
		return RGBA{}, fmt.Errorf("oklab expects 3 or 4 arguments, got %d", len(args))
	}

	l, err := parseFraction(args[0])
	if err != nil {
		return RGBA{}, err
	}
	aa, _, err := parseNumber(args[1])
	if err != nil {
		return RGBA{}, err
	}
	bb, _, err := parseNumber(args[2])
	if err != nil {
		return RGBA{}, err
	}
	alpha, err := parseAlpha(args[3:])
	if err != nil {
		return RGBA{}, err
	}

	return fromColorful(colorful.OkLab(l, aa, bb), alpha), nil
}

// parseNumber parses a finite decimal number with an optional trailing '%'.
func parseNumber(s string) (float64, bool, error) {
	pct := strings.HasSuffix(s, "%")
	num := strings.TrimSuffix(s, "%")
	if !isDecimal(num) {
		return 0, false, fmt.Errorf("invalid number %q", s)
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, fmt.Errorf("invalid number %q", s)
	}
	return v, pct, nil
}

// isDecimal rejects the forms strconv accepts but CSS does not:
// underscores, hex floats, "inf" and "nan".
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == '+', r == '-', r == 'e':
		default:
			return false
		}
	}
	return true
}

// parseFraction returns a value in [0, 1]. A bare number is already a
// fraction; a percentage is divided by 100.
func parseFraction(s string) (float64, error) {
	v, pct, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	if pct {
		v /= 100
	}
	return clampFloat(v, 0, 1), nil
}

// parsePercentage returns a value in [0, 1]. Bare numbers are read as
// percentages, as in modern hsl() syntax.
func parsePercentage(s string) (float64, error) {
	v, _, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	return clampFloat(v/100, 0, 1), nil
}

// parseHue parses an angle in degrees, accepting an optional "deg" suffix.
func parseHue(s string) (float64, error) {
	v, pct, err := parseNumber(strings.TrimSuffix(s, "deg"))
	if err != nil {
		return 0, err
	}
	if pct {
		return 0, fmt.Errorf("hue cannot be a percentage: %q", s)
	}
	v = math.Mod(v, 360)
	if v < 0 {
		v += 360
	}
	return v, nil
}

// parseAlpha parses an optional alpha argument. A missing alpha is opaque.
func parseAlpha(args []string) (uint8, error) {
	if len(args) == 0 {
		return 255, nil
	}
	v, pct, err := parseNumber(args[0])
	if err != nil {
		return 0, err
	}
	if pct {
		v /= 100
	}
	return toByte(clampFloat(v, 0, 1) * 255), nil
}

func fromColorful(c colorful.Color, alpha uint8) RGBA {
	r, g, b := c.Clamped().RGB255()
	return RGBA{R: r, G: g, B: b, A: alpha}
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clampFloat(v, 0, 255)))
}

func clampFloat(v, minVal, maxVal float64) float64 {
	return math.Max(minVal, math.Min(maxVal, v))
}
