package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrFormat is returned for hex strings and untyped records that do not
// describe a color.
var ErrFormat = errors.New("invalid color format")

// Alpha is an optional opacity in [0, 1]. The zero value is unspecified,
// which is distinct from an explicit alpha of 1.
type Alpha struct {
	value float64
	set   bool
}

// AlphaOf returns an explicit alpha clamped to [0, 1].
func AlphaOf(v float64) Alpha {
	return Alpha{value: clamp(v, 0, 1), set: true}
}

// Value returns the alpha and whether it is set.
func (a Alpha) Value() (float64, bool) {
	return a.value, a.set
}

// IsSet reports whether the alpha was given explicitly.
func (a Alpha) IsSet() bool {
	return a.set
}

// Or returns the alpha value, or def when unspecified.
func (a Alpha) Or(def float64) float64 {
	if !a.set {
		return def
	}
	return a.value
}

// Equal compares two alphas literally: unspecified only equals unspecified.
func (a Alpha) Equal(o Alpha) bool {
	if a.set != o.set {
		return false
	}
	return !a.set || a.value == o.value
}

func (a Alpha) String() string {
	if !a.set {
		return "unset"
	}
	return strconv.FormatFloat(a.value, 'f', -1, 64)
}

// RGB is the canonical pivot representation. Channels are in [0, 255].
type RGB struct {
	R, G, B float64
	A       Alpha
}

func (c RGB) Model() Model { return ModelRGB }

// ToRGB returns c with channels rounded to integers and clamped.
func (c RGB) ToRGB() RGB {
	return RGB{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: c.A}
}

// ParseHex parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa". The leading #
// is optional and digits are case-insensitive.
func ParseHex(s string) (RGB, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(raw) {
	case 3, 4:
		var b strings.Builder
		for _, r := range raw {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		raw = b.String()
	case 6, 8:
	default:
		return RGB{}, fmt.Errorf("%w: hex color %q must have 3, 4, 6 or 8 digits", ErrFormat, s)
	}

	n, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: hex color %q has invalid digits", ErrFormat, s)
	}

	if len(raw) == 6 {
		return RGB{
			R: float64(n >> 16 & 0xff),
			G: float64(n >> 8 & 0xff),
			B: float64(n & 0xff),
		}, nil
	}
	return RGB{
		R: float64(n >> 24 & 0xff),
		G: float64(n >> 16 & 0xff),
		B: float64(n >> 8 & 0xff),
		A: AlphaOf(float64(n&0xff) / 255),
	}, nil
}

// FormatHex returns c as "#rrggbb", or "#rrggbbaa" when includeAlpha is set.
// An unspecified alpha is written as ff.
func FormatHex(c RGB, includeAlpha bool) string {
	c = c.ToRGB()
	s := fmt.Sprintf("#%02x%02x%02x", uint8(c.R), uint8(c.G), uint8(c.B))
	if includeAlpha {
		s += fmt.Sprintf("%02x", uint8(math.Round(c.A.Or(1)*255)))
	}
	return s
}

// channel rounds v to an integer channel value in [0, 255].
func channel(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return clamp(math.Round(v), 0, 255)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrapHue maps h into [0, 360).
func wrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		return 0
	}
	return h
}
