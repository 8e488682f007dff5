// Package huekit represents a single color value and converts it between
// RGB, HSL, HSV, CMYK, LAB, LCH, XYZ and YUV. Harmonies and manipulations
// are built on top of those conversions and always return new colors.
package huekit

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/jsvensson/huekit/internal/color"
)

// Space records, re-exported from the conversion engine.
type (
	RGB    = color.RGB
	HSL    = color.HSL
	HSV    = color.HSV
	CMYK   = color.CMYK
	LAB    = color.LAB
	LCH    = color.LCH
	XYZ    = color.XYZ
	YUV    = color.YUV
	Alpha  = color.Alpha
	Fields = color.Fields
	Space  = color.Space
	Model  = color.Model
)

var (
	// ErrFormat is returned for invalid hex strings and untyped records
	// that match no color space.
	ErrFormat = color.ErrFormat

	// ErrInvalidArgument is returned when a count, amount or scheme is
	// outside the domain of an operation.
	ErrInvalidArgument = errors.New("invalid argument")
)

// AlphaOf returns an explicit alpha clamped to [0, 1].
func AlphaOf(v float64) Alpha {
	return color.AlphaOf(v)
}

// DefaultPrecision is the number of decimal digits kept when rounding.
const DefaultPrecision = 6

// maxPrecision is where scaling by 10^n stops being exact for float64.
const maxPrecision = 15

var precision = func() *atomic.Int32 {
	p := new(atomic.Int32)
	p.Store(DefaultPrecision)
	return p
}()

// SetPrecision sets the process-wide number of decimal digits used when
// rounding. It affects values rounded after the call; existing colors are
// not re-rounded.
func SetPrecision(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: precision %d is negative", ErrInvalidArgument, n)
	}
	precision.Store(int32(min(n, maxPrecision)))
	return nil
}

// Precision returns the current rounding precision.
func Precision() int {
	return int(precision.Load())
}

func round(v float64) float64 {
	p := Precision()
	if p >= maxPrecision || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	m := math.Pow10(p)
	r := math.Round(v*m) / m
	if r == 0 {
		return 0
	}
	return r
}

func roundAlpha(a Alpha) Alpha {
	if v, ok := a.Value(); ok {
		return color.AlphaOf(round(v))
	}
	return a
}

// Color is a single color. It owns one RGB value with integer channels;
// every other space is computed when asked for.
type Color struct {
	r, g, b uint8
	a       Alpha
}

// New creates a color from any space record.
func New(s Space) *Color {
	rgb := s.ToRGB()
	return &Color{
		r: uint8(rgb.R),
		g: uint8(rgb.G),
		b: uint8(rgb.B),
		a: roundAlpha(rgb.A),
	}
}

// Parse creates a color from a hex string such as "#eb6f92", "f0a" or
// "#eb6f9280".
func Parse(hex string) (*Color, error) {
	rgb, err := color.ParseHex(hex)
	if err != nil {
		return nil, err
	}
	return New(rgb), nil
}

// MustParse is like Parse but panics on error.
func MustParse(hex string) *Color {
	c, err := Parse(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// FromFields creates a color from an untyped record. The space is picked by
// which fields are present, in the order RGB, XYZ, YUV, HSL, HSV, CMYK,
// LAB, LCH.
func FromFields(f Fields) (*Color, error) {
	s, err := f.Space()
	if err != nil {
		return nil, err
	}
	return New(s), nil
}

// FromRGBA creates a color from byte channels.
func FromRGBA(r, g, b uint8, a Alpha) *Color {
	return &Color{r: r, g: g, b: b, a: roundAlpha(a)}
}

func (c *Color) R() uint8 { return c.r }
func (c *Color) G() uint8 { return c.g }
func (c *Color) B() uint8 { return c.b }

// Alpha returns the alpha, which may be unspecified.
func (c *Color) Alpha() Alpha { return c.a }

// EffectiveAlpha returns the alpha, or 1 when unspecified.
func (c *Color) EffectiveAlpha() float64 { return c.a.Or(1) }

// SetR rounds v and clamps it to [0, 255].
func (c *Color) SetR(v float64) { c.r = toByte(v) }

// SetG rounds v and clamps it to [0, 255].
func (c *Color) SetG(v float64) { c.g = toByte(v) }

// SetB rounds v and clamps it to [0, 255].
func (c *Color) SetB(v float64) { c.b = toByte(v) }

// SetAlpha replaces the alpha and returns c. Pass the zero Alpha to unset it.
func (c *Color) SetAlpha(a Alpha) *Color {
	c.a = roundAlpha(a)
	return c
}

func toByte(v float64) uint8 {
	return uint8(RGB{R: v}.ToRGB().R)
}

// Clone returns an independent copy of c.
func (c *Color) Clone() *Color {
	cp := *c
	return &cp
}

// ToRGB returns the canonical RGB record.
func (c *Color) ToRGB() RGB {
	return RGB{R: float64(c.r), G: float64(c.g), B: float64(c.b), A: c.a}
}

func (c *Color) ToHSL() HSL {
	v := color.RGBToHSL(c.ToRGB())
	return HSL{H: round(v.H), S: round(v.S), L: round(v.L), A: v.A}
}

func (c *Color) ToHSV() HSV {
	v := color.RGBToHSV(c.ToRGB())
	return HSV{H: round(v.H), S: round(v.S), V: round(v.V), A: v.A}
}

func (c *Color) ToCMYK() CMYK {
	v := color.RGBToCMYK(c.ToRGB())
	return CMYK{C: round(v.C), M: round(v.M), Y: round(v.Y), K: round(v.K)}
}

func (c *Color) ToLAB() LAB {
	v := color.RGBToLAB(c.ToRGB())
	return LAB{L: round(v.L), A: round(v.A), B: round(v.B)}
}

func (c *Color) ToLCH() LCH {
	v := color.RGBToLCH(c.ToRGB())
	return LCH{L: round(v.L), C: round(v.C), H: round(v.H)}
}

func (c *Color) ToXYZ() XYZ {
	v := color.RGBToXYZ(c.ToRGB())
	return XYZ{X: round(v.X), Y: round(v.Y), Z: round(v.Z)}
}

func (c *Color) ToYUV() YUV {
	v := color.RGBToYUV(c.ToRGB())
	return YUV{Y: round(v.Y), U: round(v.U), V: round(v.V)}
}

// To converts c into the given model, rounded like the typed methods.
func (c *Color) To(m Model) Space {
	switch m {
	case color.ModelHSL:
		return c.ToHSL()
	case color.ModelHSV:
		return c.ToHSV()
	case color.ModelCMYK:
		return c.ToCMYK()
	case color.ModelLAB:
		return c.ToLAB()
	case color.ModelLCH:
		return c.ToLCH()
	case color.ModelXYZ:
		return c.ToXYZ()
	case color.ModelYUV:
		return c.ToYUV()
	default:
		return c.ToRGB()
	}
}

// Hex returns "#rrggbb", or "#rrggbbaa" when includeAlpha is set.
func (c *Color) Hex(includeAlpha bool) string {
	return color.FormatHex(c.ToRGB(), includeAlpha)
}

// String returns the color as "#rrggbb".
func (c *Color) String() string {
	return c.Hex(false)
}

// Equal compares channels and alpha literally. A color with unspecified
// alpha is not equal to the same color with an explicit alpha of 1.
func (c *Color) Equal(o *Color) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.r == o.r && c.g == o.g && c.b == o.b && c.a.Equal(o.a)
}
