package huekit

import (
	"fmt"
	"math"
)

// AdjustLightness returns c with HSL lightness changed by delta, clamped to
// [0, 100].
func (c *Color) AdjustLightness(delta float64) *Color {
	hsl := c.ToHSL()
	hsl.L += delta
	return New(hsl)
}

// AdjustSaturation returns c with HSL saturation changed by delta, clamped
// to [0, 100].
func (c *Color) AdjustSaturation(delta float64) *Color {
	hsl := c.ToHSL()
	hsl.S += delta
	return New(hsl)
}

// AdjustHue returns c rotated by degrees on the HSL hue wheel.
func (c *Color) AdjustHue(degrees float64) *Color {
	hsl := c.ToHSL()
	hsl.H += degrees
	return New(hsl)
}

// AdjustAlpha returns c with its effective alpha changed by delta. The
// result always has an explicit alpha.
func (c *Color) AdjustAlpha(delta float64) *Color {
	return c.Clone().SetAlpha(AlphaOf(c.EffectiveAlpha() + delta))
}

// Invert returns 255 minus each channel. Alpha is kept.
func (c *Color) Invert() *Color {
	return &Color{r: 255 - c.r, g: 255 - c.g, b: 255 - c.b, a: c.a}
}

// Grayscale returns the gray with the same perceived brightness as c.
func (c *Color) Grayscale() *Color {
	y := c.Brightness()
	return New(RGB{R: y, G: y, B: y, A: c.a})
}

// Mix interpolates from c towards other. An amount of 0 returns a copy of
// c and 1 a copy of other. Alpha interpolates with unspecified treated as
// 1, and stays unspecified only when both inputs are.
func (c *Color) Mix(other *Color, amount float64) (*Color, error) {
	if other == nil {
		return nil, fmt.Errorf("%w: mix with nil color", ErrInvalidArgument)
	}
	if math.IsNaN(amount) || amount < 0 || amount > 1 {
		return nil, fmt.Errorf("%w: mix amount %v outside [0, 1]", ErrInvalidArgument, amount)
	}
	switch amount {
	case 0:
		return c.Clone(), nil
	case 1:
		return other.Clone(), nil
	}

	lerp := func(a, b float64) float64 { return a + (b-a)*amount }

	out := RGB{
		R: lerp(float64(c.r), float64(other.r)),
		G: lerp(float64(c.g), float64(other.g)),
		B: lerp(float64(c.b), float64(other.b)),
	}
	if c.a.IsSet() || other.a.IsSet() {
		out.A = AlphaOf(lerp(c.EffectiveAlpha(), other.EffectiveAlpha()))
	}
	return New(out), nil
}
