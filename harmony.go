package huekit

import (
	"fmt"
	"math"
	"sort"
)

const (
	// DefaultAngle is the spread used by analogous and split harmonies.
	DefaultAngle = 30.0
	// DefaultTetradicAngle separates the two complementary pairs.
	DefaultTetradicAngle = 60.0
	// DefaultCount is the length of stepped sequences.
	DefaultCount = 5
)

// rotate returns copies of c with the HSL hue shifted by each offset.
func (c *Color) rotate(offsets ...float64) []*Color {
	hsl := c.ToHSL()
	out := make([]*Color, len(offsets))
	for i, off := range offsets {
		if off == 0 {
			out[i] = c.Clone()
			continue
		}
		h := hsl
		h.H += off
		out[i] = New(h)
	}
	return out
}

// Complementary returns c and the color opposite it on the hue wheel.
func (c *Color) Complementary() [2]*Color {
	return [2]*Color(c.rotate(0, 180))
}

// Analogous returns c and its neighbours at -angle and +angle.
func (c *Color) Analogous(angle float64) [3]*Color {
	return [3]*Color(c.rotate(0, -angle, angle))
}

// Triadic returns three colors evenly spaced on the hue wheel.
func (c *Color) Triadic() [3]*Color {
	return [3]*Color(c.rotate(0, 120, 240))
}

// Tetradic returns two complementary pairs offset by angle.
func (c *Color) Tetradic(angle float64) [4]*Color {
	return [4]*Color(c.rotate(0, angle, 180, 180+angle))
}

// SplitComplementary returns c and the two neighbours of its complement.
func (c *Color) SplitComplementary(angle float64) [3]*Color {
	return [3]*Color(c.rotate(0, 180-angle, 180+angle))
}

// Square returns four colors 90 degrees apart.
func (c *Color) Square() [4]*Color {
	return [4]*Color(c.rotate(0, 90, 180, 270))
}

// DoubleSplitComplementary returns c, its two neighbours, and the two
// neighbours of its complement.
func (c *Color) DoubleSplitComplementary(angle float64) [5]*Color {
	return [5]*Color(c.rotate(0, -angle, angle, 180-angle, 180+angle))
}

func checkCount(count int) error {
	if count < 2 {
		return fmt.Errorf("%w: count must be at least 2, got %d", ErrInvalidArgument, count)
	}
	return nil
}

// Monochromatic keeps hue and saturation and walks the HSV value in steps
// of 100/count, wrapping from 100 back to 0.
func (c *Color) Monochromatic(count int) ([]*Color, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	hsv := c.ToHSV()
	step := 100 / float64(count)

	out := make([]*Color, count)
	out[0] = c.Clone()
	for i := 1; i < count; i++ {
		v := hsv
		v.V = math.Mod(hsv.V+float64(i)*step, 100)
		out[i] = New(v)
	}
	return out, nil
}

// Shades steps HSL lightness from c down to black. The first element is c
// and the last has lightness 0.
func (c *Color) Shades(count int) ([]*Color, error) {
	return c.ladder(count, func(h *HSL, t float64) {
		h.L = math.Max(0, h.L*(1-t))
	})
}

// Tints steps HSL lightness from c up to white.
func (c *Color) Tints(count int) ([]*Color, error) {
	return c.ladder(count, func(h *HSL, t float64) {
		h.L = math.Min(100, h.L+(100-h.L)*t)
	})
}

// Tones steps HSL saturation from c down to gray.
func (c *Color) Tones(count int) ([]*Color, error) {
	return c.ladder(count, func(h *HSL, t float64) {
		h.S = math.Max(0, h.S*(1-t))
	})
}

// ladder builds count colors; step is applied with t going from 0 to 1 in
// count-1 equal steps.
func (c *Color) ladder(count int, step func(h *HSL, t float64)) ([]*Color, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	hsl := c.ToHSL()

	out := make([]*Color, count)
	out[0] = c.Clone()
	for i := 1; i < count; i++ {
		h := hsl
		step(&h, float64(i)/float64(count-1))
		out[i] = New(h)
	}
	return out, nil
}

// harmonies maps scheme names to their generators.
var harmonies = map[string]func(c *Color, angle float64, count int) ([]*Color, error){
	"complementary": func(c *Color, _ float64, _ int) ([]*Color, error) {
		s := c.Complementary()
		return s[:], nil
	},
	"analogous": func(c *Color, angle float64, _ int) ([]*Color, error) {
		s := c.Analogous(angle)
		return s[:], nil
	},
	"triadic": func(c *Color, _ float64, _ int) ([]*Color, error) {
		s := c.Triadic()
		return s[:], nil
	},
	"tetradic": func(c *Color, angle float64, _ int) ([]*Color, error) {
		s := c.Tetradic(angle)
		return s[:], nil
	},
	"split-complementary": func(c *Color, angle float64, _ int) ([]*Color, error) {
		s := c.SplitComplementary(angle)
		return s[:], nil
	},
	"square": func(c *Color, _ float64, _ int) ([]*Color, error) {
		s := c.Square()
		return s[:], nil
	},
	"double-split-complementary": func(c *Color, angle float64, _ int) ([]*Color, error) {
		s := c.DoubleSplitComplementary(angle)
		return s[:], nil
	},
	"monochromatic": func(c *Color, _ float64, count int) ([]*Color, error) {
		return c.Monochromatic(count)
	},
	"shades": func(c *Color, _ float64, count int) ([]*Color, error) {
		return c.Shades(count)
	},
	"tints": func(c *Color, _ float64, count int) ([]*Color, error) {
		return c.Tints(count)
	},
	"tones": func(c *Color, _ float64, count int) ([]*Color, error) {
		return c.Tones(count)
	},
}

// Harmony generates the named scheme. Angle is ignored by schemes with a
// fixed geometry and count by schemes with a fixed size.
func (c *Color) Harmony(scheme string, angle float64, count int) ([]*Color, error) {
	gen, ok := harmonies[scheme]
	if !ok {
		return nil, fmt.Errorf("%w: unknown harmony scheme %q", ErrInvalidArgument, scheme)
	}
	return gen(c, angle, count)
}

// Schemes returns the names accepted by Harmony, sorted.
func Schemes() []string {
	names := make([]string, 0, len(harmonies))
	for name := range harmonies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultSchemeAngle returns the angle a scheme uses when the caller has no
// preference.
func DefaultSchemeAngle(scheme string) float64 {
	if scheme == "tetradic" {
		return DefaultTetradicAngle
	}
	return DefaultAngle
}
