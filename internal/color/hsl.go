package color

import "math"

// HSL is hue in degrees [0, 360), saturation and lightness in [0, 100].
type HSL struct {
	H, S, L float64
	A       Alpha
}

// HSV is hue in degrees [0, 360), saturation and value in [0, 100].
type HSV struct {
	H, S, V float64
	A       Alpha
}

func (c HSL) Model() Model { return ModelHSL }
func (c HSV) Model() Model { return ModelHSV }

// RGBToHSL converts c to HSL. Achromatic colors get hue 0.
func RGBToHSL(c RGB) HSL {
	r, g, b := unit(c.R), unit(c.G), unit(c.B)

	var h, s, l float64

	min := math.Min(math.Min(r, g), b)
	max := math.Max(math.Max(r, g), b)
	l = (max + min) / 2.0

	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2.0 - max - min)
		} else {
			s = d / (max + min)
		}
		h = hue(r, g, b, max, d)
	}

	return HSL{H: h, S: s * 100, L: l * 100, A: c.A}
}

// ToRGB converts c to a normalized RGB. Hue wraps; s and l are clamped.
func (c HSL) ToRGB() RGB {
	h := wrapHue(c.H) / 360
	s := clamp(c.S, 0, 100) / 100
	l := clamp(c.L, 0, 100) / 100

	if s == 0 {
		return RGB{A: c.A}.withUnit(l, l, l)
	}

	var q float64
	if l < 0.5 {
		q = l * (1.0 + s)
	} else {
		q = l + s - l*s
	}
	p := 2.0*l - q

	return RGB{A: c.A}.withUnit(
		hueToRGB(p, q, h+1.0/3.0),
		hueToRGB(p, q, h),
		hueToRGB(p, q, h-1.0/3.0),
	)
}

// RGBToHSV converts c to HSV. Achromatic colors get hue 0.
func RGBToHSV(c RGB) HSV {
	r, g, b := unit(c.R), unit(c.G), unit(c.B)

	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)
	d := max - min

	var h, s float64
	if max > 0 {
		s = d / max
	}
	if d > 0 {
		h = hue(r, g, b, max, d)
	}

	return HSV{H: h, S: s * 100, V: max * 100, A: c.A}
}

// ToRGB converts c to a normalized RGB. Hue wraps; s and v are clamped.
func (c HSV) ToRGB() RGB {
	h := wrapHue(c.H) / 60
	s := clamp(c.S, 0, 100) / 100
	v := clamp(c.V, 0, 100) / 100

	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	out := RGB{A: c.A}
	switch int(i) % 6 {
	case 0:
		return out.withUnit(v, t, p)
	case 1:
		return out.withUnit(q, v, p)
	case 2:
		return out.withUnit(p, v, t)
	case 3:
		return out.withUnit(p, q, v)
	case 4:
		return out.withUnit(t, p, v)
	default:
		return out.withUnit(v, p, q)
	}
}

// hue returns the hue in degrees for unit RGB components whose maximum is
// max and whose chroma d is non-zero.
func hue(r, g, b, max, d float64) float64 {
	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6.0
		}
	case g:
		h = (b-r)/d + 2.0
	default:
		h = (r-g)/d + 4.0
	}
	return wrapHue(h * 60)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1.0
	}
	if t > 1 {
		t -= 1.0
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6.0*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6.0
	}
	return p
}

// unit maps a channel in [0, 255] to [0, 1], clamping out-of-range input.
func unit(v float64) float64 {
	return clamp(v, 0, 255) / 255
}

// withUnit sets channels from [0, 1] components and normalizes them.
func (c RGB) withUnit(r, g, b float64) RGB {
	c.R, c.G, c.B = r*255, g*255, b*255
	return c.ToRGB()
}
