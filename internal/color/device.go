package color

import "math"

// CMYK components are percentages in [0, 100].
type CMYK struct {
	C, M, Y, K float64
}

// YUV is BT.601 analog YUV computed from normalized RGB. Y is in [0, 1],
// U in about ±0.436 and V in about ±0.615.
type YUV struct {
	Y, U, V float64
}

func (c CMYK) Model() Model { return ModelCMYK }
func (c YUV) Model() Model  { return ModelYUV }

// RGBToCMYK converts c to CMYK. Black is (0, 0, 0, 100).
func RGBToCMYK(c RGB) CMYK {
	r, g, b := unit(c.R), unit(c.G), unit(c.B)

	k := 1 - math.Max(math.Max(r, g), b)
	if k >= 1 {
		return CMYK{K: 100}
	}
	return CMYK{
		C: (1 - r - k) / (1 - k) * 100,
		M: (1 - g - k) / (1 - k) * 100,
		Y: (1 - b - k) / (1 - k) * 100,
		K: k * 100,
	}
}

// ToRGB converts c to a normalized RGB. Components are clamped to [0, 100].
func (c CMYK) ToRGB() RGB {
	k := 1 - clamp(c.K, 0, 100)/100
	return RGB{}.withUnit(
		(1-clamp(c.C, 0, 100)/100)*k,
		(1-clamp(c.M, 0, 100)/100)*k,
		(1-clamp(c.Y, 0, 100)/100)*k,
	)
}

// RGBToYUV converts c to YUV using the BT.601 matrix.
func RGBToYUV(c RGB) YUV {
	r, g, b := unit(c.R), unit(c.G), unit(c.B)
	return YUV{
		Y: 0.299*r + 0.587*g + 0.114*b,
		U: -0.14713*r - 0.28886*g + 0.436*b,
		V: 0.615*r - 0.51499*g - 0.10001*b,
	}
}

// ToRGB converts c to a normalized RGB, clamping out-of-range channels.
func (c YUV) ToRGB() RGB {
	return RGB{}.withUnit(
		c.Y+1.13983*c.V,
		c.Y-0.39465*c.U-0.58060*c.V,
		c.Y+2.03211*c.U,
	)
}
