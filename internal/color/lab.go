package color

import "math"

// XYZ is CIE 1931 XYZ relative to D65, scaled so the white point has Y = 100.
type XYZ struct {
	X, Y, Z float64
}

// LAB is CIE L*a*b* relative to D65. L is in [0, 100]; a and b are signed.
type LAB struct {
	L, A, B float64
}

// LCH is the cylindrical form of LAB. H is in degrees [0, 360).
type LCH struct {
	L, C, H float64
}

func (c XYZ) Model() Model { return ModelXYZ }
func (c LAB) Model() Model { return ModelLAB }
func (c LCH) Model() Model { return ModelLCH }

// D65 reference white, Y scaled to 100.
const (
	whiteX = 95.047
	whiteY = 100.0
	whiteZ = 108.883
)

const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// RGBToXYZ converts c to XYZ through linear sRGB.
func RGBToXYZ(c RGB) XYZ {
	r := srgbToLinear(unit(c.R))
	g := srgbToLinear(unit(c.G))
	b := srgbToLinear(unit(c.B))

	return XYZ{
		X: (0.4124564*r + 0.3575761*g + 0.1804375*b) * 100,
		Y: (0.2126729*r + 0.7151522*g + 0.0721750*b) * 100,
		Z: (0.0193339*r + 0.1191920*g + 0.9503041*b) * 100,
	}
}

// ToRGB converts c to a normalized RGB, clamping out-of-gamut channels.
func (c XYZ) ToRGB() RGB {
	x, y, z := c.X/100, c.Y/100, c.Z/100

	r := 3.2404542*x - 1.5371385*y - 0.4985314*z
	g := -0.9692660*x + 1.8760108*y + 0.0415560*z
	b := 0.0556434*x - 0.2040259*y + 1.0572252*z

	return RGB{}.withUnit(
		linearToSRGB(clamp01(r)),
		linearToSRGB(clamp01(g)),
		linearToSRGB(clamp01(b)),
	)
}

// RGBToLAB converts c to LAB.
func RGBToLAB(c RGB) LAB {
	return xyzToLAB(RGBToXYZ(c))
}

// ToRGB converts c to a normalized RGB.
func (c LAB) ToRGB() RGB {
	return labToXYZ(c).ToRGB()
}

// RGBToLCH converts c to LCH. Achromatic colors get hue 0.
func RGBToLCH(c RGB) LCH {
	return labToLCH(RGBToLAB(c))
}

// ToRGB converts c to a normalized RGB. Negative chroma is treated as 0.
func (c LCH) ToRGB() RGB {
	return lchToLAB(c).ToRGB()
}

func xyzToLAB(c XYZ) LAB {
	fx := labF(c.X / whiteX)
	fy := labF(c.Y / whiteY)
	fz := labF(c.Z / whiteZ)

	return LAB{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func labToXYZ(c LAB) XYZ {
	fy := (c.L + 16) / 116
	fx := fy + c.A/500
	fz := fy - c.B/200

	var yr float64
	if c.L > labKappa*labEpsilon {
		yr = fy * fy * fy
	} else {
		yr = c.L / labKappa
	}

	return XYZ{
		X: labFInv(fx) * whiteX,
		Y: yr * whiteY,
		Z: labFInv(fz) * whiteZ,
	}
}

func labToLCH(c LAB) LCH {
	chroma := math.Sqrt(c.A*c.A + c.B*c.B)
	// The matrix rows do not sum to the white point exactly, which leaves
	// grays with a chroma around 1e-5 and an arbitrary hue.
	if chroma < 1e-4 {
		return LCH{L: c.L}
	}
	h := math.Atan2(c.B, c.A) * (180.0 / math.Pi)
	return LCH{L: c.L, C: chroma, H: wrapHue(h)}
}

func lchToLAB(c LCH) LAB {
	chroma := math.Max(c.C, 0)
	hRad := wrapHue(c.H) * (math.Pi / 180.0)
	return LAB{
		L: c.L,
		A: chroma * math.Cos(hRad),
		B: chroma * math.Sin(hRad),
	}
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labFInv(f float64) float64 {
	if f3 := f * f * f; f3 > labEpsilon {
		return f3
	}
	return (116*f - 16) / labKappa
}

// srgbToLinear converts a single sRGB component [0,1] to linear RGB.
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// linearToSRGB converts a single linear RGB component [0,1] to sRGB.
func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
