package color

// Model identifies one of the supported color spaces.
type Model int

const (
	ModelRGB Model = iota
	ModelHSL
	ModelHSV
	ModelCMYK
	ModelLAB
	ModelLCH
	ModelXYZ
	ModelYUV
)

var modelNames = [...]string{
	ModelRGB:  "rgb",
	ModelHSL:  "hsl",
	ModelHSV:  "hsv",
	ModelCMYK: "cmyk",
	ModelLAB:  "lab",
	ModelLCH:  "lch",
	ModelXYZ:  "xyz",
	ModelYUV:  "yuv",
}

func (m Model) String() string {
	if m < 0 || int(m) >= len(modelNames) {
		return "unknown"
	}
	return modelNames[m]
}

// Models lists every supported space in declaration order.
func Models() []Model {
	return []Model{ModelRGB, ModelHSL, ModelHSV, ModelCMYK, ModelLAB, ModelLCH, ModelXYZ, ModelYUV}
}

// ParseModel looks up a space by its lowercase name.
func ParseModel(name string) (Model, bool) {
	for i, n := range modelNames {
		if n == name {
			return Model(i), true
		}
	}
	return 0, false
}

// Space is implemented by every color space record. ToRGB returns a
// normalized RGB: integer channels clamped to [0, 255].
type Space interface {
	Model() Model
	ToRGB() RGB
}

// Convert converts s into model m, pivoting through RGB.
func Convert(s Space, m Model) Space {
	rgb := s.ToRGB()
	switch m {
	case ModelHSL:
		return RGBToHSL(rgb)
	case ModelHSV:
		return RGBToHSV(rgb)
	case ModelCMYK:
		return RGBToCMYK(rgb)
	case ModelLAB:
		return RGBToLAB(rgb)
	case ModelLCH:
		return RGBToLCH(rgb)
	case ModelXYZ:
		return RGBToXYZ(rgb)
	case ModelYUV:
		return RGBToYUV(rgb)
	default:
		return rgb
	}
}
