package color

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Fields is an untyped color record keyed by single-letter component names,
// as it arrives from JSON, HCL objects or the command line.
type Fields map[string]float64

// fieldSet is one entry of the disambiguation chain.
type fieldSet struct {
	keys  []string
	build func(f Fields) Space
}

// fieldSets is ordered by priority. Several spaces share field names (l in
// HSL, LAB and LCH; y in XYZ, YUV and CMYK), so the first match wins.
var fieldSets = []fieldSet{
	{[]string{"r", "g", "b"}, func(f Fields) Space {
		return RGB{R: f["r"], G: f["g"], B: f["b"], A: f.alpha()}
	}},
	{[]string{"x", "y", "z"}, func(f Fields) Space {
		return XYZ{X: f["x"], Y: f["y"], Z: f["z"]}
	}},
	{[]string{"y", "u", "v"}, func(f Fields) Space {
		return YUV{Y: f["y"], U: f["u"], V: f["v"]}
	}},
	{[]string{"h", "s", "l"}, func(f Fields) Space {
		return HSL{H: f["h"], S: f["s"], L: f["l"], A: f.alpha()}
	}},
	{[]string{"h", "s", "v"}, func(f Fields) Space {
		return HSV{H: f["h"], S: f["s"], V: f["v"], A: f.alpha()}
	}},
	{[]string{"c", "m", "y", "k"}, func(f Fields) Space {
		return CMYK{C: f["c"], M: f["m"], Y: f["y"], K: f["k"]}
	}},
	{[]string{"l", "a", "b"}, func(f Fields) Space {
		return LAB{L: f["l"], A: f["a"], B: f["b"]}
	}},
	{[]string{"l", "c", "h"}, func(f Fields) Space {
		return LCH{L: f["l"], C: f["c"], H: f["h"]}
	}},
}

// Space resolves the record to the first space whose field set is fully
// present, in the order RGB, XYZ, YUV, HSL, HSV, CMYK, LAB, LCH.
func (f Fields) Space() (Space, error) {
	for _, set := range fieldSets {
		if f.has(set.keys...) {
			return set.build(f), nil
		}
	}
	return nil, fmt.Errorf("%w: fields %s match no color space", ErrFormat, f.names())
}

func (f Fields) has(keys ...string) bool {
	for _, k := range keys {
		if _, ok := f[k]; !ok {
			return false
		}
	}
	return true
}

func (f Fields) alpha() Alpha {
	if v, ok := f["a"]; ok {
		return AlphaOf(v)
	}
	return Alpha{}
}

func (f Fields) names() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "{" + strings.Join(keys, ",") + "}"
}

// ParseFields parses "h=210, s=50, l=40" style text. Pairs are separated by
// commas or whitespace and keys are lowercased.
func ParseFields(s string) (Fields, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == ';'
	})
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: empty field list", ErrFormat)
	}

	f := make(Fields, len(parts))
	for _, p := range parts {
		key, val, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q is not key=value", ErrFormat, p)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		n, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: field %s: %v", ErrFormat, key, err)
		}
		if _, dup := f[key]; dup {
			return nil, fmt.Errorf("%w: duplicate field %s", ErrFormat, key)
		}
		f[key] = n
	}
	return f, nil
}

// FieldsOf flattens a space record back into Fields. Alpha is included only
// when it is set.
func FieldsOf(s Space) Fields {
	switch c := s.(type) {
	case RGB:
		return withAlpha(Fields{"r": c.R, "g": c.G, "b": c.B}, c.A)
	case HSL:
		return withAlpha(Fields{"h": c.H, "s": c.S, "l": c.L}, c.A)
	case HSV:
		return withAlpha(Fields{"h": c.H, "s": c.S, "v": c.V}, c.A)
	case CMYK:
		return Fields{"c": c.C, "m": c.M, "y": c.Y, "k": c.K}
	case LAB:
		return Fields{"l": c.L, "a": c.A, "b": c.B}
	case LCH:
		return Fields{"l": c.L, "c": c.C, "h": c.H}
	case XYZ:
		return Fields{"x": c.X, "y": c.Y, "z": c.Z}
	case YUV:
		return Fields{"y": c.Y, "u": c.U, "v": c.V}
	}
	return FieldsOf(s.ToRGB())
}

func withAlpha(f Fields, a Alpha) Fields {
	if v, ok := a.Value(); ok {
		f["a"] = v
	}
	return f
}
