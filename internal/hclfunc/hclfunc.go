// Package hclfunc exposes color operations as HCL functions. Colors travel
// through HCL as hex strings.
package hclfunc

import (
	"fmt"
	"sort"

	"github.com/jsvensson/huekit"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Functions returns every color function keyed by its HCL name.
func Functions() map[string]function.Function {
	return map[string]function.Function{
		"lighten":    adjustFunc("Raises HSL lightness by amount (0 to 100)", (*huekit.Color).AdjustLightness, 1),
		"darken":     adjustFunc("Lowers HSL lightness by amount (0 to 100)", (*huekit.Color).AdjustLightness, -1),
		"saturate":   adjustFunc("Raises HSL saturation by amount (0 to 100)", (*huekit.Color).AdjustSaturation, 1),
		"desaturate": adjustFunc("Lowers HSL saturation by amount (0 to 100)", (*huekit.Color).AdjustSaturation, -1),
		"rotate":     adjustFunc("Rotates the hue by degrees", (*huekit.Color).AdjustHue, 1),
		"fade":       adjustFunc("Changes alpha by amount (-1 to 1)", (*huekit.Color).AdjustAlpha, 1),
		"alpha":      MakeAlphaFunc(),
		"mix":        MakeMixFunc(),
		"invert":     unaryFunc("Inverts each channel", (*huekit.Color).Invert),
		"grayscale":  unaryFunc("Converts to the gray of equal brightness", (*huekit.Color).Grayscale),
		"complement": unaryFunc("Returns the complementary color", func(c *huekit.Color) *huekit.Color {
			return c.Complementary()[1]
		}),
		"rgb":        recordFunc("Builds a color from RGB channels (0 to 255)", "r", "g", "b"),
		"hsl":        recordFunc("Builds a color from HSL (degrees, percent, percent)", "h", "s", "l"),
		"color":      MakeColorFunc(),
		"harmony":    MakeHarmonyFunc(),
		"brightness": MakeBrightnessFunc(),
		"is_light":   MakeIsLightFunc(),
	}
}

// Names returns the function names, sorted.
func Names() []string {
	fns := Functions()
	names := make([]string, 0, len(fns))
	for name := range fns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseArg(v cty.Value) (*huekit.Color, error) {
	c, err := huekit.Parse(v.AsString())
	if err != nil {
		return nil, function.NewArgError(0, err)
	}
	return c, nil
}

func number(v cty.Value) float64 {
	f, _ := v.AsBigFloat().Float64()
	return f
}

func hexVal(c *huekit.Color) cty.Value {
	return cty.StringVal(c.Hex(c.Alpha().IsSet()))
}

// adjustFunc wraps a (color, amount) operation. sign flips the amount so
// darken and desaturate can share the lighten and saturate methods.
func adjustFunc(desc string, op func(*huekit.Color, float64) *huekit.Color, sign float64) function.Function {
	return function.New(&function.Spec{
		Description: desc,
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "amount", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := parseArg(args[0])
			if err != nil {
				return cty.NilVal, err
			}
			return hexVal(op(c, sign*number(args[1]))), nil
		},
	})
}

func unaryFunc(desc string, op func(*huekit.Color) *huekit.Color) function.Function {
	return function.New(&function.Spec{
		Description: desc,
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := parseArg(args[0])
			if err != nil {
				return cty.NilVal, err
			}
			return hexVal(op(c)), nil
		},
	})
}

// recordFunc builds a color from three numeric parameters named after the
// fields of a record.
func recordFunc(desc string, keys ...string) function.Function {
	params := make([]function.Parameter, len(keys))
	for i, k := range keys {
		params[i] = function.Parameter{Name: k, Type: cty.Number}
	}
	return function.New(&function.Spec{
		Description: desc,
		Params:      params,
		Type:        function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			f := make(huekit.Fields, len(keys))
			for i, k := range keys {
				f[k] = number(args[i])
			}
			c, err := huekit.FromFields(f)
			if err != nil {
				return cty.NilVal, err
			}
			return hexVal(c), nil
		},
	})
}

// MakeAlphaFunc creates alpha("#hex", 0.5), which replaces the alpha.
func MakeAlphaFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Sets alpha (0 to 1)",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "alpha", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := parseArg(args[0])
			if err != nil {
				return cty.NilVal, err
			}
			return hexVal(c.SetAlpha(huekit.AlphaOf(number(args[1])))), nil
		},
	})
}

// MakeMixFunc creates mix(a, b, amount).
func MakeMixFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Mixes two colors; amount 0 is the first and 1 the second",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "other", Type: cty.String},
			{Name: "amount", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			a, err := parseArg(args[0])
			if err != nil {
				return cty.NilVal, err
			}
			b, err := huekit.Parse(args[1].AsString())
			if err != nil {
				return cty.NilVal, function.NewArgError(1, err)
			}
			mixed, err := a.Mix(b, number(args[2]))
			if err != nil {
				return cty.NilVal, function.NewArgError(2, err)
			}
			return hexVal(mixed), nil
		},
	})
}

// MakeColorFunc creates color({...}), which picks the space from the
// object's attribute names. A string argument is parsed as hex.
func MakeColorFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds a color from a hex string or a record such as { h = 200, s = 50, l = 40 }",
		Params: []function.Parameter{
			{Name: "value", Type: cty.DynamicPseudoType},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := FromValue(args[0])
			if err != nil {
				return cty.NilVal, function.NewArgError(0, err)
			}
			return hexVal(c), nil
		},
	})
}

// FromValue converts a cty string or object into a color.
func FromValue(v cty.Value) (*huekit.Color, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, fmt.Errorf("%w: color value is null or unknown", huekit.ErrFormat)
	}
	ty := v.Type()
	switch {
	case ty == cty.String:
		return huekit.Parse(v.AsString())
	case ty.IsObjectType() || ty.IsMapType():
		f := make(huekit.Fields)
		for it := v.ElementIterator(); it.Next(); {
			k, val := it.Element()
			if val.IsNull() || !val.Type().Equals(cty.Number) {
				return nil, fmt.Errorf("%w: field %q must be a number", huekit.ErrFormat, k.AsString())
			}
			f[k.AsString()] = number(val)
		}
		return huekit.FromFields(f)
	default:
		return nil, fmt.Errorf("%w: expected hex string or object, got %s", huekit.ErrFormat, ty.FriendlyName())
	}
}

// MakeHarmonyFunc creates harmony("#hex", "triadic"), returning a list of
// hex strings with the base first.
func MakeHarmonyFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Generates a color harmony as a list of hex strings",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "scheme", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.List(cty.String)),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := parseArg(args[0])
			if err != nil {
				return cty.NilVal, err
			}
			scheme := args[1].AsString()
			colors, err := c.Harmony(scheme, huekit.DefaultSchemeAngle(scheme), huekit.DefaultCount)
			if err != nil {
				return cty.NilVal, function.NewArgError(1, err)
			}
			return ListVal(colors), nil
		},
	})
}

// ListVal converts colors into a cty list of hex strings.
func ListVal(colors []*huekit.Color) cty.Value {
	vals := make([]cty.Value, len(colors))
	for i, c := range colors {
		vals[i] = hexVal(c)
	}
	return cty.ListVal(vals)
}

// MakeBrightnessFunc creates brightness("#hex").
func MakeBrightnessFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Returns perceived brightness (0 to 255)",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := parseArg(args[0])
			if err != nil {
				return cty.NilVal, err
			}
			return cty.NumberFloatVal(c.Brightness()), nil
		},
	})
}

// MakeIsLightFunc creates is_light("#hex") using the default threshold.
func MakeIsLightFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Reports whether a color is light",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.Bool),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := parseArg(args[0])
			if err != nil {
				return cty.NilVal, err
			}
			return cty.BoolVal(c.IsLight(huekit.DefaultLightThreshold)), nil
		},
	})
}
