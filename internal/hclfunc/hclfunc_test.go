package hclfunc

import (
	"errors"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/huekit"
	"github.com/zclconf/go-cty/cty"
)

func eval(t *testing.T, src string) (cty.Value, hcl.Diagnostics) {
	t.Helper()
	expr, diags := hclsyntax.ParseExpression([]byte(src), "test.hcl", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		t.Fatalf("parse %q: %s", src, diags.Error())
	}
	return expr.Value(&hcl.EvalContext{Functions: Functions()})
}

func TestFunctions(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want cty.Value
	}{
		{"lighten", `lighten("#ff0000", 25)`, cty.StringVal("#ff8080")},
		{"darken", `darken("#ff0000", 25)`, cty.StringVal("#800000")},
		{"desaturate", `desaturate("#ff0000", 100)`, cty.StringVal("#808080")},
		{"saturate clamps", `saturate("#ff0000", 40)`, cty.StringVal("#ff0000")},
		{"rotate", `rotate("#ff0000", 120)`, cty.StringVal("#00ff00")},
		{"fade", `fade("#000000", -0.5)`, cty.StringVal("#00000080")},
		{"alpha", `alpha("#ff0000", 0)`, cty.StringVal("#ff000000")},
		{"mix", `mix("#000000", "#ffffff", 0.5)`, cty.StringVal("#808080")},
		{"invert", `invert("#eb6f92")`, cty.StringVal("#14906d")},
		{"grayscale", `grayscale("#ff0000")`, cty.StringVal("#4c4c4c")},
		{"complement", `complement("#ff0000")`, cty.StringVal("#00ffff")},
		{"rgb", `rgb(255, 0, 0)`, cty.StringVal("#ff0000")},
		{"hsl", `hsl(120, 100, 50)`, cty.StringVal("#00ff00")},
		{"color hsv", `color({ h = 240, s = 100, v = 100 })`, cty.StringVal("#0000ff")},
		{"color hex", `color("#FFF")`, cty.StringVal("#ffffff")},
		{"brightness", `brightness("#ffffff")`, cty.NumberIntVal(255)},
		{"is_light", `is_light("#000000")`, cty.False},
		{"harmony", `harmony("#ff0000", "triadic")`, cty.ListVal([]cty.Value{
			cty.StringVal("#ff0000"),
			cty.StringVal("#00ff00"),
			cty.StringVal("#0000ff"),
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := eval(t, tt.expr)
			if diags.HasErrors() {
				t.Fatalf("unexpected error: %s", diags.Error())
			}
			if !got.RawEquals(tt.want) {
				t.Errorf("%s = %#v, want %#v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestFunctions_Errors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"bad hex", `lighten("nope", 10)`},
		{"bad second color", `mix("#000000", "#zzz", 0.5)`},
		{"mix amount", `mix("#000000", "#ffffff", 2)`},
		{"unknown scheme", `harmony("#ffffff", "pentadic")`},
		{"record without space", `color({ q = 1 })`},
		{"record with string field", `color({ r = "x", g = 0, b = 0 })`},
		{"wrong arity", `invert("#ffffff", 1)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := eval(t, tt.expr)
			if !diags.HasErrors() {
				t.Errorf("%s: expected error", tt.expr)
			}
		})
	}
}

func TestFromValue(t *testing.T) {
	c, err := FromValue(cty.ObjectVal(map[string]cty.Value{
		"r": cty.NumberIntVal(49),
		"g": cty.NumberIntVal(116),
		"b": cty.NumberIntVal(143),
		"a": cty.NumberFloatVal(0.5),
	}))
	if err != nil {
		t.Fatal(err)
	}
	if c.Hex(true) != "#31748f80" {
		t.Errorf("FromValue() = %s, want #31748f80", c.Hex(true))
	}

	_, err = FromValue(cty.NumberIntVal(3))
	if !errors.Is(err, huekit.ErrFormat) {
		t.Errorf("FromValue(number) error = %v, want ErrFormat", err)
	}
	_, err = FromValue(cty.NullVal(cty.String))
	if !errors.Is(err, huekit.ErrFormat) {
		t.Errorf("FromValue(null) error = %v, want ErrFormat", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(Functions()) {
		t.Fatalf("Names() has %d entries, Functions() %d", len(names), len(Functions()))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names() not sorted at %q, %q", names[i-1], names[i])
		}
	}
}
