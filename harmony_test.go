package huekit

import (
	"errors"
	"math"
	"testing"
)

func hues(colors []*Color) []float64 {
	out := make([]float64, len(colors))
	for i, c := range colors {
		out[i] = c.ToHSL().H
	}
	return out
}

func assertHues(t *testing.T, got []*Color, want ...float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d colors, want %d", len(got), len(want))
	}
	for i, h := range hues(got) {
		if math.Abs(h-want[i]) > 0.5 && math.Abs(h-want[i]) < 359.5 {
			t.Errorf("color %d (%s) hue = %v, want %v", i, got[i], h, want[i])
		}
	}
}

func TestComplementary(t *testing.T) {
	red := MustParse("#ff0000")
	pair := red.Complementary()
	assertHues(t, pair[:], 0, 180)
	if pair[1].Hex(false) != "#00ffff" {
		t.Errorf("complement of red = %s, want #00ffff", pair[1])
	}
	if !pair[0].Equal(red) {
		t.Errorf("first element = %s, want the base", pair[0])
	}
	if pair[0] == red {
		t.Error("first element should be a copy, not the base itself")
	}
}

func TestComplementary_HueDelta(t *testing.T) {
	for _, hex := range []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00"} {
		pair := MustParse(hex).Complementary()
		delta := math.Mod(pair[1].ToHSL().H-pair[0].ToHSL().H+360, 360)
		if delta != 180 {
			t.Errorf("%s complementary hue delta = %v, want 180", hex, delta)
		}
	}
}

func TestFixedHarmonies(t *testing.T) {
	base := MustParse("#ff0000")

	tests := []struct {
		name string
		got  []*Color
		want []float64
	}{
		{"triadic", sl3(base.Triadic()), []float64{0, 120, 240}},
		{"analogous", sl3(base.Analogous(DefaultAngle)), []float64{0, 330, 30}},
		{"analogous 45", sl3(base.Analogous(45)), []float64{0, 315, 45}},
		{"split complementary", sl3(base.SplitComplementary(DefaultAngle)), []float64{0, 150, 210}},
		{"tetradic", sl4(base.Tetradic(DefaultTetradicAngle)), []float64{0, 60, 180, 240}},
		{"square", sl4(base.Square()), []float64{0, 90, 180, 270}},
		{"double split", sl5(base.DoubleSplitComplementary(DefaultAngle)), []float64{0, 330, 30, 150, 210}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertHues(t, tt.got, tt.want...)
			for _, c := range tt.got {
				hsl := c.ToHSL()
				if math.Abs(hsl.S-100) > 0.5 || math.Abs(hsl.L-50) > 0.5 {
					t.Errorf("%s: saturation/lightness drifted to %v/%v", c, hsl.S, hsl.L)
				}
			}
		})
	}
}

func sl3(a [3]*Color) []*Color { return a[:] }
func sl4(a [4]*Color) []*Color { return a[:] }
func sl5(a [5]*Color) []*Color { return a[:] }

func TestHarmony_KeepsAlpha(t *testing.T) {
	c := MustParse("#ff000080")
	for _, h := range c.Triadic() {
		if !h.Alpha().Equal(c.Alpha()) {
			t.Errorf("%s alpha = %v, want %v", h, h.Alpha(), c.Alpha())
		}
	}
}

func TestShades(t *testing.T) {
	base := MustParse("#3366cc")

	got, err := base.Shades(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("Shades(2) returned %d colors", len(got))
	}
	if !got[0].Equal(base) {
		t.Errorf("Shades(2)[0] = %s, want base %s", got[0], base)
	}
	if got[1].Hex(false) != "#000000" {
		t.Errorf("Shades(2)[1] = %s, want black", got[1])
	}

	got, err = base.Shades(DefaultCount)
	if err != nil {
		t.Fatal(err)
	}
	prev := math.Inf(1)
	for i, c := range got {
		l := c.ToHSL().L
		if l > prev {
			t.Errorf("shade %d lightness %v exceeds previous %v", i, l, prev)
		}
		prev = l
	}
}

func TestTints(t *testing.T) {
	base := MustParse("#3366cc")
	got, err := base.Tints(3)
	if err != nil {
		t.Fatal(err)
	}
	if got[2].Hex(false) != "#ffffff" {
		t.Errorf("last tint = %s, want white", got[2])
	}
	mid := got[1].ToHSL().L
	if mid <= base.ToHSL().L || mid >= 100 {
		t.Errorf("middle tint lightness = %v, want between base and 100", mid)
	}
}

func TestTones(t *testing.T) {
	base := MustParse("#3366cc")
	got, err := base.Tones(4)
	if err != nil {
		t.Fatal(err)
	}
	last := got[3].ToHSL()
	if last.S != 0 {
		t.Errorf("last tone saturation = %v, want 0", last.S)
	}
	if math.Abs(last.L-base.ToHSL().L) > 0.5 {
		t.Errorf("tones should keep lightness, got %v", last.L)
	}
}

func TestMonochromatic(t *testing.T) {
	base := MustParse("#3366cc")
	got, err := base.Monochromatic(DefaultCount)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != DefaultCount {
		t.Fatalf("got %d colors, want %d", len(got), DefaultCount)
	}
	if !got[0].Equal(base) {
		t.Errorf("first color = %s, want base", got[0])
	}
	seen := map[string]bool{}
	for _, c := range got {
		if seen[c.Hex(false)] {
			t.Errorf("duplicate color %s in %v", c, got)
		}
		seen[c.Hex(false)] = true
	}
}

func TestCountedHarmonies_RejectSmallCounts(t *testing.T) {
	base := MustParse("#3366cc")
	gens := map[string]func(int) ([]*Color, error){
		"monochromatic": base.Monochromatic,
		"shades":        base.Shades,
		"tints":         base.Tints,
		"tones":         base.Tones,
	}
	for name, gen := range gens {
		for _, count := range []int{1, 0, -3} {
			if _, err := gen(count); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("%s(%d) error = %v, want ErrInvalidArgument", name, count, err)
			}
		}
	}
}

func TestHarmony_Dispatch(t *testing.T) {
	base := MustParse("#ff0000")
	for _, scheme := range Schemes() {
		got, err := base.Harmony(scheme, DefaultSchemeAngle(scheme), DefaultCount)
		if err != nil {
			t.Errorf("Harmony(%q) error: %v", scheme, err)
			continue
		}
		if len(got) < 2 {
			t.Errorf("Harmony(%q) returned %d colors", scheme, len(got))
		}
	}

	if _, err := base.Harmony("pentadic", 0, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unknown scheme error = %v, want ErrInvalidArgument", err)
	}
	if _, err := base.Harmony("shades", 0, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("shades count 1 error = %v, want ErrInvalidArgument", err)
	}
}
