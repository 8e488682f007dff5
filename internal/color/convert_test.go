package color

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lucasb-eyer/go-colorful"
)

var approx = cmpopts.EquateApprox(0, 0.01)

var sample = []RGB{
	{R: 0, G: 0, B: 0},
	{R: 255, G: 255, B: 255},
	{R: 255, G: 0, B: 0},
	{R: 0, G: 255, B: 0},
	{R: 0, G: 0, B: 255},
	{R: 128, G: 128, B: 128},
	{R: 235, G: 111, B: 146},
	{R: 49, G: 116, B: 143},
	{R: 156, G: 207, B: 216},
	{R: 1, G: 2, B: 3},
	{R: 254, G: 1, B: 200},
}

func TestKnownValues(t *testing.T) {
	red := RGB{R: 255}

	tests := []struct {
		name string
		got  Space
		want Space
	}{
		{"hsl", RGBToHSL(red), HSL{H: 0, S: 100, L: 50}},
		{"hsv", RGBToHSV(red), HSV{H: 0, S: 100, V: 100}},
		{"cmyk", RGBToCMYK(red), CMYK{C: 0, M: 100, Y: 100, K: 0}},
		{"cmyk black", RGBToCMYK(RGB{}), CMYK{K: 100}},
		{"xyz", RGBToXYZ(red), XYZ{X: 41.2456, Y: 21.2673, Z: 1.9334}},
		{"xyz white", RGBToXYZ(RGB{R: 255, G: 255, B: 255}), XYZ{X: 95.047, Y: 100, Z: 108.883}},
		{"lab", RGBToLAB(red), LAB{L: 53.2408, A: 80.0925, B: 67.2032}},
		{"lab white", RGBToLAB(RGB{R: 255, G: 255, B: 255}), LAB{L: 100}},
		{"lch", RGBToLCH(red), LCH{L: 53.2408, C: 104.5518, H: 39.9990}},
		{"yuv", RGBToYUV(red), YUV{Y: 0.299, U: -0.14713, V: 0.615}},
		{"yuv white", RGBToYUV(RGB{R: 255, G: 255, B: 255}), YUV{Y: 1}},
		{"hsl teal", RGBToHSL(RGB{R: 49, G: 116, B: 143}), HSL{H: 197.234, S: 48.9583, L: 37.6471}},
	}

	opts := cmp.Options{cmpopts.EquateApprox(0, 0.05), cmp.AllowUnexported(Alpha{})}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got, opts); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoundtrip(t *testing.T) {
	for _, c := range sample {
		for _, m := range Models() {
			t.Run(FormatHex(c, false)+"/"+m.String(), func(t *testing.T) {
				got := Convert(c, m).ToRGB()
				if got.R != c.R || got.G != c.G || got.B != c.B {
					t.Errorf("%s roundtrip = %v %v %v, want %v %v %v", m, got.R, got.G, got.B, c.R, c.G, c.B)
				}
			})
		}
	}
}

func TestRoundtrip_KeepsAlpha(t *testing.T) {
	c := RGB{R: 10, G: 20, B: 30, A: AlphaOf(0.4)}
	if got := RGBToHSL(c).ToRGB(); !got.A.Equal(c.A) {
		t.Errorf("HSL alpha = %v, want %v", got.A, c.A)
	}
	if got := RGBToHSV(c).ToRGB(); !got.A.Equal(c.A) {
		t.Errorf("HSV alpha = %v, want %v", got.A, c.A)
	}
}

func TestAgainstColorful(t *testing.T) {
	for _, c := range sample {
		ref := colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}

		t.Run(FormatHex(c, false), func(t *testing.T) {
			l, a, b := ref.Lab()
			if diff := cmp.Diff(LAB{L: l * 100, A: a * 100, B: b * 100}, RGBToLAB(c), cmpopts.EquateApprox(0, 0.1)); diff != "" {
				t.Errorf("LAB mismatch (-colorful +ours):\n%s", diff)
			}

			h, s, v := ref.Hsv()
			got := RGBToHSV(c)
			if math.Abs(got.S-s*100) > 0.01 || math.Abs(got.V-v*100) > 0.01 {
				t.Errorf("HSV = %+v, colorful = %v %v %v", got, h, s, v)
			}
			if got.S > 0 && math.Abs(got.H-h) > 0.01 {
				t.Errorf("HSV hue = %v, colorful = %v", got.H, h)
			}

			hh, ss, ll := ref.Hsl()
			hsl := RGBToHSL(c)
			if math.Abs(hsl.S-ss*100) > 0.01 || math.Abs(hsl.L-ll*100) > 0.01 {
				t.Errorf("HSL = %+v, colorful = %v %v %v", hsl, hh, ss, ll)
			}
		})
	}
}

func TestAchromaticHue(t *testing.T) {
	for _, v := range []float64{0, 77, 128, 255} {
		gray := RGB{R: v, G: v, B: v}
		if h := RGBToHSL(gray).H; h != 0 {
			t.Errorf("HSL hue of gray %v = %v, want 0", v, h)
		}
		if h := RGBToHSV(gray).H; h != 0 {
			t.Errorf("HSV hue of gray %v = %v, want 0", v, h)
		}
		if h := RGBToLCH(gray).H; h != 0 {
			t.Errorf("LCH hue of gray %v = %v, want 0", v, h)
		}
	}
}

func TestToRGB_ClampsInputs(t *testing.T) {
	tests := []struct {
		name string
		in   Space
		want RGB
	}{
		{"hsl wraps hue", HSL{H: 480, S: 100, L: 50}, RGB{G: 255}},
		{"hsl negative hue", HSL{H: -240, S: 100, L: 50}, RGB{G: 255}},
		{"hsl clamps lightness", HSL{H: 0, S: 100, L: 150}, RGB{R: 255, G: 255, B: 255}},
		{"hsv clamps saturation", HSV{H: 240, S: -20, V: 100}, RGB{R: 255, G: 255, B: 255}},
		{"cmyk clamps", CMYK{C: 150, M: -5, Y: 0, K: 0}, RGB{G: 255, B: 255}},
		{"lab black", LAB{L: 0}, RGB{}},
		{"xyz out of gamut", XYZ{X: 200, Y: 200, Z: 200}, RGB{R: 255, G: 255, B: 255}},
		{"lch negative chroma", LCH{L: 100, C: -40, H: 20}, RGB{R: 255, G: 255, B: 255}},
		{"xyz negative", XYZ{X: -10, Y: -10, Z: -10}, RGB{}},
		{"yuv overflow", YUV{Y: 2}, RGB{R: 255, G: 255, B: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.ToRGB()
			if got.R != tt.want.R || got.G != tt.want.G || got.B != tt.want.B {
				t.Errorf("%+v.ToRGB() = %v %v %v, want %v %v %v", tt.in, got.R, got.G, got.B, tt.want.R, tt.want.G, tt.want.B)
			}
		})
	}
}

func TestConvert_PivotsThroughRGB(t *testing.T) {
	lab := LAB{L: 53.2408, A: 80.0925, B: 67.2032}
	got, ok := Convert(lab, ModelHSL).(HSL)
	if !ok {
		t.Fatalf("Convert returned %T, want HSL", Convert(lab, ModelHSL))
	}
	if diff := cmp.Diff(HSL{H: 0, S: 100, L: 50}, got, approx, cmp.AllowUnexported(Alpha{})); diff != "" {
		t.Errorf("LAB->HSL mismatch (-want +got):\n%s", diff)
	}
}
