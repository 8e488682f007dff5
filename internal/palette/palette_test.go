package palette

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/hcl/v2"
)

const sampleHCL = `
precision = 2

meta {
  name   = "Ocean"
  author = "Test Author"
}

colors {
  brand = "#1D3557"
  sky   = { h = 200, s = 70, l = 55 }
  ink   = darken(colors.brand, 20)
  red   = rgb(255, 0, 0)
  glass = "#ffffff80"
}

harmony "primary" {
  base   = colors.red
  scheme = "triadic"
}

harmony "steps" {
  base   = colors.red
  scheme = "shades"
  count  = 3
}
`

func writeTempHCL(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "ocean.huekit.hcl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func hexes(p *Palette) map[string]string {
	out := make(map[string]string, len(p.Colors))
	for _, e := range p.Colors {
		out[e.Name] = e.Color.Hex(e.Color.Alpha().IsSet())
	}
	return out
}

func TestParse(t *testing.T) {
	p, err := Parse(writeTempHCL(t, sampleHCL))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if p.Meta.Name != "Ocean" || p.Meta.Author != "Test Author" {
		t.Errorf("Meta = %+v", p.Meta)
	}
	if p.Precision == nil || *p.Precision != 2 {
		t.Errorf("Precision = %v, want 2", p.Precision)
	}

	var names []string
	for _, e := range p.Colors {
		names = append(names, e.Name)
	}
	if diff := cmp.Diff([]string{"brand", "sky", "ink", "red", "glass"}, names); diff != "" {
		t.Errorf("color order (-want +got):\n%s", diff)
	}

	got := hexes(p)
	if got["brand"] != "#1d3557" {
		t.Errorf("brand = %s, want #1d3557", got["brand"])
	}
	if got["red"] != "#ff0000" {
		t.Errorf("red = %s, want #ff0000", got["red"])
	}
	if got["glass"] != "#ffffff80" {
		t.Errorf("glass = %s, want #ffffff80", got["glass"])
	}

	brand, _ := p.Color("brand")
	ink, _ := p.Color("ink")
	if ink.ToHSL().L >= brand.ToHSL().L {
		t.Errorf("ink %s should be darker than brand %s", ink, brand)
	}
	sky, _ := p.Color("sky")
	if h := sky.ToHSL().H; h < 199 || h > 201 {
		t.Errorf("sky hue = %v, want about 200", h)
	}
}

func TestParse_Harmonies(t *testing.T) {
	p, err := ParseSource("ocean.huekit.hcl", []byte(sampleHCL))
	if err != nil {
		t.Fatalf("ParseSource() error: %v", err)
	}

	tests := []struct {
		name string
		want []string
	}{
		{"primary", []string{"#ff0000", "#00ff00", "#0000ff"}},
		{"steps", []string{"#ff0000", "#800000", "#000000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := p.Harmony(tt.name)
			if !ok {
				t.Fatalf("harmony %q not found", tt.name)
			}
			var got []string
			for _, c := range h.Colors {
				got = append(got, c.Hex(false))
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("colors (-want +got):\n%s", diff)
			}
		})
	}

	h, _ := p.Harmony("primary")
	if h.Count != 5 || h.Angle != 30 {
		t.Errorf("defaults = angle %v count %v, want 30 and 5", h.Angle, h.Count)
	}
	if _, ok := p.Harmony("missing"); ok {
		t.Error("unexpected harmony \"missing\"")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "no colors block",
			src:     `meta { name = "x" }`,
			wantErr: "colors block",
		},
		{
			name: "forward reference",
			src: `colors {
  a = colors.b
  b = "#ffffff"
}`,
			wantErr: "Unsupported attribute",
		},
		{
			name:    "bad hex",
			src:     `colors { a = "#zzz" }`,
			wantErr: "Invalid color",
		},
		{
			name:    "record without space",
			src:     `colors { a = { q = 1 } }`,
			wantErr: "Invalid color",
		},
		{
			name: "unknown scheme",
			src: `colors { a = "#ffffff" }
harmony "x" {
  base   = colors.a
  scheme = "pentadic"
}`,
			wantErr: "unknown harmony scheme",
		},
		{
			name: "count too small",
			src: `colors { a = "#ffffff" }
harmony "x" {
  base   = colors.a
  scheme = "tints"
  count  = 1
}`,
			wantErr: "count must be at least 2",
		},
		{
			name: "duplicate harmony",
			src: `colors { a = "#ffffff" }
harmony "x" {
  base   = colors.a
  scheme = "square"
}
harmony "x" {
  base   = colors.a
  scheme = "triadic"
}`,
			wantErr: "defined twice",
		},
		{
			name:    "negative precision",
			src:     "precision = -1\ncolors { a = \"#ffffff\" }",
			wantErr: "precision",
		},
		{
			name: "block inside colors",
			src: `colors {
  nested {
    a = "#ffffff"
  }
}`,
			wantErr: "cannot contain blocks",
		},
		{
			name:    "unknown attribute",
			src:     "shade = 3\ncolors { a = \"#ffffff\" }",
			wantErr: "shade",
		},
		{
			name:    "syntax error",
			src:     `colors {`,
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSource("test.hcl", []byte(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
			var diags hcl.Diagnostics
			if !errors.As(err, &diags) {
				t.Errorf("error %T should be hcl.Diagnostics", err)
			}
		})
	}
}

func TestParse_DiagnosticRange(t *testing.T) {
	src := "colors {\n  a = \"#ffffff\"\n  b = \"#nope\"\n}\n"
	_, err := ParseSource("test.hcl", []byte(src))
	var diags hcl.Diagnostics
	if !errors.As(err, &diags) {
		t.Fatalf("error = %v, want hcl.Diagnostics", err)
	}
	if diags[0].Subject == nil || diags[0].Subject.Start.Line != 3 {
		t.Errorf("diagnostic subject = %v, want line 3", diags[0].Subject)
	}
}

func TestParse_MissingFile(t *testing.T) {
	if _, err := Parse(filepath.Join(t.TempDir(), "nope.hcl")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestEncode_Roundtrip(t *testing.T) {
	p, err := ParseSource("ocean.huekit.hcl", []byte(sampleHCL))
	if err != nil {
		t.Fatal(err)
	}

	out := Encode(p)
	if !strings.Contains(string(out), `brand = "#1d3557"`) {
		t.Errorf("encoded output missing resolved brand:\n%s", out)
	}

	again, err := ParseSource("encoded.hcl", out)
	if err != nil {
		t.Fatalf("re-parsing encoded palette: %v\n%s", err, out)
	}
	if diff := cmp.Diff(hexes(p), hexes(again)); diff != "" {
		t.Errorf("colors changed after encode (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(p.Meta, again.Meta); diff != "" {
		t.Errorf("meta changed after encode (-before +after):\n%s", diff)
	}
	if *again.Precision != 2 {
		t.Errorf("precision = %d, want 2", *again.Precision)
	}
	for _, h := range p.Harmonies {
		h2, ok := again.Harmony(h.Name)
		if !ok {
			t.Fatalf("harmony %q lost", h.Name)
		}
		if len(h2.Colors) != len(h.Colors) || h2.Scheme != h.Scheme || h2.Count != h.Count {
			t.Errorf("harmony %q changed: %+v", h.Name, h2)
		}
	}
}

func TestEncode_Minimal(t *testing.T) {
	p, err := ParseSource("min.hcl", []byte(`colors { a = "#FFF" }`))
	if err != nil {
		t.Fatal(err)
	}
	want := "colors {\n  a = \"#ffffff\"\n}\n"
	if got := string(Encode(p)); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already formatted stays same",
			input:    "meta {\n  name = \"Test\"\n}\n",
			expected: "meta {\n  name = \"Test\"\n}\n",
		},
		{
			name:     "hex lowercased",
			input:    "colors {\n  a = \"#FFAA00\"\n}\n",
			expected: "colors {\n  a = \"#ffaa00\"\n}\n",
		},
		{
			name:     "other strings untouched",
			input:    "meta {\n  name = \"ABC\"\n}\n",
			expected: "meta {\n  name = \"ABC\"\n}\n",
		},
		{
			name:     "multiple blank lines collapsed",
			input:    "meta {\n  name = \"x\"\n}\n\n\n\ncolors {\n  a = \"#FFF\"\n}\n",
			expected: "meta {\n  name = \"x\"\n}\n\ncolors {\n  a = \"#fff\"\n}\n",
		},
		{
			name:     "blank line after open brace removed",
			input:    "colors {\n\n  a = \"#fff\"\n}\n",
			expected: "colors {\n  a = \"#fff\"\n}\n",
		},
		{
			name:     "blank line before close brace removed",
			input:    "colors {\n  a = \"#fff\"\n\n}\n",
			expected: "colors {\n  a = \"#fff\"\n}\n",
		},
		{
			name:     "empty content",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.input)
			if err != nil {
				t.Fatalf("Format() error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}
