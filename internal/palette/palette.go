// Package palette reads and writes palette files: HCL documents with a
// colors block, optional harmony blocks and metadata.
package palette

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/huekit"
	"github.com/jsvensson/huekit/internal/hclfunc"
	"github.com/zclconf/go-cty/cty"
)

// Palette is a fully resolved palette file.
type Palette struct {
	Meta Meta
	// Precision is the rounding precision requested by the file, or nil.
	Precision *int
	Colors    []Entry
	Harmonies []Harmony
}

// Meta holds palette metadata.
type Meta struct {
	Name        string `hcl:"name,optional"`
	Author      string `hcl:"author,optional"`
	Description string `hcl:"description,optional"`
}

// Entry is a named color in source order.
type Entry struct {
	Name       string
	Color      *huekit.Color
	Range      hcl.Range // whole attribute
	ValueRange hcl.Range
}

// Harmony is a resolved harmony block.
type Harmony struct {
	Name   string
	Base   *huekit.Color
	Scheme string
	Angle  float64
	Count  int
	Colors []*huekit.Color
	Range  hcl.Range
}

// Color returns the named color.
func (p *Palette) Color(name string) (*huekit.Color, bool) {
	for _, e := range p.Colors {
		if e.Name == name {
			return e.Color, true
		}
	}
	return nil, false
}

// Harmony returns the named harmony.
func (p *Palette) Harmony(name string) (Harmony, bool) {
	for _, h := range p.Harmonies {
		if h.Name == name {
			return h, true
		}
	}
	return Harmony{}, false
}

// rawFile is the first pass: structure only, no evaluation context.
type rawFile struct {
	Precision *int         `hcl:"precision,optional"`
	Meta      *Meta        `hcl:"meta,block"`
	Colors    *colorsBlock `hcl:"colors,block"`
	Harmonies []rawHarmony `hcl:"harmony,block"`
}

type colorsBlock struct {
	Entries hcl.Body `hcl:",remain"`
}

type rawHarmony struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// harmonyAttrs is decoded from a harmony block once colors are known.
// Colors is written by Encode and recomputed on parse.
type harmonyAttrs struct {
	Base   cty.Value `hcl:"base"`
	Scheme string    `hcl:"scheme"`
	Angle  *float64  `hcl:"angle,optional"`
	Count  *int      `hcl:"count,optional"`
	Colors []string  `hcl:"colors,optional"`
}

// Parse reads and resolves a palette file.
func Parse(path string) (*Palette, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}
	return ParseSource(path, src)
}

// ParseSource resolves a palette from memory. HCL and evaluation problems
// are returned as hcl.Diagnostics, which carry source ranges.
func ParseSource(filename string, src []byte) (*Palette, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, diags
	}

	var raw rawFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, diags
	}

	p := &Palette{}
	if raw.Meta != nil {
		p.Meta = *raw.Meta
	}
	if raw.Precision != nil {
		if *raw.Precision < 0 {
			return nil, errorAt(attrRange(file.Body, "precision"), "Invalid precision", "precision must not be negative")
		}
		p.Precision = raw.Precision
	}

	if raw.Colors == nil {
		return nil, errorAt(file.Body.(*hclsyntax.Body).SrcRange, "Missing colors block", "a palette needs a colors block")
	}
	body, ok := raw.Colors.Entries.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("colors block is not an hclsyntax.Body")
	}

	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
		Functions: hclfunc.Functions(),
	}
	colors, err := parseColors(body, ctx)
	if err != nil {
		return nil, err
	}
	p.Colors = colors

	for _, rh := range raw.Harmonies {
		h, err := parseHarmony(rh, ctx)
		if err != nil {
			return nil, err
		}
		if _, dup := p.Harmony(h.Name); dup {
			return nil, errorAt(h.Range, "Duplicate harmony", fmt.Sprintf("harmony %q is defined twice", h.Name))
		}
		p.Harmonies = append(p.Harmonies, h)
	}

	return p, nil
}

// parseColors evaluates color attributes in source order. Each attribute
// sees the colors defined above it as colors.<name>.
func parseColors(body *hclsyntax.Body, ctx *hcl.EvalContext) ([]Entry, error) {
	if len(body.Blocks) > 0 {
		b := body.Blocks[0]
		return nil, errorAt(b.DefRange(), "Unexpected block", fmt.Sprintf("colors cannot contain blocks, found %q", b.Type))
	}

	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, attr := range body.Attributes {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})

	entries := make([]Entry, 0, len(attrs))
	known := make(map[string]cty.Value, len(attrs))
	ctx.Variables["colors"] = cty.EmptyObjectVal

	for _, attr := range attrs {
		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			return nil, diags
		}
		c, err := hclfunc.FromValue(val)
		if err != nil {
			return nil, errorAt(attr.Expr.Range(), "Invalid color", fmt.Sprintf("colors.%s: %s", attr.Name, err))
		}
		entries = append(entries, Entry{
			Name:       attr.Name,
			Color:      c,
			Range:      attr.SrcRange,
			ValueRange: attr.Expr.Range(),
		})

		known[attr.Name] = cty.StringVal(c.Hex(c.Alpha().IsSet()))
		ctx.Variables["colors"] = cty.ObjectVal(known)
	}
	return entries, nil
}

func parseHarmony(rh rawHarmony, ctx *hcl.EvalContext) (Harmony, error) {
	var attrs harmonyAttrs
	if diags := gohcl.DecodeBody(rh.Body, ctx, &attrs); diags.HasErrors() {
		return Harmony{}, diags
	}

	h := Harmony{
		Name:   rh.Name,
		Scheme: attrs.Scheme,
		Angle:  huekit.DefaultSchemeAngle(attrs.Scheme),
		Count:  huekit.DefaultCount,
	}
	if sb, ok := rh.Body.(*hclsyntax.Body); ok {
		h.Range = sb.SrcRange
	}
	if attrs.Angle != nil {
		h.Angle = *attrs.Angle
	}
	if attrs.Count != nil {
		h.Count = *attrs.Count
	}

	base, err := hclfunc.FromValue(attrs.Base)
	if err != nil {
		return Harmony{}, errorAt(attrRange(rh.Body, "base"), "Invalid color", fmt.Sprintf("harmony %q base: %s", rh.Name, err))
	}
	h.Base = base

	colors, err := base.Harmony(h.Scheme, h.Angle, h.Count)
	if err != nil {
		return Harmony{}, errorAt(attrRange(rh.Body, "scheme"), "Invalid harmony", fmt.Sprintf("harmony %q: %s", rh.Name, err))
	}
	h.Colors = colors
	return h, nil
}

func attrRange(body hcl.Body, name string) hcl.Range {
	sb, ok := body.(*hclsyntax.Body)
	if !ok {
		return hcl.Range{}
	}
	if attr, ok := sb.Attributes[name]; ok {
		return attr.SrcRange
	}
	return sb.SrcRange
}

func errorAt(rng hcl.Range, summary, detail string) hcl.Diagnostics {
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  rng.Ptr(),
	}}
}
