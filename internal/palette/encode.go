package palette

import (
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/jsvensson/huekit"
	"github.com/zclconf/go-cty/cty"
)

// Encode writes p back as HCL with every color resolved to a hex literal.
// Harmony blocks also list their generated colors.
func Encode(p *Palette) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	if p.Precision != nil {
		root.SetAttributeValue("precision", cty.NumberIntVal(int64(*p.Precision)))
		root.AppendNewline()
	}

	if p.Meta != (Meta{}) {
		meta := root.AppendNewBlock("meta", nil).Body()
		setIfNotEmpty(meta, "name", p.Meta.Name)
		setIfNotEmpty(meta, "author", p.Meta.Author)
		setIfNotEmpty(meta, "description", p.Meta.Description)
		root.AppendNewline()
	}

	colors := root.AppendNewBlock("colors", nil).Body()
	for _, e := range p.Colors {
		colors.SetAttributeValue(e.Name, hexValue(e.Color))
	}

	for _, h := range p.Harmonies {
		root.AppendNewline()
		b := root.AppendNewBlock("harmony", []string{h.Name}).Body()
		b.SetAttributeValue("base", hexValue(h.Base))
		b.SetAttributeValue("scheme", cty.StringVal(h.Scheme))
		b.SetAttributeValue("angle", cty.NumberFloatVal(h.Angle))
		b.SetAttributeValue("count", cty.NumberIntVal(int64(h.Count)))

		list := make([]cty.Value, len(h.Colors))
		for i, c := range h.Colors {
			list[i] = hexValue(c)
		}
		b.SetAttributeValue("colors", cty.TupleVal(list))
	}

	return hclwrite.Format(f.Bytes())
}

func setIfNotEmpty(body *hclwrite.Body, name, value string) {
	if value != "" {
		body.SetAttributeValue(name, cty.StringVal(value))
	}
}

func hexValue(c *huekit.Color) cty.Value {
	return cty.StringVal(c.Hex(c.Alpha().IsSet()))
}

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)
var hexLiteral = regexp.MustCompile(`"#[0-9A-Fa-f]{3,8}"`)

// Format returns src in canonical HCL style with hex literals lowercased.
// It works on partial or invalid HCL, so editors can call it while typing.
func Format(src string) (string, error) {
	formatted := string(hclwrite.Format([]byte(src)))
	formatted = multipleBlankLines.ReplaceAllString(formatted, "\n\n")
	formatted = blankLineAfterOpenBrace.ReplaceAllString(formatted, "{\n")
	formatted = blankLineBeforeCloseBrace.ReplaceAllString(formatted, "\n${1}")
	formatted = hexLiteral.ReplaceAllStringFunc(formatted, strings.ToLower)
	return formatted, nil
}
