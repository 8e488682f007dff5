package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jsvensson/huekit"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// printer writes one color per line, led by a swatch when the terminal
// can show one.
type printer struct {
	w        io.Writer
	out      *termenv.Output
	swatches bool
}

func newPrinter(w io.Writer, swatches bool) *printer {
	return &printer{w: w, out: termenv.NewOutput(w), swatches: swatches}
}

func (p *printer) swatch(c *huekit.Color) string {
	if !p.swatches || p.out.Profile == termenv.Ascii {
		return ""
	}
	return p.out.String("    ").Background(p.out.Color(c.Hex(false))).String() + " "
}

// line prints the swatch, the hex and any extra columns.
func (p *printer) line(c *huekit.Color, extra ...string) {
	cols := append([]string{hexOf(c)}, extra...)
	fmt.Fprintln(p.w, p.swatch(c)+strings.Join(cols, "  "))
}

// hexOf includes alpha only when the color has one.
func hexOf(c *huekit.Color) string {
	return c.Hex(c.Alpha().IsSet())
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// field is one named component of a color record.
type field struct {
	Key   string
	Value float64
}

// fieldList keeps components in their conventional order in every output
// format.
type fieldList []field

func (l fieldList) String() string {
	parts := make([]string, len(l))
	for i, f := range l {
		parts[i] = f.Key + "=" + num(f.Value)
	}
	return strings.Join(parts, " ")
}

func (l fieldList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range l {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: f.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: num(f.Value)},
		)
	}
	return node, nil
}

func (l fieldList) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range l {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.WriteString(num(f.Value))
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// fieldsOf lists the components of a record; alpha is included when set.
func fieldsOf(s huekit.Space) fieldList {
	withAlpha := func(l fieldList, a huekit.Alpha) fieldList {
		if v, ok := a.Value(); ok {
			l = append(l, field{"a", v})
		}
		return l
	}

	switch r := s.(type) {
	case huekit.RGB:
		return withAlpha(fieldList{{"r", r.R}, {"g", r.G}, {"b", r.B}}, r.A)
	case huekit.HSL:
		return withAlpha(fieldList{{"h", r.H}, {"s", r.S}, {"l", r.L}}, r.A)
	case huekit.HSV:
		return withAlpha(fieldList{{"h", r.H}, {"s", r.S}, {"v", r.V}}, r.A)
	case huekit.CMYK:
		return fieldList{{"c", r.C}, {"m", r.M}, {"y", r.Y}, {"k", r.K}}
	case huekit.LAB:
		return fieldList{{"l", r.L}, {"a", r.A}, {"b", r.B}}
	case huekit.LCH:
		return fieldList{{"l", r.L}, {"c", r.C}, {"h", r.H}}
	case huekit.XYZ:
		return fieldList{{"x", r.X}, {"y", r.Y}, {"z", r.Z}}
	case huekit.YUV:
		return fieldList{{"y", r.Y}, {"u", r.U}, {"v", r.V}}
	}
	return nil
}
