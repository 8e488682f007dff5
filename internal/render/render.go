// Package render exports a palette through Go text templates.
package render

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/jsvensson/huekit"
	"github.com/jsvensson/huekit/internal/palette"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("huekit.render")

// Renderer loads and executes Go templates against a resolved palette.
type Renderer struct {
	TemplatesDir string
	OutputDir    string
	Only         []string // if non-empty, only render these template basenames
}

// Run loads all .tmpl files from the templates directory, executes them
// with the palette, and writes one output file per template.
func (r *Renderer) Run(p *palette.Palette) error {
	pattern := filepath.Join(r.TemplatesDir, "*.tmpl")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("globbing templates: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no .tmpl files found in %s", r.TemplatesDir)
	}

	if err := os.MkdirAll(r.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	data := buildTemplateData(p)

	for _, tmplPath := range matches {
		baseName := strings.TrimSuffix(filepath.Base(tmplPath), ".tmpl")
		if !r.shouldRender(baseName) {
			continue
		}
		if err := r.renderTemplate(tmplPath, baseName, data); err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) shouldRender(name string) bool {
	if len(r.Only) == 0 {
		return true
	}
	return slices.Contains(r.Only, name)
}

func (r *Renderer) renderTemplate(tmplPath, outputName string, data templateData) error {
	tmpl, err := template.New(filepath.Base(tmplPath)).Funcs(data.FuncMap).ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	outPath := filepath.Join(r.OutputDir, outputName)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", outPath, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("executing template %s: %w", tmplPath, err)
	}

	log.Infof("wrote %s", outPath)
	return nil
}

// templateData is the data passed to templates.
type templateData struct {
	Meta      palette.Meta
	Colors    map[string]*huekit.Color
	Entries   []palette.Entry
	Harmonies map[string][]*huekit.Color
	FuncMap   template.FuncMap
}

func buildTemplateData(p *palette.Palette) templateData {
	prec := huekit.Precision()
	if p.Precision != nil {
		prec = *p.Precision
	}

	colors := make(map[string]*huekit.Color, len(p.Colors))
	for _, e := range p.Colors {
		colors[e.Name] = e.Color
	}
	harmonies := make(map[string][]*huekit.Color, len(p.Harmonies))
	for _, h := range p.Harmonies {
		harmonies[h.Name] = h.Colors
	}

	num := func(v float64) string {
		return formatNumber(v, prec)
	}

	return templateData{
		Meta:      p.Meta,
		Colors:    colors,
		Entries:   p.Colors,
		Harmonies: harmonies,
		FuncMap: template.FuncMap{
			"hex": func(c *huekit.Color) string {
				return c.Hex(false)
			},
			"hexa": func(c *huekit.Color) string {
				return c.Hex(true)
			},
			"hexBare": func(c *huekit.Color) string {
				return strings.TrimPrefix(c.Hex(false), "#")
			},
			"rgb": func(c *huekit.Color) string {
				if a, ok := c.Alpha().Value(); ok {
					return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R(), c.G(), c.B(), num(a))
				}
				return fmt.Sprintf("rgb(%d, %d, %d)", c.R(), c.G(), c.B())
			},
			"hsl": func(c *huekit.Color) string {
				v := c.ToHSL()
				return fmt.Sprintf("hsl(%s, %s%%, %s%%)", num(v.H), num(v.S), num(v.L))
			},
			"color": func(name string) (*huekit.Color, error) {
				c, ok := colors[name]
				if !ok {
					return nil, fmt.Errorf("color not found: %s", name)
				}
				return c, nil
			},
			"harmony": func(name string) ([]*huekit.Color, error) {
				h, ok := harmonies[name]
				if !ok {
					return nil, fmt.Errorf("harmony not found: %s", name)
				}
				return h, nil
			},
		},
	}
}

// formatNumber rounds v to prec decimal digits and drops trailing zeros.
func formatNumber(v float64, prec int) string {
	m := math.Pow10(prec)
	r := math.Round(v*m) / m
	if r == 0 {
		r = 0 // no "-0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
