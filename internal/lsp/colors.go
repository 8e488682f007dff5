package lsp

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jsvensson/huekit"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts a color to a protocol.Color (float32 0.0-1.0).
func colorToLSP(c *huekit.Color) protocol.Color {
	return protocol.Color{
		Red:   float32(c.R()) / 255.0,
		Green: float32(c.G()) / 255.0,
		Blue:  float32(c.B()) / 255.0,
		Alpha: float32(c.EffectiveAlpha()),
	}
}

// colorFromLSP converts a protocol.Color back. Alpha is only kept when it
// is below 1.
func colorFromLSP(pc protocol.Color) *huekit.Color {
	byteOf := func(v float32) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, float64(v))) * 255))
	}
	var a huekit.Alpha
	if pc.Alpha < 1 {
		a = huekit.AlphaOf(float64(pc.Alpha))
	}
	return huekit.FromRGBA(byteOf(pc.Red), byteOf(pc.Green), byteOf(pc.Blue), a)
}

// documentColors converts the analysis result's color locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation offers hex, hex with alpha, rgb() and hsl() spellings
// of the picked color. Literals get a TextEdit that replaces them; computed
// palette values such as colors.brand or darken(...) get none.
//
// Inside quotes the result is meant for palette files, so rgb and hsl are
// written as calls to the HCL functions of the same name.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	c := colorFromLSP(params.Color)
	text := extractText(content, params.Range)

	quoted := strings.HasPrefix(text, "\"")
	literal := quoted || strings.HasPrefix(text, "#")

	hsl := c.ToHSL()
	num := func(v float64) string {
		return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
	}

	type option struct {
		label, edit string
	}
	var options []option

	if !c.Alpha().IsSet() {
		options = append(options, option{c.Hex(false), c.Hex(false)})
	}
	options = append(options, option{c.Hex(true), c.Hex(true)})

	rgb := fmt.Sprintf("rgb(%d, %d, %d)", c.R(), c.G(), c.B())
	if a, ok := c.Alpha().Value(); ok {
		rgb = fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R(), c.G(), c.B(), num(a))
	}
	hslCSS := fmt.Sprintf("hsl(%s, %s%%, %s%%)", num(hsl.H), num(hsl.S), num(hsl.L))

	if quoted {
		// The HCL rgb() and hsl() take plain numbers; alpha() adds opacity.
		rgbHCL := fmt.Sprintf("rgb(%d, %d, %d)", c.R(), c.G(), c.B())
		hslHCL := fmt.Sprintf("hsl(%s, %s, %s)", num(hsl.H), num(hsl.S), num(hsl.L))
		if a, ok := c.Alpha().Value(); ok {
			rgbHCL = fmt.Sprintf("alpha(%s, %s)", rgbHCL, num(a))
			hslHCL = fmt.Sprintf("alpha(%s, %s)", hslHCL, num(a))
		}
		options = append(options, option{rgb, rgbHCL}, option{hslCSS, hslHCL})
	} else {
		options = append(options, option{rgb, rgb}, option{hslCSS, hslCSS})
	}

	presentations := make([]protocol.ColorPresentation, 0, len(options))
	for _, o := range options {
		p := protocol.ColorPresentation{Label: o.label}
		if literal {
			newText := o.edit
			if quoted && strings.HasPrefix(o.edit, "#") {
				newText = "\"" + o.edit + "\""
			}
			p.TextEdit = &protocol.TextEdit{
				Range:   params.Range,
				NewText: newText,
			}
		}
		presentations = append(presentations, p)
	}
	return presentations
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	uri := string(params.TextDocument.URI)
	result := s.getResult(uri)
	return documentColors(result), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.docs.Get(uri)
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}
