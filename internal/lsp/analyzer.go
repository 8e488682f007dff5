package lsp

import (
	"errors"
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/huekit"
	"github.com/jsvensson/huekit/internal/palette"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

// PaletteSuffix marks documents that are checked as palette files.
const PaletteSuffix = ".huekit.hcl"

// hexPattern matches #rgb, #rgba, #rrggbb and #rrggbbaa not followed by
// another word character.
var hexPattern = regexp.MustCompile(`#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3,4})\b`)

// AnalysisResult holds everything known about one document.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Palette     *palette.Palette          // last palette that resolved, or nil
	Symbols     map[string]protocol.Range // "colors.brand" -> definition range
	Colors      []ColorLocation
}

// ColorLocation records a resolved color at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Color *huekit.Color
	Name  string // "colors.<name>" for computed palette entries
	IsRef bool   // true if the color is computed rather than a hex literal
}

// IsPaletteFile reports whether the URI or filename is a palette file.
func IsPaletteFile(name string) bool {
	return strings.HasSuffix(name, PaletteSuffix)
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
}

// hclRangeToLSP converts an HCL range to an LSP range.
func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze finds every hex literal in content. Palette files are also
// resolved, which adds diagnostics, symbols and computed colors.
func Analyze(filename, content string) *AnalysisResult {
	result := &AnalysisResult{
		Symbols: make(map[string]protocol.Range),
		Colors:  scanHexLiterals(content),
	}
	if !IsPaletteFile(filename) {
		return result
	}

	p, err := palette.ParseSource(filename, []byte(content))
	if err != nil {
		var diags hcl.Diagnostics
		if errors.As(err, &diags) {
			for _, d := range diags {
				result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
			}
		} else {
			result.addError(hcl.Range{
				Filename: filename,
				Start:    hcl.Pos{Line: 1, Column: 1},
				End:      hcl.Pos{Line: 1, Column: 1},
			}, err.Error())
		}
		return result
	}
	result.Palette = p

	for _, e := range p.Colors {
		name := "colors." + e.Name
		result.Symbols[name] = hclRangeToLSP(e.Range)

		if isHexLiteral(content, e.ValueRange) {
			continue
		}
		result.Colors = append(result.Colors, ColorLocation{
			Range: hclRangeToLSP(e.ValueRange),
			Color: e.Color,
			Name:  name,
			IsRef: true,
		})
	}

	return result
}

// scanHexLiterals finds hex colors line by line. A literal that is the
// whole of a quoted string has the quotes included in its range.
func scanHexLiterals(content string) []ColorLocation {
	var out []ColorLocation
	for i, line := range strings.Split(content, "\n") {
		for _, m := range hexPattern.FindAllStringIndex(line, -1) {
			c, err := huekit.Parse(line[m[0]:m[1]])
			if err != nil {
				continue
			}
			start, end := m[0], m[1]
			if start > 0 && end < len(line) && line[start-1] == '"' && line[end] == '"' {
				start--
				end++
			}
			out = append(out, ColorLocation{
				Range: protocol.Range{
					Start: protocol.Position{Line: uint32(i), Character: uint32(start)},
					End:   protocol.Position{Line: uint32(i), Character: uint32(end)},
				},
				Color: c,
			})
		}
	}
	return out
}

// isHexLiteral reports whether the source at rng is a quoted hex string.
func isHexLiteral(content string, rng hcl.Range) bool {
	if rng.End.Byte > len(content) || rng.Start.Byte >= rng.End.Byte {
		return false
	}
	text := strings.Trim(content[rng.Start.Byte:rng.End.Byte], `"`)
	return hexPattern.FindString(text) == text
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr("huekit"),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}

// addError adds an error-level diagnostic at the given range.
func (r *AnalysisResult) addError(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagError,
		Source:   strPtr("huekit"),
		Message:  msg,
	})
}

func strPtr(s string) *string {
	return &s
}
