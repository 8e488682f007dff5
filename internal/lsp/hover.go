package lsp

import (
	"context"
	"fmt"
	"strings"

	"github.com/jsvensson/huekit"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// posInRange returns true if pos is within the range [r.Start, r.End).
// The end position is exclusive.
func posInRange(pos protocol.Position, r protocol.Range) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character >= r.End.Character {
		return false
	}
	return true
}

// extractText extracts the source text at a given LSP range from document content.
func extractText(content string, r protocol.Range) string {
	lines := strings.Split(content, "\n")

	startLine := int(r.Start.Line)
	endLine := int(r.End.Line)

	if startLine >= len(lines) {
		return ""
	}
	if endLine >= len(lines) {
		endLine = len(lines) - 1
	}

	if startLine == endLine {
		line := lines[startLine]
		startChar := int(r.Start.Character)
		endChar := int(r.End.Character)
		if startChar > len(line) {
			startChar = len(line)
		}
		if endChar > len(line) {
			endChar = len(line)
		}
		return line[startChar:endChar]
	}

	// Multi-line range
	var parts []string
	for i := startLine; i <= endLine; i++ {
		line := lines[i]
		if i == startLine {
			startChar := int(r.Start.Character)
			if startChar > len(line) {
				startChar = len(line)
			}
			parts = append(parts, line[startChar:])
		} else if i == endLine {
			endChar := int(r.End.Character)
			if endChar > len(line) {
				endChar = len(line)
			}
			parts = append(parts, line[:endChar])
		} else {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, "\n")
}

// hover describes the color under the cursor: hex, RGB, HSL, LAB and the
// nearest name from namer. Returns nil if no color is found at the position.
func hover(ctx context.Context, result *AnalysisResult, content string, pos protocol.Position, namer huekit.Namer) *protocol.Hover {
	if result == nil {
		return nil
	}

	for _, cl := range result.Colors {
		if !posInRange(pos, cl.Range) {
			continue
		}

		c := cl.Color
		hsl := c.ToHSL()
		lab := c.ToLAB()

		var b strings.Builder
		if cl.IsRef {
			fmt.Fprintf(&b, "**%s**\n\n`%s`\n\n", cl.Name, extractText(content, cl.Range))
		}
		fmt.Fprintf(&b, "`%s` \u00b7 `rgb(%d, %d, %d)`", c.Hex(c.Alpha().IsSet()), c.R(), c.G(), c.B())
		fmt.Fprintf(&b, "\n\n`hsl(%.1f, %.1f%%, %.1f%%)` \u00b7 `lab(%.2f, %.2f, %.2f)`", hsl.H, hsl.S, hsl.L, lab.L, lab.A, lab.B)

		if namer != nil {
			info, err := c.Info(ctx, namer)
			if err != nil {
				log.Debugf("naming %s: %s", c, err)
			} else if info.Exact {
				fmt.Fprintf(&b, "\n\n*%s*", info.Name)
			} else {
				fmt.Fprintf(&b, "\n\nnear *%s* (`%s`)", info.Name, info.Hex)
			}
		}

		rng := cl.Range
		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: b.String(),
			},
			Range: &rng,
		}
	}

	return nil
}

// textDocumentHover handles textDocument/hover requests.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := string(params.TextDocument.URI)

	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	return hover(context.Background(), result, content, params.Position, s.namer), nil
}
