package lsp

import (
	"strings"

	"github.com/jsvensson/huekit/internal/palette"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// formatEdits returns a single edit replacing the whole document with its
// canonical form, or none when it is already formatted.
func formatEdits(content string) ([]protocol.TextEdit, error) {
	formatted, err := palette.Format(content)
	if err != nil {
		return nil, err
	}
	if formatted == content {
		return []protocol.TextEdit{}, nil
	}

	lines := strings.Split(content, "\n")
	last := len(lines) - 1
	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: uint32(last), Character: uint32(len(lines[last]))},
		},
		NewText: formatted,
	}}, nil
}

// textDocumentFormatting handles textDocument/formatting for palette files.
func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	uri := string(params.TextDocument.URI)
	if !IsPaletteFile(uri) {
		return nil, nil
	}

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	edits, err := formatEdits(content)
	if err != nil {
		log.Warningf("formatting %s: %s", uri, err)
		return nil, err
	}
	return edits, nil
}
