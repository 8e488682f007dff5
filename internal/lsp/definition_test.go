package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestColorRefAtCursor(t *testing.T) {
	line := "  dim  = darken(colors.love, 10)"
	tests := []struct {
		name string
		col  uint32
		want string
	}{
		{"on namespace", 16, "colors.love"},
		{"on dot", 22, "colors.love"},
		{"on name", 25, "colors.love"},
		{"on function", 10, ""},
		{"on number", 30, ""},
		{"on space", 27, ""},
		{"past end", 99, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colorRefAtCursor(line, tt.col); got != tt.want {
				t.Errorf("colorRefAtCursor(%d) = %q, want %q", tt.col, got, tt.want)
			}
		})
	}

	if got := colorRefAtCursor("x = colors.", 6); got != "" {
		t.Errorf("incomplete reference gave %q", got)
	}
	if got := colorRefAtCursor("x = colors.a.b", 6); got != "" {
		t.Errorf("nested path gave %q", got)
	}
}

func TestDefinition(t *testing.T) {
	result := Analyze(testURI, testPalette)

	loc := definition(result, testPalette, testURI, protocol.Position{Line: 3, Character: 24})
	if loc == nil {
		t.Fatal("expected a location for colors.love")
	}
	if loc.URI != testURI {
		t.Errorf("URI = %s", loc.URI)
	}
	if loc.Range != rng(2, 2, 18) {
		t.Errorf("range = %v, want the love attribute", loc.Range)
	}

	// colors.love inside the harmony block
	if loc := definition(result, testPalette, testURI, protocol.Position{Line: 7, Character: 14}); loc == nil || loc.Range.Start.Line != 2 {
		t.Errorf("harmony base reference = %v", loc)
	}
}

func TestDefinition_Misses(t *testing.T) {
	result := Analyze(testURI, testPalette)

	if loc := definition(result, testPalette, testURI, protocol.Position{Line: 1, Character: 3}); loc != nil {
		t.Errorf("attribute name gave %v", loc)
	}
	if loc := definition(result, testPalette, testURI, protocol.Position{Line: 50}); loc != nil {
		t.Errorf("line past the end gave %v", loc)
	}
	if loc := definition(nil, testPalette, testURI, protocol.Position{Line: 3, Character: 24}); loc != nil {
		t.Errorf("nil result gave %v", loc)
	}

	content := "colors {\n  a = colors.nope\n}\n"
	broken := Analyze(testURI, content)
	if loc := definition(broken, content, testURI, protocol.Position{Line: 1, Character: 12}); loc != nil {
		t.Errorf("unknown color gave %v", loc)
	}
}
