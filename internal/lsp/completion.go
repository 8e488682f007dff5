package lsp

import (
	"fmt"
	"strings"

	"github.com/jsvensson/huekit"
	"github.com/jsvensson/huekit/internal/hclfunc"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// blockContext represents the kind of block the cursor is in.
type blockContext int

const (
	contextRoot    blockContext = iota
	contextMeta                 // inside meta {}
	contextColors               // inside colors {}
	contextHarmony              // inside harmony "name" {}
	contextOther
)

var (
	topLevelBlocks    = []string{"meta", "colors", "harmony"}
	metaAttributes    = []string{"name", "author", "description"}
	harmonyAttributes = []string{"base", "scheme", "angle", "count"}
)

const colorsPrefix = "colors."

// complete produces completion items for a palette document at pos. It is
// kept apart from the protocol handler so it can be tested directly.
func complete(result *AnalysisResult, content string, pos protocol.Position) []protocol.CompletionItem {
	lines := strings.Split(content, "\n")
	if int(pos.Line) >= len(lines) {
		return nil
	}

	line := lines[pos.Line]
	charPos := min(int(pos.Character), len(line))
	textBeforeCursor := line[:charPos]

	if items := tryColorCompletion(result, textBeforeCursor); items != nil {
		return items
	}

	ctx := determineBlockContext(lines, int(pos.Line))

	if ctx == contextHarmony && isSchemeValue(textBeforeCursor) {
		return schemeCompletions()
	}
	if isValuePosition(textBeforeCursor) {
		if ctx == contextColors || ctx == contextHarmony {
			return valueCompletions()
		}
		return nil
	}

	switch ctx {
	case contextRoot:
		return topLevelCompletions(lines, int(pos.Line))
	case contextMeta:
		return attributeCompletions(metaAttributes, lines, int(pos.Line))
	case contextHarmony:
		return attributeCompletions(harmonyAttributes, lines, int(pos.Line))
	}

	return nil
}

// tryColorCompletion offers the palette's colors when the text before the
// cursor ends in "colors." or a partial name after it.
func tryColorCompletion(result *AnalysisResult, textBeforeCursor string) []protocol.CompletionItem {
	if result == nil || result.Palette == nil {
		return nil
	}

	idx := strings.LastIndex(textBeforeCursor, colorsPrefix)
	if idx == -1 {
		return nil
	}
	if idx > 0 && isIdentChar(textBeforeCursor[idx-1]) {
		return nil
	}
	partial := textBeforeCursor[idx+len(colorsPrefix):]
	for i := 0; i < len(partial); i++ {
		if !isIdentChar(partial[i]) || partial[i] == '.' {
			return nil
		}
	}

	kind := protocol.CompletionItemKindColor
	items := make([]protocol.CompletionItem, 0, len(result.Palette.Colors))
	for _, e := range result.Palette.Colors {
		hex := e.Color.Hex(e.Color.Alpha().IsSet())
		items = append(items, protocol.CompletionItem{
			Label:         e.Name,
			Kind:          &kind,
			Detail:        &hex,
			Documentation: hex,
		})
	}
	return items
}

// isValuePosition returns true if the cursor is where an expression may
// start: right after "=", "(" or "," on an attribute line, possibly with a
// partly typed name.
func isValuePosition(textBeforeCursor string) bool {
	if !strings.Contains(textBeforeCursor, "=") {
		return false
	}
	trimmed := strings.TrimRight(textBeforeCursor, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_")
	trimmed = strings.TrimSpace(trimmed)
	if trimmed == "" {
		return false
	}
	switch trimmed[len(trimmed)-1] {
	case '=', '(', ',':
		return true
	}
	return false
}

// isSchemeValue reports whether the cursor sits in the value of a scheme
// attribute, with or without an opening quote.
func isSchemeValue(textBeforeCursor string) bool {
	name, value, ok := strings.Cut(strings.TrimSpace(textBeforeCursor), "=")
	if !ok || strings.TrimSpace(name) != "scheme" {
		return false
	}
	value = strings.TrimSpace(value)
	return value == "" || (strings.HasPrefix(value, "\"") && !strings.Contains(value[1:], "\""))
}

func schemeCompletions() []protocol.CompletionItem {
	kind := protocol.CompletionItemKindEnumMember
	var items []protocol.CompletionItem
	for _, name := range huekit.Schemes() {
		quoted := `"` + name + `"`
		items = append(items, protocol.CompletionItem{
			Label:      name,
			Kind:       &kind,
			FilterText: &quoted,
			InsertText: &quoted,
		})
	}
	return items
}

// valueCompletions offers every palette function as a snippet plus the
// colors namespace.
func valueCompletions() []protocol.CompletionItem {
	funcs := hclfunc.Functions()
	format := protocol.InsertTextFormatSnippet
	fnKind := protocol.CompletionItemKindFunction

	var items []protocol.CompletionItem
	for _, name := range hclfunc.Names() {
		f := funcs[name]

		params := f.Params()
		names := make([]string, len(params))
		holes := make([]string, len(params))
		for i, p := range params {
			names[i] = p.Name
			holes[i] = fmt.Sprintf("${%d:%s}", i+1, p.Name)
		}
		detail := fmt.Sprintf("%s(%s)", name, strings.Join(names, ", "))
		snippet := fmt.Sprintf("%s(%s)", name, strings.Join(holes, ", "))

		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             &fnKind,
			Detail:           &detail,
			Documentation:    f.Description(),
			InsertText:       &snippet,
			InsertTextFormat: &format,
		})
	}

	varKind := protocol.CompletionItemKindVariable
	insert := colorsPrefix
	items = append(items, protocol.CompletionItem{
		Label:      "colors",
		Kind:       &varKind,
		Detail:     strPtr("colors defined above"),
		InsertText: &insert,
	})
	return items
}

// determineBlockContext scans from the top of the file down to the cursor line
// to determine which block the cursor is in, using brace nesting.
func determineBlockContext(lines []string, cursorLine int) blockContext {
	var stack []string

	for i := 0; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])

		opens := strings.Count(line, "{")
		closes := strings.Count(line, "}")

		if opens > 0 {
			name := ""
			if parts := strings.Fields(line); len(parts) > 0 {
				name = parts[0]
			}
			for range opens {
				stack = append(stack, name)
			}
		}
		for range closes {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) == 0 {
		return contextRoot
	}
	if len(stack) > 1 {
		return contextOther
	}

	switch stack[0] {
	case "meta":
		return contextMeta
	case "colors":
		return contextColors
	case "harmony":
		return contextHarmony
	}
	return contextOther
}

// attributeCompletions offers names not already set in the enclosing block.
func attributeCompletions(names []string, lines []string, cursorLine int) []protocol.CompletionItem {
	defined := findDefinedAttributes(lines, cursorLine)
	kind := protocol.CompletionItemKindProperty

	var items []protocol.CompletionItem
	for _, name := range names {
		if !defined[name] {
			insert := name + " = "
			items = append(items, protocol.CompletionItem{
				Label:      name,
				Kind:       &kind,
				InsertText: &insert,
			})
		}
	}
	return items
}

// findDefinedAttributes scans the current block (from the nearest opening brace
// before cursorLine to cursorLine) and returns attribute names already defined
// (lines containing "name = ...").
func findDefinedAttributes(lines []string, cursorLine int) map[string]bool {
	defined := make(map[string]bool)

	startLine := 0
	depth := 0
	for i := cursorLine; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		depth += strings.Count(line, "}") - strings.Count(line, "{")
		if depth < 0 {
			startLine = i
			break
		}
	}

	for i := startLine; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])
		if eqIdx := strings.Index(line, "="); eqIdx > 0 {
			name := strings.TrimSpace(line[:eqIdx])
			if !strings.Contains(name, " ") && !strings.Contains(name, "{") {
				defined[name] = true
			}
		}
	}

	return defined
}

// topLevelCompletions offers the root blocks and the precision attribute.
// meta, colors and precision are only offered once.
func topLevelCompletions(lines []string, cursorLine int) []protocol.CompletionItem {
	present := make(map[string]bool)
	for i, l := range lines {
		if i == cursorLine {
			continue
		}
		if fields := strings.Fields(l); len(fields) > 0 {
			present[fields[0]] = true
		}
	}

	kind := protocol.CompletionItemKindSnippet
	format := protocol.InsertTextFormatSnippet
	var items []protocol.CompletionItem
	for _, name := range topLevelBlocks {
		if name != "harmony" && present[name] {
			continue
		}
		snippet := name + " {\n  $0\n}"
		if name == "harmony" {
			snippet = "harmony \"${1:name}\" {\n  base   = $2\n  scheme = \"${3:triadic}\"\n}"
		}
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             &kind,
			InsertText:       &snippet,
			InsertTextFormat: &format,
		})
	}

	if !present["precision"] {
		propKind := protocol.CompletionItemKindProperty
		insert := "precision = "
		items = append(items, protocol.CompletionItem{
			Label:      "precision",
			Kind:       &propKind,
			Detail:     strPtr("decimal places for rendered values"),
			InsertText: &insert,
		})
	}

	return items
}

// textDocumentCompletion is the LSP handler for textDocument/completion requests.
// Only palette files get completions.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := string(params.TextDocument.URI)
	if !IsPaletteFile(uri) {
		return nil, nil
	}

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	items := complete(s.getResult(uri), content, params.Position)
	return items, nil
}
