// Package lsp implements a language server that shows color swatches for
// hex literals in any document and checks huekit palette files.
package lsp

import (
	"sync"

	"github.com/jsvensson/huekit"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

const serverName = "huekit-lsp"

var log = commonlog.GetLogger("huekit.lsp")

type Server struct {
	handler protocol.Handler
	docs    *DocumentStore
	namer   huekit.Namer
	version string

	mu      sync.RWMutex
	results map[string]*AnalysisResult
}

// NewServer creates a server that names hovered colors with namer. A nil
// namer disables naming.
func NewServer(version string, namer huekit.Namer) *Server {
	s := &Server{
		docs:    NewDocumentStore(),
		namer:   namer,
		version: version,
		results: make(map[string]*AnalysisResult),
	}

	s.handler = protocol.Handler{
		Initialize:                    s.initialize,
		Initialized:                   s.initialized,
		Shutdown:                      s.shutdown,
		SetTrace:                      s.setTrace,
		TextDocumentDidOpen:           s.textDocumentDidOpen,
		TextDocumentDidChange:         s.textDocumentDidChange,
		TextDocumentDidClose:          s.textDocumentDidClose,
		TextDocumentColor:             s.textDocumentDocumentColor,
		TextDocumentColorPresentation: s.textDocumentColorPresentation,
		TextDocumentHover:             s.textDocumentHover,
		TextDocumentDefinition:        s.textDocumentDefinition,
		TextDocumentCompletion:        s.textDocumentCompletion,
		TextDocumentFormatting:        s.textDocumentFormatting,
	}

	return s
}

// Run serves over stdio. verbosity is passed to commonlog.
func (s *Server) Run(verbosity int) error {
	commonlog.Configure(verbosity, nil)
	srv := server.NewServer(&s.handler, serverName, false)
	return srv.RunStdio()
}

func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{".", "\""},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.Open(uri, params.TextDocument.Text, params.TextDocument.Version)
	s.analyze(ctx, uri, params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	for _, change := range params.ContentChanges {
		c, ok := change.(protocol.TextDocumentContentChangeEventWhole)
		if !ok {
			continue
		}
		if !s.docs.Update(uri, c.Text, params.TextDocument.Version) {
			log.Debugf("%s: dropping stale version %d", uri, params.TextDocument.Version)
			continue
		}
		s.analyze(ctx, uri, c.Text)
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.Close(uri)

	s.mu.Lock()
	delete(s.results, uri)
	s.mu.Unlock()

	if IsPaletteFile(uri) {
		publish(ctx, uri, []protocol.Diagnostic{})
	}
	return nil
}

// analyze refreshes the cached result and publishes palette diagnostics.
func (s *Server) analyze(ctx *glsp.Context, uri, content string) {
	result := Analyze(uri, content)

	s.mu.Lock()
	// Keep completing against the last palette that resolved while the
	// document is mid-edit.
	if prev := s.results[uri]; result.Palette == nil && prev != nil {
		result.Palette = prev.Palette
	}
	s.results[uri] = result
	s.mu.Unlock()

	log.Debugf("%s: %d colors, %d diagnostics", uri, len(result.Colors), len(result.Diagnostics))
	if IsPaletteFile(uri) {
		diags := result.Diagnostics
		if diags == nil {
			diags = []protocol.Diagnostic{}
		}
		publish(ctx, uri, diags)
	}
}

func publish(ctx *glsp.Context, uri string, diags []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentUri(uri),
		Diagnostics: diags,
	})
}

// getResult returns the latest analysis for uri, or nil.
func (s *Server) getResult(uri string) *AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.results[uri]
}
