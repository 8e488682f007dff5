package lsp

import (
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

type document struct {
	text    string
	version protocol.Integer
}

// DocumentStore holds open document contents keyed by URI. Documents are
// synced in full, so every update replaces the text.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]document)}
}

func (s *DocumentStore) Open(uri, content string, version protocol.Integer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = document{text: content, version: version}
}

// Update stores content unless the store already holds a newer version.
// It reports whether the content was stored.
func (s *DocumentStore) Update(uri, content string, version protocol.Integer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.docs[uri]; ok && version < cur.version {
		return false
	}
	s.docs[uri] = document{text: content, version: version}
	return true
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *DocumentStore) Get(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	return doc.text, ok
}
