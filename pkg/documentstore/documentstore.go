// Package documentstore implements the open-buffer lifecycle and URI-to-path
// resolution the handler table uses to look up a document's text, with a
// configChanged hook for build-file cache invalidation.
package documentstore

import (
	"net/url"
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/xphoniex/zls/pkg/config"
	"github.com/xphoniex/zls/pkg/protocol"
)

// Document is one open buffer's text and version.
type Document struct {
	URI     string
	Version int
	Text    string
}

// Store holds every currently-open buffer, keyed by URI, plus a build-file
// cache invalidated when the configured toolchain path changes.
type Store struct {
	mu        sync.RWMutex
	documents map[string]*Document
	logger    logrus.FieldLogger

	buildCacheMu sync.Mutex
	buildCache   map[string]interface{}
}

// New creates an empty Store.
func New(logger logrus.FieldLogger) *Store {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Store{
		documents:  make(map[string]*Document),
		buildCache: make(map[string]interface{}),
		logger:     logger,
	}
}

// Open records a newly-opened buffer.
func (s *Store) Open(item protocol.TextDocumentItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[item.URI] = &Document{URI: item.URI, Version: item.Version, Text: item.Text}
}

// Change replaces a buffer's text. Only full-document sync is implemented,
// so the last content change event wins.
func (s *Store) Change(id protocol.VersionedTextDocumentIdentifier, changes []protocol.TextDocumentContentChangeEvent) {
	if len(changes) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.documents[id.URI]
	if !ok {
		doc = &Document{URI: id.URI}
		s.documents[id.URI] = doc
	}
	doc.Version = id.Version
	doc.Text = changes[len(changes)-1].Text
}

// Save replaces an open buffer's text with text when the didSave
// notification carried it; with a nil text, or for a URI that is not open,
// it leaves the store unchanged.
func (s *Store) Save(id protocol.TextDocumentIdentifier, text *string) {
	if text == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if doc, ok := s.documents[id.URI]; ok {
		doc.Text = *text
	}
}

// Close discards a buffer. Subsequent Get calls fall back to disk.
func (s *Store) Close(id protocol.TextDocumentIdentifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, id.URI)
}

// Get resolves a URI to its text, preferring the open buffer and falling
// back to the filesystem. A missing file is reported as an error; callers
// in the handler table translate an unknown URI into a null result rather
// than surfacing this error to the client.
func (s *Store) Get(uri string) (*Document, error) {
	s.mu.RLock()
	doc, ok := s.documents[uri]
	s.mu.RUnlock()
	if ok {
		return doc, nil
	}

	path, err := ToPath(uri)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading document from disk")
	}

	return &Document{URI: uri, Text: string(data)}, nil
}

// ConfigChanged implements config.ChangeHook: a toolchain path change
// invalidates the build-file cache.
func (s *Store) ConfigChanged(old, new *config.Config) {
	if old == nil || new == nil || old.ZigExePath == new.ZigExePath {
		return
	}

	s.buildCacheMu.Lock()
	defer s.buildCacheMu.Unlock()
	s.buildCache = make(map[string]interface{})
	s.logger.WithFields(logrus.Fields{
		"from": old.ZigExePath,
		"to":   new.ZigExePath,
	}).Info("invalidating build-file cache after toolchain path change")
}

// ToPath converts a file: URI to a filesystem path, grounded on the
// teacher's pkg/util/uri.ToPath.
func ToPath(uriStr string) (string, error) {
	u, err := url.Parse(uriStr)
	if err != nil {
		return "", errors.Wrap(err, "parsing document URI")
	}
	if u.Scheme != "file" {
		return "", errors.Errorf("unsupported URI scheme %q", u.Scheme)
	}
	return u.Path, nil
}
