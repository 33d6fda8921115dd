package documentstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xphoniex/zls/pkg/config"
	"github.com/xphoniex/zls/pkg/protocol"
)

func TestOpenChangeCloseLifecycle(t *testing.T) {
	s := New(nil)

	s.Open(protocol.TextDocumentItem{URI: "file:///a.zig", Version: 1, Text: "const x = 1;"})
	doc, err := s.Get("file:///a.zig")
	require.NoError(t, err)
	assert.Equal(t, "const x = 1;", doc.Text)

	s.Change(
		protocol.VersionedTextDocumentIdentifier{TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: "file:///a.zig"}, Version: 2},
		[]protocol.TextDocumentContentChangeEvent{{Text: "first"}, {Text: "const x = 2;"}},
	)
	doc, err = s.Get("file:///a.zig")
	require.NoError(t, err)
	assert.Equal(t, "const x = 2;", doc.Text, "last content change event wins")
	assert.Equal(t, 2, doc.Version)

	s.Close(protocol.TextDocumentIdentifier{URI: "file:///a.zig"})
	_, err = s.Get("file:///a.zig")
	assert.Error(t, err, "closed buffer with no backing file should fail to resolve")
}

func TestGetFallsBackToDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "b.zig")
	require.NoError(t, os.WriteFile(path, []byte("const y = 2;"), 0o644))

	s := New(nil)
	doc, err := s.Get("file://" + path)
	require.NoError(t, err)
	assert.Equal(t, "const y = 2;", doc.Text)
}

func TestSaveUpdatesOpenBuffer(t *testing.T) {
	s := New(nil)
	s.Open(protocol.TextDocumentItem{URI: "file:///a.zig", Version: 1, Text: "old"})

	text := "new"
	s.Save(protocol.TextDocumentIdentifier{URI: "file:///a.zig"}, &text)

	doc, err := s.Get("file:///a.zig")
	require.NoError(t, err)
	assert.Equal(t, "new", doc.Text)
}

func TestSaveWithNilTextIsNoop(t *testing.T) {
	s := New(nil)
	s.Open(protocol.TextDocumentItem{URI: "file:///a.zig", Version: 1, Text: "old"})

	s.Save(protocol.TextDocumentIdentifier{URI: "file:///a.zig"}, nil)

	doc, err := s.Get("file:///a.zig")
	require.NoError(t, err)
	assert.Equal(t, "old", doc.Text)
}

func TestConfigChangedInvalidatesOnToolchainPathChange(t *testing.T) {
	s := New(nil)
	s.buildCache["stale"] = struct{}{}

	old := &config.Config{}
	old.ZigExePath = "/usr/bin/zig"
	fresh := &config.Config{}
	fresh.ZigExePath = "/opt/zig/zig"

	s.ConfigChanged(old, fresh)

	assert.Empty(t, s.buildCache)
}

func TestConfigChangedNoopWhenPathUnchanged(t *testing.T) {
	s := New(nil)
	s.buildCache["kept"] = struct{}{}

	old := &config.Config{}
	old.ZigExePath = "/usr/bin/zig"
	same := &config.Config{}
	same.ZigExePath = "/usr/bin/zig"

	s.ConfigChanged(old, same)

	assert.Contains(t, s.buildCache, "kept")
}

func TestToPathRejectsNonFileScheme(t *testing.T) {
	_, err := ToPath("http://example.com/a.zig")
	assert.Error(t, err)
}

func TestToPathAcceptsFileScheme(t *testing.T) {
	path, err := ToPath("file:///home/user/a.zig")
	require.NoError(t, err)
	assert.Equal(t, "/home/user/a.zig", path)
}
