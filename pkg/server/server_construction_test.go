package server_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xphoniex/zls/pkg/recording"
	"github.com/xphoniex/zls/pkg/server"
)

func TestNewAssignsDefaultsAndSessionID(t *testing.T) {
	srv, err := server.New()
	require.NoError(t, err)
	defer srv.Close()

	assert.NotNil(t, srv.Config)
	assert.NotNil(t, srv.DocumentStore)
	assert.NotNil(t, srv.Lifecycle)
	assert.NotNil(t, srv.Queue)
	assert.NotNil(t, srv.Writer)
	assert.NotEmpty(t, srv.SessionID)
	assert.False(t, srv.Recording())
	assert.False(t, srv.Replaying())
}

func TestWithRecordingPathOpensFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")

	srv, err := server.New(server.WithRecordingPath(path))
	require.NoError(t, err)

	assert.True(t, srv.Recording())
	srv.RecordFrame([]byte(`{"a":1}`))
	require.NoError(t, srv.Close())

	replayer, err := recording.OpenReplay(path)
	require.NoError(t, err)
	defer replayer.Close()

	got, err := replayer.Next()
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))
}

func TestWithRecordingPathInvalidDirErrors(t *testing.T) {
	_, err := server.New(server.WithRecordingPath(filepath.Join(t.TempDir(), "missing-dir", "session.jsonl")))
	assert.Error(t, err)
}

func TestWithReplayPathSetsReplayingAndReplayPath(t *testing.T) {
	srv, err := server.New(server.WithReplayPath("/tmp/whatever.jsonl"))
	require.NoError(t, err)
	defer srv.Close()

	assert.True(t, srv.Replaying())
	assert.Equal(t, "/tmp/whatever.jsonl", srv.ReplayPath())
}

func TestTraceForcedReflectsWithTrace(t *testing.T) {
	srv, err := server.New(server.WithTrace(true))
	require.NoError(t, err)
	defer srv.Close()

	assert.True(t, srv.TraceForced())
}

func TestWithToolchainVersion(t *testing.T) {
	srv, err := server.New(server.WithToolchainVersion("0.12.0"))
	require.NoError(t, err)
	defer srv.Close()

	assert.Equal(t, "0.12.0", srv.ToolchainVersion)
}
