package recording

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordReplayRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")

	rec, err := Open(path)
	require.NoError(t, err)

	frames := [][]byte{
		[]byte(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`),
		[]byte(`{"jsonrpc":"2.0","method":"initialized","params":{}}`),
		[]byte(`{"jsonrpc":"2.0","id":2,"method":"shutdown"}`),
	}
	for _, f := range frames {
		require.NoError(t, rec.Append(f))
	}
	require.NoError(t, rec.Close())

	replayer, err := OpenReplay(path)
	require.NoError(t, err)
	defer replayer.Close()

	for _, want := range frames {
		got, err := replayer.Next()
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got))
	}

	_, err = replayer.Next()
	assert.Equal(t, io.EOF, err)
}

func TestOpenTruncatesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")

	rec, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, rec.Append([]byte(`{"a":1}`)))
	require.NoError(t, rec.Close())

	rec, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, rec.Append([]byte(`{"b":2}`)))
	require.NoError(t, rec.Close())

	replayer, err := OpenReplay(path)
	require.NoError(t, err)
	defer replayer.Close()

	got, err := replayer.Next()
	require.NoError(t, err)
	assert.Equal(t, `{"b":2}`, string(got))

	_, err = replayer.Next()
	assert.Equal(t, io.EOF, err)
}

func TestOpenReplayMissingFileErrors(t *testing.T) {
	_, err := OpenReplay(filepath.Join(t.TempDir(), "does-not-exist.jsonl"))
	assert.Error(t, err)
}
