package transport

import (
	"encoding/json"
	"io"

	"github.com/sourcegraph/jsonrpc2"
)

// Stream is the physical framing layer below the core: one
// Content-Length-delimited JSON object per frame. It reuses
// sourcegraph/jsonrpc2's codec purely as a reader/writer of raw JSON
// objects — the core's own Dispatcher decodes and routes those objects, not
// jsonrpc2.Conn.
type Stream struct {
	obj jsonrpc2.ObjectStream
}

// NewStream wraps rwc in VSCode-style Content-Length framing.
func NewStream(rwc io.ReadWriteCloser) *Stream {
	return &Stream{obj: jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{})}
}

// ReadFrame blocks for the next complete frame and returns its raw bytes.
func (s *Stream) ReadFrame() ([]byte, error) {
	var raw json.RawMessage
	if err := s.obj.ReadObject(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// WriteFrame writes one already-serialized frame to the stream.
func (s *Stream) WriteFrame(frame []byte) error {
	return s.obj.WriteObject(json.RawMessage(frame))
}

// Close closes the underlying stream.
func (s *Stream) Close() error {
	return s.obj.Close()
}
