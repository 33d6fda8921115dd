// Package recording implements session recording and replay: every inbound
// frame appended as one newline-delimited raw-JSON line, for trivial
// replay via bufio.Scanner. Recording/replay disable configuration
// pull/push respectively, to keep a recorded session deterministic.
package recording

import (
	"bufio"
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// Recorder appends every inbound frame it's handed to an underlying file,
// one raw JSON value per line.
type Recorder struct {
	mu   sync.Mutex
	file *os.File
}

// Open creates (or truncates) the recording file at path.
func Open(path string) (*Recorder, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "opening recording file")
	}
	return &Recorder{file: f}, nil
}

// Append writes one frame as its own line.
func (r *Recorder) Append(frame []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.file.Write(frame); err != nil {
		return errors.Wrap(err, "appending recorded frame")
	}
	if _, err := r.file.Write([]byte("\n")); err != nil {
		return errors.Wrap(err, "appending recorded frame newline")
	}
	return nil
}

// Close flushes and closes the recording file.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.file.Close()
}

// Replayer reads back a recording file's frames in order, for cmd/zlsreplay.
type Replayer struct {
	scanner *bufio.Scanner
	closer  io.Closer
}

// OpenReplay opens path for sequential frame replay.
func OpenReplay(path string) (*Replayer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening replay file")
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &Replayer{scanner: scanner, closer: f}, nil
}

// Next returns the next recorded frame, or io.EOF when exhausted.
func (r *Replayer) Next() ([]byte, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}

	line := r.scanner.Bytes()
	out := make([]byte, len(line))
	copy(out, line)
	return out, nil
}

// Close releases the underlying file.
func (r *Replayer) Close() error {
	return r.closer.Close()
}
