// Package transport builds outbound JSON-RPC frames and drains them onto a
// length-prefixed stream, via the framing codec from sourcegraph/jsonrpc2.
// It never uses jsonrpc2.Conn's own request/response matching: the core's
// Message model and Dispatcher own that.
package transport

import (
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
)

// Queue is the OutboundQueue: an ordered, append-only sequence of owned
// frame buffers awaiting the transport. Handlers and lifecycle code append;
// the transport loop in cmd/zls drains.
type Queue struct {
	mu     sync.Mutex
	frames [][]byte
	logger logrus.FieldLogger
}

// NewQueue creates an empty Queue. logger may be nil.
func NewQueue(logger logrus.FieldLogger) *Queue {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Queue{logger: logger}
}

// Enqueue appends a raw frame. Nil/empty frames are dropped and logged, but
// never returned as an error: the outbound queue never blocks a handler.
func (q *Queue) Enqueue(frame []byte) {
	if len(frame) == 0 {
		q.logger.Warn("dropping empty outbound frame")
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	q.frames = append(q.frames, frame)
}

// Drain removes and returns every frame currently queued, in FIFO order.
func (q *Queue) Drain() [][]byte {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.frames) == 0 {
		return nil
	}

	out := q.frames
	q.frames = nil
	return out
}

// Len reports the number of frames currently queued (tests only need this).
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.frames)
}

// NullResult is the explicit-null sentinel: marshals to a literal `null`
// rather than being omitted by the omitempty payload serializer.
var NullResult = json.RawMessage("null")
