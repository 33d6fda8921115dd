package transport

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/xphoniex/zls/pkg/protocol"
)

// frame is the on-the-wire shape: jsonrpc first, then whichever of
// id/method/result/params/error apply. A single call into Writer sets at
// most one payload key (result or params); Fail sets none, only error.
type frame struct {
	JSONRPC string               `json:"jsonrpc"`
	ID      *protocol.RequestId  `json:"id,omitempty"`
	Method  string               `json:"method,omitempty"`
	Result  json.RawMessage      `json:"result,omitempty"`
	Params  json.RawMessage      `json:"params,omitempty"`
	Error   *protocol.ResponseError `json:"error,omitempty"`
}

// Writer marshals outbound messages into frames and appends them to a
// Queue.
type Writer struct {
	queue *Queue
}

// NewWriter wraps queue.
func NewWriter(queue *Queue) *Writer {
	return &Writer{queue: queue}
}

// Result posts a successful response: `{"jsonrpc":"2.0","id":...,"result":...}`.
// Pass transport.NullResult to emit an explicit null result.
func (w *Writer) Result(id protocol.RequestId, result interface{}) error {
	raw, err := marshalPayload(result)
	if err != nil {
		return errors.Wrap(err, "marshaling result")
	}

	return w.write(frame{JSONRPC: "2.0", ID: &id, Result: raw})
}

// Fail posts an error response: `{"jsonrpc":"2.0","id":...,"error":{...}}`.
func (w *Writer) Fail(id protocol.RequestId, respErr *protocol.ResponseError) error {
	return w.write(frame{JSONRPC: "2.0", ID: &id, Error: respErr})
}

// Request posts a server-originated request: carries an id and a method.
func (w *Writer) Request(id protocol.RequestId, method string, params interface{}) error {
	raw, err := marshalPayload(params)
	if err != nil {
		return errors.Wrap(err, "marshaling params")
	}

	return w.write(frame{JSONRPC: "2.0", ID: &id, Method: method, Params: raw})
}

// Notify posts a server-originated notification: carries a method but no
// id.
func (w *Writer) Notify(method string, params interface{}) error {
	raw, err := marshalPayload(params)
	if err != nil {
		return errors.Wrap(err, "marshaling params")
	}

	return w.write(frame{JSONRPC: "2.0", Method: method, Params: raw})
}

func (w *Writer) write(f frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return errors.Wrap(err, "marshaling frame")
	}

	w.queue.Enqueue(data)
	return nil
}

func marshalPayload(v interface{}) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	if raw, ok := v.(json.RawMessage); ok {
		return raw, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return data, nil
}
