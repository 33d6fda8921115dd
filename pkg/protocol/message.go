// Package protocol implements the JSON-RPC 2.0 message envelope used by the
// zls core: decoding a raw frame into a tagged Request/Notification/Response
// variant, and the closed error taxonomy surfaced back to the client.
package protocol

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Kind tags which of the three JSON-RPC message shapes a Message is.
type Kind int

const (
	// KindRequest is a message carrying both an id and a method.
	KindRequest Kind = iota
	// KindNotification is a message carrying a method but no id.
	KindNotification
	// KindResponse is a message carrying an id but no method.
	KindResponse
)

func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindNotification:
		return "notification"
	case KindResponse:
		return "response"
	default:
		return "unknown"
	}
}

// Message is a decoded JSON-RPC 2.0 envelope. Exactly one of the fields
// relevant to its Kind is populated; raw params/result are retained
// unparsed until the handler's declared type is known.
type Message struct {
	Kind   Kind
	ID     RequestId
	Method string

	Params json.RawMessage
	Result json.RawMessage
	Error  *ResponseError
}

type wireEnvelope struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  *string         `json:"method"`
	Params  json.RawMessage `json:"params"`
	Result  json.RawMessage `json:"result"`
	Error   json.RawMessage `json:"error"`
}

// Decode classifies and decodes a raw JSON-RPC frame per the zls message
// model: id+method present is a Request, method-only is a Notification,
// id-only is a Response. Anything else is a ParseError.
func Decode(raw []byte) (Message, error) {
	var env wireEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Message{}, &TaxonomyErr{code: ParseError, cause: errors.Wrap(err, "decoding envelope")}
	}

	hasID := len(env.ID) > 0 && !bytes.Equal(env.ID, []byte("null"))
	hasMethod := env.Method != nil

	switch {
	case hasID && hasMethod:
		id, err := decodeRequestId(env.ID)
		if err != nil {
			return Message{}, &TaxonomyErr{code: ParseError, cause: err}
		}
		return Message{
			Kind:   KindRequest,
			ID:     id,
			Method: *env.Method,
			Params: defaultNull(env.Params),
		}, nil

	case !hasID && hasMethod:
		return Message{
			Kind:   KindNotification,
			Method: *env.Method,
			Params: defaultNull(env.Params),
		}, nil

	case hasID && !hasMethod:
		id, err := decodeRequestId(env.ID)
		if err != nil {
			return Message{}, &TaxonomyErr{code: ParseError, cause: err}
		}

		hasResult := len(env.Result) > 0 && !bytes.Equal(env.Result, []byte("null"))
		hasError := len(env.Error) > 0 && !bytes.Equal(env.Error, []byte("null"))
		if hasResult && hasError {
			return Message{}, &TaxonomyErr{code: ParseError, cause: errors.New("response carries both result and error")}
		}

		msg := Message{Kind: KindResponse, ID: id, Result: env.Result}
		if hasError {
			var respErr ResponseError
			if err := json.Unmarshal(env.Error, &respErr); err != nil {
				return Message{}, &TaxonomyErr{code: ParseError, cause: errors.Wrap(err, "decoding error object")}
			}
			msg.Error = &respErr
		}
		return msg, nil

	default:
		return Message{}, &TaxonomyErr{code: ParseError, cause: errors.New("message has neither id nor method")}
	}
}

func defaultNull(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("null")
	}
	return raw
}

// ResponseError is the error body surfaced to the client on a failed
// request.
type ResponseError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (e *ResponseError) Error() string {
	return e.Message
}
