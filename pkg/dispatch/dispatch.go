// Package dispatch implements the nine-step message pipeline from parsing a
// raw frame through handler invocation, reply, and error-taxonomy
// translation.
package dispatch

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	otlog "github.com/opentracing/opentracing-go/log"
	"github.com/sirupsen/logrus"

	"github.com/xphoniex/zls/pkg/protocol"
	"github.com/xphoniex/zls/pkg/server"
	"github.com/xphoniex/zls/pkg/tracing"
	"github.com/xphoniex/zls/pkg/transport"
)

// Entry is one row of the static handler table: a method name, a param
// decoder, and the uniform (server, arena, params) -> (result, error)
// invoker. Decode internally erases the handler's distinct parameter type
// so the dispatcher never materializes a union of all param types.
type Entry struct {
	Method string
	Kind   protocol.Kind
	Decode func(json.RawMessage) (interface{}, error)
	Invoke func(ctx context.Context, s *server.Server, arena *Arena, params interface{}) (interface{}, error)
}

// Table is the static method-name-to-Entry map built once at init by
// pkg/handlers.
type Table map[string]Entry

const (
	idPrefixRegister      = "register-"
	idApplyEdit           = "apply_edit"
	idConfigurationPull   = "i_haz_configuration"
)

// Dispatcher runs the pipeline for one raw inbound frame at a time against
// a Server and a handler Table.
type Dispatcher struct {
	server *server.Server
	table  Table
	logger logrus.FieldLogger

	// testMode suppresses the per-method elapsed-time log line; it is set
	// by pkg/server/servertest, by the package's own tests, and by the
	// cmd/zlsreplay replay command.
	testMode bool

	// OnCancel is an unset-by-default seam for a future cancellation-token
	// implementation: $/cancelRequest is otherwise a pure no-op, per the
	// open design question on cancellation semantics.
	OnCancel func(id protocol.RequestId)
}

// New builds a Dispatcher over srv using table.
func New(srv *server.Server, table Table, logger logrus.FieldLogger) *Dispatcher {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Dispatcher{server: srv, table: table, logger: logger}
}

// SetTestMode suppresses elapsed-time logging; used by test helpers and by
// cmd/zlsreplay.
func (d *Dispatcher) SetTestMode(on bool) { d.testMode = on }

// Dispatch runs the full pipeline over one raw frame.
func (d *Dispatcher) Dispatch(ctx context.Context, raw []byte) {
	var probe json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		d.logger.WithError(err).Warn("dropping malformed frame")
		return
	}

	msg, err := protocol.Decode(raw)
	if err != nil {
		d.logger.WithError(err).Warn("dropping frame that failed envelope decode")
		return
	}

	switch msg.Kind {
	case protocol.KindResponse:
		d.handleResponse(msg)
	case protocol.KindRequest, protocol.KindNotification:
		d.handleInbound(ctx, msg)
	}
}

func (d *Dispatcher) handleResponse(msg protocol.Message) {
	if msg.ID.IsString() && strings.HasPrefix(msg.ID.String(), idPrefixRegister) {
		if msg.Error != nil {
			d.logger.WithFields(logrus.Fields{"id": msg.ID.String(), "error": msg.Error.Message}).Warn("capability registration failed")
		}
		return
	}

	if msg.ID.IsString() && msg.ID.String() == idApplyEdit {
		return
	}

	if msg.ID.IsString() && msg.ID.String() == idConfigurationPull {
		d.applyConfigurationPull(msg)
		return
	}

	d.logger.WithField("id", msg.ID.String()).Warn("dropping unmatched response")
}

func (d *Dispatcher) applyConfigurationPull(msg protocol.Message) {
	if msg.Error != nil {
		d.logger.WithField("error", msg.Error.Message).Warn("workspace/configuration request failed")
		return
	}

	var values []json.RawMessage
	if err := json.Unmarshal(msg.Result, &values); err != nil {
		d.logger.WithError(err).Warn("decoding workspace/configuration result")
		return
	}

	d.server.Config.ApplyPulled(values)
}

func (d *Dispatcher) handleInbound(ctx context.Context, msg protocol.Message) {
	span, ctx := tracing.ChildSpan(ctx, msg.Method)
	start := time.Now()
	defer func() {
		span.Finish()
		if !d.testMode {
			d.logger.WithFields(logrus.Fields{
				"method":      msg.Method,
				"elapsed_ms":  time.Since(start).Milliseconds(),
			}).Debug("dispatch complete")
		}
	}()

	fail := func(err error) {
		span.LogFields(otlog.Error(err))
		d.replyError(msg, err)
	}

	entry, ok := d.table[msg.Method]
	if !ok || entry.Kind != msg.Kind {
		fail(protocol.NewTaxonomyErr(protocol.MethodNotFound, nil))
		return
	}

	if err := d.server.Lifecycle.Allow(msg.Method, msg.Kind); err != nil {
		fail(err)
		return
	}

	if msg.Method == "$/cancelRequest" && d.OnCancel != nil {
		var params struct {
			ID protocol.RequestId `json:"id"`
		}
		if json.Unmarshal(msg.Params, &params) == nil {
			d.OnCancel(params.ID)
		}
	}

	arena := AcquireArena()
	defer ReleaseArena(arena)

	params, err := entry.Decode(msg.Params)
	if err != nil {
		fail(protocol.NewTaxonomyErr(protocol.ParseError, err))
		return
	}

	result, err := entry.Invoke(ctx, d.server, arena, params)
	if err != nil {
		fail(err)
		return
	}

	d.applyLifecycleTransition(msg.Method)

	if msg.Kind == protocol.KindRequest {
		if result == nil {
			result = transport.NullResult
		}
		if werr := d.server.Writer.Result(msg.ID, result); werr != nil {
			d.logger.WithError(werr).Warn("writing result")
		}
	}
}

// applyLifecycleTransition advances the lifecycle machine after a
// successful handler invocation of a lifecycle-relevant method. initialize
// only advances on success, which this ordering (invoke, then Apply)
// guarantees.
func (d *Dispatcher) applyLifecycleTransition(method string) {
	switch method {
	case "initialize", "initialized", "shutdown", "exit":
		d.server.Lifecycle.Apply(method)
	}
}

func (d *Dispatcher) replyError(msg protocol.Message, err error) {
	if msg.Kind != protocol.KindRequest {
		d.logger.WithFields(logrus.Fields{"method": msg.Method, "error": err.Error()}).Warn("notification handler error")
		return
	}

	respErr := protocol.ToResponseError(err)
	if werr := d.server.Writer.Fail(msg.ID, respErr); werr != nil {
		d.logger.WithError(werr).Warn("writing error response")
	}
}
