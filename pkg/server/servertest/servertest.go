// Package servertest builds a Server wired to the full handler table for
// request/response round-trip testing, in the table-driven-harness style
// used throughout this codebase's own package tests.
package servertest

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/xphoniex/zls/pkg/checker"
	"github.com/xphoniex/zls/pkg/dispatch"
	"github.com/xphoniex/zls/pkg/handlers"
	"github.com/xphoniex/zls/pkg/server"
)

// Harness pairs a Server and Dispatcher for feeding raw inbound frames and
// observing the resulting outbound queue.
type Harness struct {
	T      *testing.T
	Server *server.Server
	Dispatcher *dispatch.Dispatcher
	Hook   *test.Hook
}

// Option mirrors server.Option for harness-level construction tweaks.
type Option func(*server.Server)

// WithChecker installs a fake Checker for autofix-path tests.
func WithChecker(c checker.Checker) Option {
	return func(s *server.Server) { s.Checker = c }
}

// New builds a Harness with a discard-by-default logger (captured by a
// logrus test hook so assertions can inspect warnings) and the production
// handler table. opts are applied during server construction, so
// construction-time options like server.WithRecordingPath take effect
// (pass them through server.Option(...) since Option and server.Option
// share an underlying type but are distinct named types).
func New(t *testing.T, opts ...Option) *Harness {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	serverOpts := make([]server.Option, 0, len(opts)+1)
	serverOpts = append(serverOpts, server.WithLogger(logger))
	for _, opt := range opts {
		serverOpts = append(serverOpts, server.Option(opt))
	}

	srv, err := server.New(serverOpts...)
	require.NoError(t, err)

	d := dispatch.New(srv, handlers.Table, logger)
	d.SetTestMode(true)

	return &Harness{T: t, Server: srv, Dispatcher: d, Hook: hook}
}

// Feed runs raw through the dispatcher and returns every frame appended to
// the outbound queue as a result.
func (h *Harness) Feed(raw string) [][]byte {
	h.Dispatcher.Dispatch(context.Background(), []byte(raw))
	return h.Server.Queue.Drain()
}
