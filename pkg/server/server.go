// Package server defines the top-level Server aggregate: the owner of
// Config, the document store, the negotiated capability snapshot, the
// lifecycle machine, and the outbound queue, built with a functional-options
// constructor.
package server

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/xphoniex/zls/pkg/capabilities"
	"github.com/xphoniex/zls/pkg/checker"
	"github.com/xphoniex/zls/pkg/config"
	"github.com/xphoniex/zls/pkg/documentstore"
	"github.com/xphoniex/zls/pkg/lifecycle"
	"github.com/xphoniex/zls/pkg/protocol"
	"github.com/xphoniex/zls/pkg/recording"
	"github.com/xphoniex/zls/pkg/transport"
)

// Server is the process-lifetime aggregate every handler is invoked
// against.
type Server struct {
	Config        *config.Config
	Lifecycle     *lifecycle.Machine
	DocumentStore *documentstore.Store
	Checker       checker.Checker
	Queue         *transport.Queue
	Writer        *transport.Writer
	Logger        logrus.FieldLogger

	// SessionID correlates every log line and span emitted by one running
	// process, since a single zls instance talks to exactly one client for
	// its whole lifetime.
	SessionID string

	// Capabilities and OffsetEncoding are the zero value until initialize
	// negotiates them, then frozen for the rest of the session, except
	// Capabilities.TraceEnabled, which $/setTrace updates.
	Capabilities   capabilities.Snapshot
	OffsetEncoding protocol.OffsetEncoding

	// ToolchainVersion is read once at startup. When it is non-empty,
	// initialize reports it to the client in a window/showMessage warning;
	// it is not compared against any other version.
	ToolchainVersion string

	recorder             *recording.Recorder
	replay               bool
	trace                bool
	pendingRecordingPath string
	pendingReplayPath    string
}

// Option configures a Server at construction.
type Option func(*Server)

// WithConfig installs an already-built Config (defaults come from
// config.New if omitted).
func WithConfig(cfg *config.Config) Option {
	return func(s *Server) { s.Config = cfg }
}

// WithLogger installs a shared logger used by every owned collaborator
// constructed without one of its own.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Server) { s.Logger = logger }
}

// WithChecker installs the external syntax-checker collaborator.
func WithChecker(c checker.Checker) Option {
	return func(s *Server) { s.Checker = c }
}

// WithDocumentStore installs an already-built document store (defaults to
// documentstore.New if omitted).
func WithDocumentStore(store *documentstore.Store) Option {
	return func(s *Server) { s.DocumentStore = store }
}

// WithTrace records that message tracing was forced on (cmd/zls's -trace
// flag), as reported by TraceForced. It does not change the negotiated
// Capabilities.TraceEnabled.
func WithTrace(on bool) Option {
	return func(s *Server) { s.trace = on }
}

// WithToolchainVersion records the runtime toolchain version string that
// initialize reports to the client via window/showMessage.
func WithToolchainVersion(v string) Option {
	return func(s *Server) { s.ToolchainVersion = v }
}

// WithRecordingPath enables recording to path: every inbound frame is
// appended for later replay. Mutually exclusive in practice with
// WithReplayPath, though nothing enforces that at construction.
func WithRecordingPath(path string) Option {
	return func(s *Server) { s.pendingRecordingPath = path }
}

// WithReplayPath marks the server as running in replay mode, which
// disables configuration pull and push to keep the session deterministic.
// The recorded frames are read by cmd/zls's replay loop, not the Server
// itself.
func WithReplayPath(path string) Option {
	return func(s *Server) {
		s.replay = true
		s.pendingReplayPath = path
	}
}

// New builds a Server with the given options, defaulting Config, Logger,
// and DocumentStore when not supplied.
func New(opts ...Option) (*Server, error) {
	s := &Server{}
	for _, opt := range opts {
		opt(s)
	}

	if s.Logger == nil {
		s.Logger = logrus.StandardLogger()
	}
	s.SessionID = uuid.NewString()
	s.Logger = s.Logger.WithField("session_id", s.SessionID)
	if s.Config == nil {
		s.Config = config.New(s.Logger)
	}
	if s.DocumentStore == nil {
		s.DocumentStore = documentstore.New(s.Logger)
	}
	s.Config.SetChangeHook(s.DocumentStore)

	s.Lifecycle = lifecycle.New(s.Logger)
	s.Queue = transport.NewQueue(s.Logger)
	s.Writer = transport.NewWriter(s.Queue)

	if s.pendingRecordingPath != "" {
		rec, err := recording.Open(s.pendingRecordingPath)
		if err != nil {
			return nil, err
		}
		s.recorder = rec
	}

	return s, nil
}

// Recording reports whether this session is recording inbound frames.
func (s *Server) Recording() bool { return s.recorder != nil }

// Replaying reports whether this session is replaying a recorded session,
// which disables configuration pull and push.
func (s *Server) Replaying() bool { return s.replay }

// ReplayPath returns the path passed to WithReplayPath.
func (s *Server) ReplayPath() string { return s.pendingReplayPath }

// TraceForced reports whether tracing was forced on via WithTrace,
// independent of the client's negotiated trace setting.
func (s *Server) TraceForced() bool { return s.trace }

// RecordFrame appends raw to the recording file, if one is open. Errors are
// logged and swallowed, matching the outbound-queue discipline: recording
// must never block message handling.
func (s *Server) RecordFrame(raw []byte) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Append(raw); err != nil {
		s.Logger.WithError(err).Warn("recording inbound frame")
	}
}

// Close releases any open recording file.
func (s *Server) Close() error {
	if s.recorder == nil {
		return nil
	}
	return s.recorder.Close()
}
