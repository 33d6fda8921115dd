// Package lifecycle implements the LSP lifecycle state machine: which
// methods are allowed in which Status, and the transitions between them.
package lifecycle

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/xphoniex/zls/pkg/protocol"
)

// Status is the session's lifecycle state.
type Status int

const (
	Uninitialized Status = iota
	Initializing
	Initialized
	Shutdown
	ExitingSuccess
	ExitingFailure
)

func (s Status) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Initialized:
		return "initialized"
	case Shutdown:
		return "shutdown"
	case ExitingSuccess:
		return "exiting_success"
	case ExitingFailure:
		return "exiting_failure"
	default:
		return "unknown"
	}
}

const (
	methodInitialize  = "initialize"
	methodInitialized = "initialized"
	methodShutdown    = "shutdown"
	methodExit        = "exit"
	methodProgress    = "$/progress"
)

// Machine holds the session Status and enforces the lifecycle DAG. It is
// owned by the Server aggregate and mutated only through Apply.
type Machine struct {
	status Status
	logger logrus.FieldLogger
}

// New creates a Machine in the Uninitialized state.
func New(logger logrus.FieldLogger) *Machine {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Machine{status: Uninitialized, logger: logger}
}

// Status returns the current state.
func (m *Machine) Status() Status { return m.status }

// Allow reports whether method may be dispatched given the current status
// and message kind, returning the matching taxonomy error when it may not.
// Messages arriving while exiting are a programmer error: the core refuses
// to be invoked there at all, so Allow panics rather than returning an
// error for that case.
func (m *Machine) Allow(method string, kind protocol.Kind) error {
	switch m.status {
	case ExitingSuccess, ExitingFailure:
		panic("lifecycle: dispatch invoked after exit; process should have terminated")

	case Uninitialized:
		if method == methodInitialize || method == methodExit {
			return nil
		}
		if method == methodShutdown {
			return protocol.NewTaxonomyErr(protocol.InvalidRequest, errors.New("shutdown received before initialize"))
		}
		return protocol.NewTaxonomyErr(protocol.ServerNotInitialized, errors.Errorf("method %q requires initialize first", method))

	case Initializing:
		if method == methodInitialized || method == methodProgress || method == methodExit {
			return nil
		}
		return protocol.NewTaxonomyErr(protocol.InvalidRequest, errors.Errorf("method %q not allowed while initializing", method))

	case Initialized:
		return nil

	case Shutdown:
		if method == methodExit {
			return nil
		}
		return protocol.NewTaxonomyErr(protocol.InvalidRequest, errors.Errorf("method %q not allowed after shutdown", method))

	default:
		return protocol.NewTaxonomyErr(protocol.InternalError, errors.Errorf("unknown lifecycle status %v", m.status))
	}
}

// Apply records the effect of a successfully-handled lifecycle method on
// Status. The dispatcher calls it after Allow has passed and the method's
// handler succeeded (for initialize, only on success — a failed
// initialize must not move the state forward).
func (m *Machine) Apply(method string) {
	from := m.status

	switch {
	case method == methodInitialize && m.status == Uninitialized:
		m.status = Initializing
	case method == methodInitialized && m.status == Initializing:
		m.status = Initialized
	case method == methodShutdown && m.status == Initialized:
		m.status = Shutdown
	case method == methodExit && m.status == Shutdown:
		m.status = ExitingSuccess
	case method == methodExit && m.status == Initialized:
		m.status = ExitingFailure
	default:
		return
	}

	m.logger.WithFields(logrus.Fields{
		"method": method,
		"from":   from.String(),
		"to":     m.status.String(),
	}).Info("lifecycle transition")
}
