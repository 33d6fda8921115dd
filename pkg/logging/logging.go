// Package logging builds the session's structured logger, grounded on the
// teacher's cmd/jsonnet-language-server/main.go initLogger: a logrus logger
// with a caller-context hook attaching the calling function's file:line.
package logging

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// New builds a logrus.FieldLogger tagged with app=zls, at Debug level when
// debug is true, with a caller-context hook installed.
func New(debug bool) logrus.FieldLogger {
	logger := logrus.New()
	logger.Formatter = &logrus.TextFormatter{}

	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	logger.AddHook(&callerHook{skip: 8})

	return logger.WithFields(logrus.Fields{"app": "zls"})
}

// NewTracerLogger builds the zap.Logger jaeger-client-go's constructors
// expect, kept separate from the logrus logger New returns since the two
// libraries serve different call sites (request-scoped structured logs vs.
// the tracer's own startup/transport errors).
func NewTracerLogger(debug bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// callerHook attaches "source": "file:line:func" to every entry, skip
// frames up through the logrus internals to the actual call site.
type callerHook struct {
	skip int
}

func (h *callerHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *callerHook) Fire(entry *logrus.Entry) error {
	if pc, file, line, ok := runtime.Caller(h.skip); ok {
		funcName := runtime.FuncForPC(pc).Name()
		entry.Data["source"] = fmt.Sprintf("%s:%d:%s", filepath.Base(file), line, filepath.Base(funcName))
	}
	return nil
}
