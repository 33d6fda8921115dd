// Package tracing wraps opentracing span creation and Jaeger tracer
// construction.
package tracing

import (
	"context"
	"io"
	"time"

	opentracing "github.com/opentracing/opentracing-go"
	jaeger "github.com/uber/jaeger-client-go"
	"go.uber.org/zap"
)

// ChildSpan starts a span as a child of whatever span (if any) is already
// attached to ctx, returning the new span and a context carrying it.
func ChildSpan(ctx context.Context, operation string) (opentracing.Span, context.Context) {
	parent := opentracing.SpanFromContext(ctx)
	if parent == nil {
		span := opentracing.GlobalTracer().StartSpan(operation)
		return span, opentracing.ContextWithSpan(ctx, span)
	}

	span := parent.Tracer().StartSpan(operation, opentracing.ChildOf(parent.Context()))
	return span, opentracing.ContextWithSpan(ctx, span)
}

// Init stands up a Jaeger tracer reporting to the local agent and installs
// it as the opentracing global tracer. The returned closer must be closed
// at process shutdown to flush buffered spans. logger is a zap.Logger
// rather than the logrus.FieldLogger used everywhere else in this repo,
// matching the jaeger-client-go constructors' own logging hook.
func Init(service string, logger *zap.Logger) (opentracing.Tracer, io.Closer) {
	sender, err := jaeger.NewUDPTransport("0.0.0.0:6831", 0)
	if err != nil {
		logger.Error("initializing jaeger UDP transport", zap.Error(err))
		return opentracing.NoopTracer{}, noopCloser{}
	}

	reporter := jaeger.NewRemoteReporter(
		sender,
		jaeger.ReporterOptions.BufferFlushInterval(1*time.Second),
	)

	tracer, closer := jaeger.NewTracer(service, jaeger.NewConstSampler(true), reporter)
	opentracing.SetGlobalTracer(tracer)
	return tracer, closer
}

// Noop installs and returns a no-op tracer, for runs with tracing disabled.
func Noop() (opentracing.Tracer, io.Closer) {
	tracer := opentracing.NoopTracer{}
	opentracing.SetGlobalTracer(tracer)
	return tracer, noopCloser{}
}

type noopCloser struct{}

func (noopCloser) Close() error { return nil }
