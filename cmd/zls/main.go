// Command zls runs the language server core over stdio: one logical
// read-dispatch-drain loop reading requests until the connection closes
// or exit is received.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/xphoniex/zls/pkg/checker"
	"github.com/xphoniex/zls/pkg/dispatch"
	"github.com/xphoniex/zls/pkg/handlers"
	"github.com/xphoniex/zls/pkg/lifecycle"
	"github.com/xphoniex/zls/pkg/logging"
	"github.com/xphoniex/zls/pkg/recording"
	"github.com/xphoniex/zls/pkg/server"
	"github.com/xphoniex/zls/pkg/tracing"
	"github.com/xphoniex/zls/pkg/transport"
)

func main() {
	var (
		debug        bool
		recordPath   string
		replayPath   string
		traceFlag    bool
		toolchainVer string
		jaeger       bool
	)
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.StringVar(&recordPath, "record", "", "record the session to this file")
	flag.StringVar(&replayPath, "replay", "", "replay a recorded session from this file instead of stdin")
	flag.BoolVar(&traceFlag, "trace", false, "force message tracing on")
	flag.StringVar(&toolchainVer, "toolchain-version", "", "toolchain version, reported to the client at initialize")
	flag.BoolVar(&jaeger, "jaeger", false, "report spans to a local Jaeger agent instead of a no-op tracer")
	flag.Parse()

	logger := logging.New(debug)

	var closer io.Closer
	if jaeger {
		_, closer = tracing.Init("zls", logging.NewTracerLogger(debug))
	} else {
		_, closer = tracing.Noop()
	}
	defer closer.Close()

	if err := run(logger, runOptions{
		recordPath:   recordPath,
		replayPath:   replayPath,
		trace:        traceFlag,
		toolchainVer: toolchainVer,
	}); err != nil {
		logger.WithError(err).Error("fatal error")
		os.Exit(1)
	}

	logger.Info("exiting")
}

type runOptions struct {
	recordPath   string
	replayPath   string
	trace        bool
	toolchainVer string
}

func run(logger logrus.FieldLogger, opts runOptions) error {
	var serverOpts []server.Option
	serverOpts = append(serverOpts, server.WithLogger(logger), server.WithTrace(opts.trace))
	if opts.recordPath != "" {
		serverOpts = append(serverOpts, server.WithRecordingPath(opts.recordPath))
	}
	if opts.replayPath != "" {
		serverOpts = append(serverOpts, server.WithReplayPath(opts.replayPath))
	}
	if opts.toolchainVer != "" {
		serverOpts = append(serverOpts, server.WithToolchainVersion(opts.toolchainVer))
	}

	srv, err := server.New(serverOpts...)
	if err != nil {
		return err
	}
	defer srv.Close()

	srv.Checker = checker.NewExecChecker(func() string { return srv.Config.ZigExePath })

	d := dispatch.New(srv, handlers.Table, logger)
	ctx := context.Background()

	if srv.Replaying() {
		return runReplay(ctx, d, srv, opts.replayPath)
	}
	return runStdio(ctx, d, srv)
}

func runStdio(ctx context.Context, d *dispatch.Dispatcher, srv *server.Server) error {
	stream := transport.NewStream(stdrwc{})
	defer stream.Close()

	for {
		raw, err := stream.ReadFrame()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		srv.RecordFrame(raw)
		d.Dispatch(ctx, raw)

		for _, frame := range srv.Queue.Drain() {
			if err := stream.WriteFrame(frame); err != nil {
				return err
			}
		}

		switch srv.Lifecycle.Status() {
		case lifecycle.ExitingSuccess:
			return nil
		case lifecycle.ExitingFailure:
			return errors.New("exit received without a prior shutdown")
		}
	}
}

func runReplay(ctx context.Context, d *dispatch.Dispatcher, srv *server.Server, path string) error {
	replayer, err := recording.OpenReplay(path)
	if err != nil {
		return err
	}
	defer replayer.Close()

	for {
		raw, err := replayer.Next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		d.Dispatch(ctx, raw)
		srv.Queue.Drain()
	}
}

type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdrwc) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}
