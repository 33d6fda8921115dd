package cmd

import (
	"context"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/xphoniex/zls/pkg/dispatch"
	"github.com/xphoniex/zls/pkg/handlers"
	"github.com/xphoniex/zls/pkg/logging"
	"github.com/xphoniex/zls/pkg/recording"
	"github.com/xphoniex/zls/pkg/server"
)

var (
	replayFile    string
	replayCPUProf bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Feed a recorded session file through the dispatcher and dump outbound frames",
	RunE: func(cmd *cobra.Command, args []string) error {
		if replayCPUProf {
			defer profile.Start().Stop()
		}
		return runReplay(replayFile)
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringVarP(&replayFile, "file", "f", "", "recorded session file")
	replayCmd.Flags().BoolVarP(&replayCPUProf, "cpu-profile", "p", false, "enable CPU profiling")
	_ = replayCmd.MarkFlagRequired("file")
}

func runReplay(path string) error {
	logger := logging.New(false)

	srv, err := server.New(server.WithLogger(logger))
	if err != nil {
		return err
	}
	defer srv.Close()

	d := dispatch.New(srv, handlers.Table, logger)
	d.SetTestMode(true)

	replayer, err := recording.OpenReplay(path)
	if err != nil {
		return err
	}
	defer replayer.Close()

	ctx := context.Background()
	for {
		raw, err := replayer.Next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		d.Dispatch(ctx, raw)

		for _, frame := range srv.Queue.Drain() {
			spew.Dump(string(frame))
		}
	}
}
