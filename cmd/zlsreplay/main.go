// Command zlsreplay is a developer tool that replays a recorded zls
// session and dumps the resulting outbound frames, grounded on the
// teacher's cmd/jlsclient cobra CLI.
package main

import (
	"os"

	"github.com/xphoniex/zls/cmd/zlsreplay/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
