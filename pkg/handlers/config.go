package handlers

import (
	"context"

	"github.com/xphoniex/zls/pkg/config"
	"github.com/xphoniex/zls/pkg/dispatch"
	"github.com/xphoniex/zls/pkg/protocol"
	"github.com/xphoniex/zls/pkg/server"
)

func handleDidChangeConfiguration(_ context.Context, s *server.Server, _ *dispatch.Arena, raw interface{}) (interface{}, error) {
	if s.Replaying() {
		return nil, nil
	}

	params := raw.(protocol.DidChangeConfigurationParams)

	if len(params.Settings) == 0 || string(params.Settings) == "null" {
		if s.Capabilities.ConfigurationPull && !s.Recording() {
			items := make([]protocol.ConfigurationItem, 0, len(config.OptionNames()))
			for _, name := range config.OptionNames() {
				items = append(items, protocol.ConfigurationItem{Section: name})
			}
			if err := s.Writer.Request(protocol.NewStrID("i_haz_configuration"), "workspace/configuration", protocol.ConfigurationParams{Items: items}); err != nil {
				s.Logger.WithError(err).Warn("re-requesting workspace/configuration")
			}
		}
		return nil, nil
	}

	if err := s.Config.ApplyPushed(params.Settings); err != nil {
		showMessage(s, protocol.MessageTypeError, "rejecting pushed configuration: "+err.Error())
		return nil, protocol.NewTaxonomyErr(protocol.InvalidParams, err)
	}

	return nil, nil
}

func handleSetTrace(_ context.Context, s *server.Server, _ *dispatch.Arena, raw interface{}) (interface{}, error) {
	params := raw.(protocol.SetTraceParams)
	s.Capabilities.TraceEnabled = params.Value != "" && params.Value != "off"
	return nil, nil
}

// handleCancelRequest is intentionally a no-op: cancellation semantics are
// an open question left unguessed (see the dispatcher's OnCancel seam).
// Handlers run to completion regardless.
func handleCancelRequest(_ context.Context, _ *server.Server, _ *dispatch.Arena, _ interface{}) (interface{}, error) {
	return nil, nil
}
