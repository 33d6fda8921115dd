package handlers

import (
	"context"

	"github.com/xphoniex/zls/pkg/capabilities"
	"github.com/xphoniex/zls/pkg/config"
	"github.com/xphoniex/zls/pkg/protocol"
	"github.com/xphoniex/zls/pkg/server"
)

// autofixMode resolves the effective autofix strategy from the configured
// mode and the negotiated client capabilities, falling back to none
// whenever the client can't apply the edits the chosen mode would need.
func autofixMode(cfg *config.Config, caps capabilities.Snapshot) config.AutofixMode {
	if cfg.EnableAutofix == config.AutofixNone {
		return config.AutofixNone
	}
	if !caps.ApplyEdits {
		return config.AutofixNone
	}
	if caps.WillSaveWaitUntil {
		return config.AutofixWillSaveWaitUntil
	}
	return config.AutofixOnSave
}

// computeFixAllEdits asks the checker for diagnostics on uri, builds the
// code actions via buildFixAllActions, and returns the edits of the single
// action whose edit map names exactly uri — nil if there is none.
func computeFixAllEdits(ctx context.Context, s *server.Server, uri string) ([]protocol.TextEdit, error) {
	if s.Checker == nil {
		return nil, nil
	}

	doc, err := s.DocumentStore.Get(uri)
	if err != nil {
		return nil, nil
	}

	diags, err := s.Checker.Check(ctx, uri, doc.Text)
	if err != nil {
		return nil, err
	}

	actions := buildFixAllActions(uri, diags)
	for _, action := range actions {
		if action.Edit == nil {
			continue
		}
		if len(action.Edit.Changes) != 1 {
			continue
		}
		if edits, ok := action.Edit.Changes[uri]; ok {
			return edits, nil
		}
	}
	return nil, nil
}

// buildFixAllActions turns checker diagnostics into a single source.fixAll
// code action whose edit for uri holds one entry per diagnostic, each
// replacing that diagnostic's range with an empty string. The checker
// contract carries no suggested replacement, so every fix is a deletion of
// the diagnostic's own span. It returns nil when there are no diagnostics.
func buildFixAllActions(uri string, diags []protocol.Diagnostic) []protocol.CodeAction {
	if len(diags) == 0 {
		return nil
	}

	edits := make([]protocol.TextEdit, 0, len(diags))
	for _, d := range diags {
		edits = append(edits, protocol.TextEdit{Range: d.Range, NewText: ""})
	}

	return []protocol.CodeAction{{
		Title: "Fix all",
		Kind:  "source.fixAll",
		Edit:  &protocol.WorkspaceEdit{Changes: map[string][]protocol.TextEdit{uri: edits}},
	}}
}
