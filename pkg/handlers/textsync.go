package handlers

import (
	"context"

	"github.com/xphoniex/zls/pkg/config"
	"github.com/xphoniex/zls/pkg/dispatch"
	"github.com/xphoniex/zls/pkg/protocol"
	"github.com/xphoniex/zls/pkg/server"
)

func handleDidOpen(_ context.Context, s *server.Server, _ *dispatch.Arena, raw interface{}) (interface{}, error) {
	params := raw.(protocol.DidOpenTextDocumentParams)
	s.DocumentStore.Open(params.TextDocument)
	return nil, nil
}

func handleDidChange(_ context.Context, s *server.Server, _ *dispatch.Arena, raw interface{}) (interface{}, error) {
	params := raw.(protocol.DidChangeTextDocumentParams)
	s.DocumentStore.Change(params.TextDocument, params.ContentChanges)
	return nil, nil
}

func handleDidClose(_ context.Context, s *server.Server, _ *dispatch.Arena, raw interface{}) (interface{}, error) {
	params := raw.(protocol.DidCloseTextDocumentParams)
	s.DocumentStore.Close(params.TextDocument)
	return nil, nil
}

func handleDidSave(ctx context.Context, s *server.Server, _ *dispatch.Arena, raw interface{}) (interface{}, error) {
	params := raw.(protocol.DidSaveTextDocumentParams)
	s.DocumentStore.Save(params.TextDocument, params.Text)

	if autofixMode(s.Config, s.Capabilities) != config.AutofixOnSave {
		return nil, nil
	}

	edits, err := computeFixAllEdits(ctx, s, params.TextDocument.URI)
	if err != nil {
		s.Logger.WithError(err).Warn("computing autofix edits on save")
		return nil, nil
	}
	if edits == nil {
		return nil, nil
	}

	editParams := protocol.ApplyWorkspaceEditParams{
		Label: "zls: fix all",
		Edit:  protocol.WorkspaceEdit{Changes: map[string][]protocol.TextEdit{params.TextDocument.URI: edits}},
	}
	if err := s.Writer.Request(protocol.NewStrID("apply_edit"), "workspace/applyEdit", editParams); err != nil {
		s.Logger.WithError(err).Warn("posting workspace/applyEdit")
	}

	return nil, nil
}

func handleWillSaveWaitUntil(ctx context.Context, s *server.Server, _ *dispatch.Arena, raw interface{}) (interface{}, error) {
	params := raw.(protocol.WillSaveTextDocumentParams)

	if autofixMode(s.Config, s.Capabilities) != config.AutofixWillSaveWaitUntil {
		return []protocol.TextEdit{}, nil
	}

	edits, err := computeFixAllEdits(ctx, s, params.TextDocument.URI)
	if err != nil {
		s.Logger.WithError(err).Warn("computing autofix edits on willSaveWaitUntil")
		return []protocol.TextEdit{}, nil
	}
	if edits == nil {
		return []protocol.TextEdit{}, nil
	}

	return edits, nil
}
