// The handlers in this file resolve a document through the store and
// return a vacuous-but-well-formed result: zls's core is the dispatch
// machinery, not a Zig language engine, so these stand in for the
// feature-provider collaborators a real implementation would plug in,
// without doing actual source analysis. Unknown URIs return a null
// result, never an error.
package handlers

import (
	"context"

	"github.com/xphoniex/zls/pkg/dispatch"
	"github.com/xphoniex/zls/pkg/protocol"
	"github.com/xphoniex/zls/pkg/server"
)

func handleSemanticTokensFull(_ context.Context, s *server.Server, _ *dispatch.Arena, raw interface{}) (interface{}, error) {
	params := raw.(protocol.SemanticTokensParams)
	if _, err := s.DocumentStore.Get(params.TextDocument.URI); err != nil {
		return nil, nil
	}
	return protocol.SemanticTokens{Data: []int{}}, nil
}

func handleSemanticTokensRange(_ context.Context, s *server.Server, _ *dispatch.Arena, raw interface{}) (interface{}, error) {
	params := raw.(protocol.SemanticTokensRangeParams)
	if _, err := s.DocumentStore.Get(params.TextDocument.URI); err != nil {
		return nil, nil
	}
	return protocol.SemanticTokens{Data: []int{}}, nil
}

func handleInlayHint(_ context.Context, s *server.Server, _ *dispatch.Arena, raw interface{}) (interface{}, error) {
	params := raw.(protocol.InlayHintParams)
	if !s.Config.EnableInlayHints {
		return []protocol.InlayHint{}, nil
	}
	if _, err := s.DocumentStore.Get(params.TextDocument.URI); err != nil {
		return nil, nil
	}
	return []protocol.InlayHint{}, nil
}

func handleCompletion(_ context.Context, s *server.Server, _ *dispatch.Arena, raw interface{}) (interface{}, error) {
	params := raw.(protocol.CompletionParams)
	if _, err := s.DocumentStore.Get(params.TextDocument.URI); err != nil {
		return nil, nil
	}
	return protocol.CompletionList{Items: []protocol.CompletionItem{}}, nil
}

func handleSignatureHelp(_ context.Context, s *server.Server, _ *dispatch.Arena, raw interface{}) (interface{}, error) {
	params := raw.(protocol.TextDocumentPositionParams)
	if _, err := s.DocumentStore.Get(params.TextDocument.URI); err != nil {
		return nil, nil
	}
	return protocol.SignatureHelp{Signatures: []protocol.SignatureInformation{}}, nil
}

func handleDefinition(_ context.Context, s *server.Server, _ *dispatch.Arena, raw interface{}) (interface{}, error) {
	params := raw.(protocol.TextDocumentPositionParams)
	if _, err := s.DocumentStore.Get(params.TextDocument.URI); err != nil {
		return nil, nil
	}
	return []protocol.Location{}, nil
}

func handleTypeDefinition(ctx context.Context, s *server.Server, a *dispatch.Arena, raw interface{}) (interface{}, error) {
	return handleDefinition(ctx, s, a, raw)
}

func handleImplementation(ctx context.Context, s *server.Server, a *dispatch.Arena, raw interface{}) (interface{}, error) {
	return handleDefinition(ctx, s, a, raw)
}

func handleDeclaration(ctx context.Context, s *server.Server, a *dispatch.Arena, raw interface{}) (interface{}, error) {
	return handleDefinition(ctx, s, a, raw)
}

func handleHover(_ context.Context, s *server.Server, _ *dispatch.Arena, raw interface{}) (interface{}, error) {
	params := raw.(protocol.TextDocumentPositionParams)
	if _, err := s.DocumentStore.Get(params.TextDocument.URI); err != nil {
		return nil, nil
	}

	kind := "plaintext"
	if s.Capabilities.HoverMarkdown {
		kind = "markdown"
	}
	return protocol.Hover{Contents: protocol.MarkupContent{Kind: kind, Value: ""}}, nil
}

func handleDocumentSymbol(_ context.Context, s *server.Server, _ *dispatch.Arena, raw interface{}) (interface{}, error) {
	params := raw.(protocol.DocumentFormattingParams)
	if _, err := s.DocumentStore.Get(params.TextDocument.URI); err != nil {
		return nil, nil
	}
	return []protocol.DocumentSymbol{}, nil
}

func handleFormatting(_ context.Context, s *server.Server, _ *dispatch.Arena, raw interface{}) (interface{}, error) {
	params := raw.(protocol.DocumentFormattingParams)
	if _, err := s.DocumentStore.Get(params.TextDocument.URI); err != nil {
		return nil, nil
	}
	return []protocol.TextEdit{}, nil
}

func handleRename(_ context.Context, s *server.Server, _ *dispatch.Arena, raw interface{}) (interface{}, error) {
	params := raw.(protocol.RenameParams)
	if _, err := s.DocumentStore.Get(params.TextDocument.URI); err != nil {
		return nil, nil
	}
	return protocol.WorkspaceEdit{Changes: map[string][]protocol.TextEdit{}}, nil
}

func handleReferences(_ context.Context, s *server.Server, _ *dispatch.Arena, raw interface{}) (interface{}, error) {
	params := raw.(protocol.ReferenceParams)
	if _, err := s.DocumentStore.Get(params.TextDocument.URI); err != nil {
		return nil, nil
	}
	return []protocol.Location{}, nil
}

func handleDocumentHighlight(_ context.Context, s *server.Server, _ *dispatch.Arena, raw interface{}) (interface{}, error) {
	params := raw.(protocol.TextDocumentPositionParams)
	if _, err := s.DocumentStore.Get(params.TextDocument.URI); err != nil {
		return nil, nil
	}
	return []protocol.DocumentHighlight{}, nil
}

func handleCodeAction(_ context.Context, s *server.Server, _ *dispatch.Arena, raw interface{}) (interface{}, error) {
	params := raw.(protocol.CodeActionParams)
	if _, err := s.DocumentStore.Get(params.TextDocument.URI); err != nil {
		return nil, nil
	}

	actions := buildFixAllActions(params.TextDocument.URI, params.Context.Diagnostics)
	if actions == nil {
		return []protocol.CodeAction{}, nil
	}
	return actions, nil
}

func handleFoldingRange(_ context.Context, s *server.Server, _ *dispatch.Arena, raw interface{}) (interface{}, error) {
	params := raw.(protocol.FoldingRangeParams)
	if _, err := s.DocumentStore.Get(params.TextDocument.URI); err != nil {
		return nil, nil
	}
	return []protocol.FoldingRange{}, nil
}

func handleSelectionRange(_ context.Context, s *server.Server, _ *dispatch.Arena, raw interface{}) (interface{}, error) {
	params := raw.(protocol.SelectionRangeParams)
	if _, err := s.DocumentStore.Get(params.TextDocument.URI); err != nil {
		return nil, nil
	}

	ranges := make([]protocol.SelectionRange, len(params.Positions))
	for i, p := range params.Positions {
		ranges[i] = protocol.SelectionRange{Range: protocol.Range{Start: p, End: p}}
	}
	return ranges, nil
}
