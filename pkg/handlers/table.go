// Package handlers builds the static method table the dispatcher looks up
// by name: one dispatch.Entry per supported LSP method, each pairing a
// typed-params decoder with the uniform invoker signature.
package handlers

import (
	"github.com/xphoniex/zls/pkg/dispatch"
	"github.com/xphoniex/zls/pkg/protocol"
)

// Table is the complete, static method-to-handler registration built once
// at package init.
var Table = dispatch.Table{}

func init() {
	add := func(e dispatch.Entry) { Table[e.Method] = e }

	add(dispatch.Entry{Method: "initialize", Kind: protocol.KindRequest, Decode: decodeParams[protocol.InitializeParams], Invoke: handleInitialize})
	add(dispatch.Entry{Method: "initialized", Kind: protocol.KindNotification, Decode: decodeParams[struct{}], Invoke: handleInitialized})
	add(dispatch.Entry{Method: "shutdown", Kind: protocol.KindRequest, Decode: decodeParams[struct{}], Invoke: handleShutdown})
	add(dispatch.Entry{Method: "exit", Kind: protocol.KindNotification, Decode: decodeParams[struct{}], Invoke: handleExit})

	add(dispatch.Entry{Method: "$/cancelRequest", Kind: protocol.KindNotification, Decode: decodeParams[protocol.CancelParams], Invoke: handleCancelRequest})
	add(dispatch.Entry{Method: "$/progress", Kind: protocol.KindNotification, Decode: decodeParams[struct{}], Invoke: handleProgress})
	add(dispatch.Entry{Method: "$/setTrace", Kind: protocol.KindNotification, Decode: decodeParams[protocol.SetTraceParams], Invoke: handleSetTrace})
	add(dispatch.Entry{Method: "workspace/didChangeConfiguration", Kind: protocol.KindNotification, Decode: decodeParams[protocol.DidChangeConfigurationParams], Invoke: handleDidChangeConfiguration})

	add(dispatch.Entry{Method: "textDocument/didOpen", Kind: protocol.KindNotification, Decode: decodeParams[protocol.DidOpenTextDocumentParams], Invoke: handleDidOpen})
	add(dispatch.Entry{Method: "textDocument/didChange", Kind: protocol.KindNotification, Decode: decodeParams[protocol.DidChangeTextDocumentParams], Invoke: handleDidChange})
	add(dispatch.Entry{Method: "textDocument/didSave", Kind: protocol.KindNotification, Decode: decodeParams[protocol.DidSaveTextDocumentParams], Invoke: handleDidSave})
	add(dispatch.Entry{Method: "textDocument/didClose", Kind: protocol.KindNotification, Decode: decodeParams[protocol.DidCloseTextDocumentParams], Invoke: handleDidClose})
	add(dispatch.Entry{Method: "textDocument/willSaveWaitUntil", Kind: protocol.KindRequest, Decode: decodeParams[protocol.WillSaveTextDocumentParams], Invoke: handleWillSaveWaitUntil})

	add(dispatch.Entry{Method: "textDocument/semanticTokens/full", Kind: protocol.KindRequest, Decode: decodeParams[protocol.SemanticTokensParams], Invoke: handleSemanticTokensFull})
	add(dispatch.Entry{Method: "textDocument/semanticTokens/range", Kind: protocol.KindRequest, Decode: decodeParams[protocol.SemanticTokensRangeParams], Invoke: handleSemanticTokensRange})
	add(dispatch.Entry{Method: "textDocument/inlayHint", Kind: protocol.KindRequest, Decode: decodeParams[protocol.InlayHintParams], Invoke: handleInlayHint})
	add(dispatch.Entry{Method: "textDocument/completion", Kind: protocol.KindRequest, Decode: decodeParams[protocol.CompletionParams], Invoke: handleCompletion})
	add(dispatch.Entry{Method: "textDocument/signatureHelp", Kind: protocol.KindRequest, Decode: decodeParams[protocol.TextDocumentPositionParams], Invoke: handleSignatureHelp})
	add(dispatch.Entry{Method: "textDocument/definition", Kind: protocol.KindRequest, Decode: decodeParams[protocol.TextDocumentPositionParams], Invoke: handleDefinition})
	add(dispatch.Entry{Method: "textDocument/typeDefinition", Kind: protocol.KindRequest, Decode: decodeParams[protocol.TextDocumentPositionParams], Invoke: handleTypeDefinition})
	add(dispatch.Entry{Method: "textDocument/implementation", Kind: protocol.KindRequest, Decode: decodeParams[protocol.TextDocumentPositionParams], Invoke: handleImplementation})
	add(dispatch.Entry{Method: "textDocument/declaration", Kind: protocol.KindRequest, Decode: decodeParams[protocol.TextDocumentPositionParams], Invoke: handleDeclaration})
	add(dispatch.Entry{Method: "textDocument/hover", Kind: protocol.KindRequest, Decode: decodeParams[protocol.TextDocumentPositionParams], Invoke: handleHover})
	add(dispatch.Entry{Method: "textDocument/documentSymbol", Kind: protocol.KindRequest, Decode: decodeParams[protocol.DocumentFormattingParams], Invoke: handleDocumentSymbol})
	add(dispatch.Entry{Method: "textDocument/formatting", Kind: protocol.KindRequest, Decode: decodeParams[protocol.DocumentFormattingParams], Invoke: handleFormatting})
	add(dispatch.Entry{Method: "textDocument/rename", Kind: protocol.KindRequest, Decode: decodeParams[protocol.RenameParams], Invoke: handleRename})
	add(dispatch.Entry{Method: "textDocument/references", Kind: protocol.KindRequest, Decode: decodeParams[protocol.ReferenceParams], Invoke: handleReferences})
	add(dispatch.Entry{Method: "textDocument/documentHighlight", Kind: protocol.KindRequest, Decode: decodeParams[protocol.TextDocumentPositionParams], Invoke: handleDocumentHighlight})
	add(dispatch.Entry{Method: "textDocument/codeAction", Kind: protocol.KindRequest, Decode: decodeParams[protocol.CodeActionParams], Invoke: handleCodeAction})
	add(dispatch.Entry{Method: "textDocument/foldingRange", Kind: protocol.KindRequest, Decode: decodeParams[protocol.FoldingRangeParams], Invoke: handleFoldingRange})
	add(dispatch.Entry{Method: "textDocument/selectionRange", Kind: protocol.KindRequest, Decode: decodeParams[protocol.SelectionRangeParams], Invoke: handleSelectionRange})
}
