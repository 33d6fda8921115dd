package protocol

import "encoding/json"

// TextDocumentItem is the full text of a document as sent on didOpen.
type TextDocumentItem struct {
	URI        string `json:"uri"`
	LanguageID string `json:"languageId"`
	Version    int    `json:"version"`
	Text       string `json:"text"`
}

// TextDocumentIdentifier names a document by URI only.
type TextDocumentIdentifier struct {
	URI string `json:"uri"`
}

// VersionedTextDocumentIdentifier adds the version used by didChange.
type VersionedTextDocumentIdentifier struct {
	TextDocumentIdentifier
	Version int `json:"version"`
}

// TextDocumentPositionParams is the common {textDocument, position} shape
// shared by hover, definition, completion, and friends.
type TextDocumentPositionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     Position               `json:"position"`
}

// DidOpenTextDocumentParams is textDocument/didOpen's payload.
type DidOpenTextDocumentParams struct {
	TextDocument TextDocumentItem `json:"textDocument"`
}

// TextDocumentContentChangeEvent is one entry of didChange's contentChanges;
// only full-document sync is implemented, so Range is ignored if present.
type TextDocumentContentChangeEvent struct {
	Range *Range `json:"range,omitempty"`
	Text  string `json:"text"`
}

// DidChangeTextDocumentParams is textDocument/didChange's payload.
type DidChangeTextDocumentParams struct {
	TextDocument   VersionedTextDocumentIdentifier   `json:"textDocument"`
	ContentChanges []TextDocumentContentChangeEvent `json:"contentChanges"`
}

// DidSaveTextDocumentParams is textDocument/didSave's payload.
type DidSaveTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Text         *string                `json:"text,omitempty"`
}

// DidCloseTextDocumentParams is textDocument/didClose's payload.
type DidCloseTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// WillSaveTextDocumentParams is willSave/willSaveWaitUntil's payload.
type WillSaveTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Reason       int                    `json:"reason"`
}

// Diagnostic is one syntax-checker finding, in the subset of fields the
// autofix pipeline and publishDiagnostics need.
type Diagnostic struct {
	Range    Range  `json:"range"`
	Severity int    `json:"severity,omitempty"`
	Source   string `json:"source,omitempty"`
	Message  string `json:"message"`
}

// PublishDiagnosticsParams is textDocument/publishDiagnostics' payload.
type PublishDiagnosticsParams struct {
	URI         string       `json:"uri"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// TextEdit is one replacement span within a document.
type TextEdit struct {
	Range   Range  `json:"range"`
	NewText string `json:"newText"`
}

// WorkspaceEdit maps a document URI to the edits to apply to it.
type WorkspaceEdit struct {
	Changes map[string][]TextEdit `json:"changes"`
}

// ApplyWorkspaceEditParams is workspace/applyEdit's payload.
type ApplyWorkspaceEditParams struct {
	Label string        `json:"label,omitempty"`
	Edit  WorkspaceEdit `json:"edit"`
}

// CodeActionContext carries the diagnostics in scope for a codeAction
// request, and is also used internally by the autofix pipeline to filter
// checker diagnostics into fixAll edits.
type CodeActionContext struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
	Only        []string     `json:"only,omitempty"`
}

// CodeActionParams is textDocument/codeAction's payload.
type CodeActionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
	Context      CodeActionContext      `json:"context"`
}

// CodeAction is one entry returned from textDocument/codeAction, or built
// internally by the autofix pipeline before being posted as an applyEdit.
type CodeAction struct {
	Title string         `json:"title"`
	Kind  string         `json:"kind"`
	Edit  *WorkspaceEdit `json:"edit,omitempty"`
}

// ShowMessageParams is window/showMessage's payload.
type ShowMessageParams struct {
	Type    int    `json:"type"`
	Message string `json:"message"`
}

// Message type levels for window/showMessage, per LSP.
const (
	MessageTypeError   = 1
	MessageTypeWarning = 2
	MessageTypeInfo    = 3
	MessageTypeLog     = 4
)

// DidChangeConfigurationParams is workspace/didChangeConfiguration's
// payload; Settings may be null, in which case a pull-capable client
// should be re-asked via workspace/configuration.
type DidChangeConfigurationParams struct {
	Settings json.RawMessage `json:"settings"`
}

// ConfigurationItem is one entry of a workspace/configuration request.
type ConfigurationItem struct {
	Section string `json:"section"`
}

// ConfigurationParams is workspace/configuration's request payload.
type ConfigurationParams struct {
	Items []ConfigurationItem `json:"items"`
}

// SetTraceParams is $/setTrace's payload.
type SetTraceParams struct {
	Value string `json:"value"`
}

// CancelParams is $/cancelRequest's payload.
type CancelParams struct {
	ID RequestId `json:"id"`
}

// SemanticTokensParams is textDocument/semanticTokens/full's payload.
type SemanticTokensParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// SemanticTokensRangeParams is textDocument/semanticTokens/range's payload.
type SemanticTokensRangeParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
}

// SemanticTokens is the flat, delta-encoded token data result.
type SemanticTokens struct {
	Data []int `json:"data"`
}

// InlayHintParams is textDocument/inlayHint's payload.
type InlayHintParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
}

// InlayHint is one inline annotation.
type InlayHint struct {
	Position Position `json:"position"`
	Label    string   `json:"label"`
}

// CompletionParams is textDocument/completion's payload.
type CompletionParams struct {
	TextDocumentPositionParams
}

// CompletionItem is one completion candidate.
type CompletionItem struct {
	Label  string `json:"label"`
	Detail string `json:"detail,omitempty"`
}

// CompletionList is textDocument/completion's result.
type CompletionList struct {
	IsIncomplete bool             `json:"isIncomplete"`
	Items        []CompletionItem `json:"items"`
}

// SignatureInformation is one candidate signature.
type SignatureInformation struct {
	Label string `json:"label"`
}

// SignatureHelp is textDocument/signatureHelp's result.
type SignatureHelp struct {
	Signatures []SignatureInformation `json:"signatures"`
}

// Location names a span within a document.
type Location struct {
	URI   string `json:"uri"`
	Range Range  `json:"range"`
}

// DocumentSymbol is one entry of textDocument/documentSymbol's result.
type DocumentSymbol struct {
	Name           string `json:"name"`
	Kind           int    `json:"kind"`
	Range          Range  `json:"range"`
	SelectionRange Range  `json:"selectionRange"`
}

// DocumentFormattingParams is textDocument/formatting's payload.
type DocumentFormattingParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// RenameParams is textDocument/rename's payload.
type RenameParams struct {
	TextDocumentPositionParams
	NewName string `json:"newName"`
}

// ReferenceContext toggles whether the declaration itself is included.
type ReferenceContext struct {
	IncludeDeclaration bool `json:"includeDeclaration"`
}

// ReferenceParams is textDocument/references' payload.
type ReferenceParams struct {
	TextDocumentPositionParams
	Context ReferenceContext `json:"context"`
}

// DocumentHighlight is one entry of textDocument/documentHighlight's result.
type DocumentHighlight struct {
	Range Range `json:"range"`
	Kind  int   `json:"kind,omitempty"`
}

// MarkupContent is a hover/documentation payload with an explicit format.
type MarkupContent struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// Hover is textDocument/hover's result.
type Hover struct {
	Contents MarkupContent `json:"contents"`
}

// FoldingRangeParams is textDocument/foldingRange's payload.
type FoldingRangeParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// FoldingRange is one collapsible region.
type FoldingRange struct {
	StartLine int `json:"startLine"`
	EndLine   int `json:"endLine"`
}

// SelectionRangeParams is textDocument/selectionRange's payload.
type SelectionRangeParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Positions    []Position             `json:"positions"`
}

// SelectionRange is one expanding-selection node; Parent is omitted since
// this implementation returns single-level ranges only.
type SelectionRange struct {
	Range Range `json:"range"`
}
