package protocol

// This file holds the LSP wire-shape types the capability negotiator and
// initialize handler need, in the lineage of sourcegraph/go-langserver's
// types, extended with the LSP 3.16/3.17 capabilities (semantic tokens,
// inlay hints, selection range) that postdate that library's last release.

// TextDocumentSyncKind enumerates how the client is asked to report changes.
type TextDocumentSyncKind int

const (
	TDSKNone TextDocumentSyncKind = iota
	TDSKFull
	TDSKIncremental
)

type ClientInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

type InitializeParams struct {
	ProcessID             int                   `json:"processId,omitempty"`
	ClientInfo            *ClientInfo           `json:"clientInfo,omitempty"`
	RootURI               string                `json:"rootUri,omitempty"`
	InitializationOptions interface{}           `json:"initializationOptions,omitempty"`
	Capabilities          RawClientCapabilities `json:"capabilities"`
	Trace                 string                `json:"trace,omitempty"`
}

// RawClientCapabilities is the defensive, all-optional nested shape the
// client may send; every group may be absent.
type RawClientCapabilities struct {
	Workspace    WorkspaceClientCapabilities   `json:"workspace,omitempty"`
	TextDocument TextDocumentClientCapabilites `json:"textDocument,omitempty"`
	General      GeneralClientCapabilities     `json:"general,omitempty"`
}

type GeneralClientCapabilities struct {
	PositionEncodings []string `json:"positionEncodings,omitempty"`
}

type WorkspaceClientCapabilities struct {
	ApplyEdit              bool                       `json:"applyEdit,omitempty"`
	Configuration          bool                       `json:"configuration,omitempty"`
	DidChangeConfiguration DynamicRegistrationSupport `json:"didChangeConfiguration,omitempty"`
}

type DynamicRegistrationSupport struct {
	DynamicRegistration bool `json:"dynamicRegistration,omitempty"`
}

type TextDocumentClientCapabilites struct {
	Synchronization    SynchronizationCapabilities    `json:"synchronization,omitempty"`
	PublishDiagnostics  PublishDiagnosticsCapabilities `json:"publishDiagnostics,omitempty"`
	Hover               HoverCapabilities              `json:"hover,omitempty"`
	Completion          CompletionCapabilities         `json:"completion,omitempty"`
	CodeAction          CodeActionCapabilities         `json:"codeAction,omitempty"`
}

type SynchronizationCapabilities struct {
	WillSave          bool `json:"willSave,omitempty"`
	WillSaveWaitUntil bool `json:"willSaveWaitUntil,omitempty"`
	DidSave           bool `json:"didSave,omitempty"`
}

type PublishDiagnosticsCapabilities struct {
	RelatedInformation bool `json:"relatedInformation,omitempty"`
}

type HoverCapabilities struct {
	ContentFormat []string `json:"contentFormat,omitempty"`
}

type CompletionCapabilities struct {
	CompletionItem CompletionItemCapabilities `json:"completionItem,omitempty"`
}

type CompletionItemCapabilities struct {
	SnippetSupport      bool     `json:"snippetSupport,omitempty"`
	DocumentationFormat []string `json:"documentationFormat,omitempty"`
	LabelDetailsSupport bool     `json:"labelDetailsSupport,omitempty"`
}

type CodeActionCapabilities struct {
	CodeActionLiteralSupport CodeActionLiteralSupport `json:"codeActionLiteralSupport,omitempty"`
}

type CodeActionLiteralSupport struct {
	CodeActionKind CodeActionKindValueSet `json:"codeActionKind,omitempty"`
}

type CodeActionKindValueSet struct {
	ValueSet []string `json:"valueSet,omitempty"`
}

// InitializeResult is the server's reply to initialize.
type InitializeResult struct {
	Capabilities ServerCapabilities `json:"capabilities"`
	ServerInfo   *ServerInfo        `json:"serverInfo,omitempty"`
}

type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// ServerCapabilities is the server's fixed, advertised feature set.
type ServerCapabilities struct {
	PositionEncoding           OffsetEncoding             `json:"positionEncoding,omitempty"`
	TextDocumentSync           *TextDocumentSyncOptions   `json:"textDocumentSync,omitempty"`
	HoverProvider              bool                       `json:"hoverProvider,omitempty"`
	CompletionProvider         *CompletionOptions         `json:"completionProvider,omitempty"`
	SignatureHelpProvider      *SignatureHelpOptions      `json:"signatureHelpProvider,omitempty"`
	DeclarationProvider        bool                       `json:"declarationProvider,omitempty"`
	DefinitionProvider         bool                       `json:"definitionProvider,omitempty"`
	TypeDefinitionProvider     bool                       `json:"typeDefinitionProvider,omitempty"`
	ImplementationProvider     bool                       `json:"implementationProvider,omitempty"`
	ReferencesProvider         bool                       `json:"referencesProvider,omitempty"`
	DocumentHighlightProvider  bool                       `json:"documentHighlightProvider,omitempty"`
	DocumentSymbolProvider     bool                       `json:"documentSymbolProvider,omitempty"`
	CodeActionProvider         bool                       `json:"codeActionProvider,omitempty"`
	DocumentFormattingProvider bool                       `json:"documentFormattingProvider,omitempty"`
	RenameProvider             bool                       `json:"renameProvider,omitempty"`
	FoldingRangeProvider       bool                       `json:"foldingRangeProvider,omitempty"`
	SelectionRangeProvider     bool                       `json:"selectionRangeProvider,omitempty"`
	InlayHintProvider          bool                       `json:"inlayHintProvider,omitempty"`
	SemanticTokensProvider     *SemanticTokensOptions     `json:"semanticTokensProvider,omitempty"`
}

type TextDocumentSyncOptions struct {
	OpenClose         bool         `json:"openClose,omitempty"`
	Change            TextDocumentSyncKind `json:"change,omitempty"`
	WillSave          bool         `json:"willSave,omitempty"`
	WillSaveWaitUntil bool         `json:"willSaveWaitUntil,omitempty"`
	Save              *SaveOptions `json:"save,omitempty"`
}

type SaveOptions struct {
	IncludeText bool `json:"includeText,omitempty"`
}

type CompletionOptions struct {
	ResolveProvider   bool     `json:"resolveProvider,omitempty"`
	TriggerCharacters []string `json:"triggerCharacters,omitempty"`
}

type SignatureHelpOptions struct {
	TriggerCharacters []string `json:"triggerCharacters,omitempty"`
}

type SemanticTokensLegend struct {
	TokenTypes     []string `json:"tokenTypes"`
	TokenModifiers []string `json:"tokenModifiers"`
}

type SemanticTokensOptions struct {
	Legend SemanticTokensLegend `json:"legend"`
	Range  bool                 `json:"range,omitempty"`
	Full   bool                 `json:"full,omitempty"`
}
