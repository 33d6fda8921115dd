// Package capabilities negotiates a session's fixed capability Snapshot from
// the client's advertised capability tree, and advertises the server's own
// fixed ServerCapabilities.
package capabilities

import (
	"github.com/xphoniex/zls/pkg/protocol"
)

// Snapshot is the flat capability record produced once per session at
// initialize. After that only TraceEnabled changes, when the client sends
// $/setTrace; every other field stays as negotiated.
type Snapshot struct {
	Snippets               bool
	ApplyEdits              bool
	WillSave                bool
	WillSaveWaitUntil       bool
	PublishDiagnostics      bool
	CodeActionFixAll        bool
	HoverMarkdown           bool
	CompletionDocMarkdown   bool
	LabelDetails            bool
	ConfigurationPull       bool
	DidChangeConfigDynamic  bool
	OffsetEncoding          protocol.OffsetEncoding
	TraceEnabled            bool
	MaxDetailLength         int
}

const defaultMaxDetailLength = 1024

// Negotiate collapses the client's advertised capability tree into a fixed
// Snapshot the rest of the core reads instead of the raw nested struct.
func Negotiate(info protocol.ClientInfo, raw protocol.RawClientCapabilities, trace string) Snapshot {
	snap := Snapshot{
		Snippets:               raw.TextDocument.Completion.CompletionItem.SnippetSupport,
		ApplyEdits:             raw.Workspace.ApplyEdit,
		WillSave:               raw.TextDocument.Synchronization.WillSave,
		WillSaveWaitUntil:      raw.TextDocument.Synchronization.WillSaveWaitUntil,
		PublishDiagnostics:     true,
		CodeActionFixAll:       containsKind(raw.TextDocument.CodeAction.CodeActionLiteralSupport.CodeActionKind.ValueSet, "source.fixAll"),
		HoverMarkdown:          markdownPreferred(raw.TextDocument.Hover.ContentFormat),
		CompletionDocMarkdown:  markdownPreferred(raw.TextDocument.Completion.CompletionItem.DocumentationFormat),
		LabelDetails:           raw.TextDocument.Completion.CompletionItem.LabelDetailsSupport,
		ConfigurationPull:      raw.Workspace.Configuration,
		DidChangeConfigDynamic: raw.Workspace.DidChangeConfiguration.DynamicRegistration,
		OffsetEncoding:         protocol.NegotiateOffsetEncoding(raw.General.PositionEncodings),
		TraceEnabled:           trace != "" && trace != "off",
		MaxDetailLength:        defaultMaxDetailLength,
	}

	applyQuirks(info, &snap)
	return snap
}

func markdownPreferred(formats []string) bool {
	for _, f := range formats {
		switch f {
		case "markdown":
			return true
		case "plaintext":
			return false
		}
	}
	return false
}

func containsKind(set []string, want string) bool {
	for _, k := range set {
		if k == want {
			return true
		}
	}
	return false
}

// legend is the fixed semantic-token type/modifier legend advertised by the
// server; order is significant, it's how token indices are interpreted.
var legend = protocol.SemanticTokensLegend{
	TokenTypes: []string{
		"namespace", "type", "enum", "struct", "parameter", "variable",
		"property", "function", "method", "keyword", "comment", "string",
		"number", "operator", "builtin", "label", "errorTag",
	},
	TokenModifiers: []string{
		"declaration", "definition", "readonly", "deprecated", "generic",
	},
}

// ServerCapabilities builds the fixed InitializeResult capability set
// advertised by the server, parameterized only by the negotiated offset
// encoding (the rest never varies by client).
func ServerCapabilities(snap Snapshot) protocol.ServerCapabilities {
	return protocol.ServerCapabilities{
		PositionEncoding: snap.OffsetEncoding,
		TextDocumentSync: &protocol.TextDocumentSyncOptions{
			OpenClose:         true,
			Change:            protocol.TDSKIncremental,
			WillSave:          true,
			WillSaveWaitUntil: true,
			Save:              &protocol.SaveOptions{IncludeText: false},
		},
		HoverProvider: true,
		CompletionProvider: &protocol.CompletionOptions{
			ResolveProvider:   true,
			TriggerCharacters: []string{".", ":", "@", "]", "/"},
		},
		SignatureHelpProvider: &protocol.SignatureHelpOptions{
			TriggerCharacters: []string{"(", ","},
		},
		DeclarationProvider:        true,
		DefinitionProvider:         true,
		TypeDefinitionProvider:     true,
		ImplementationProvider:     true,
		ReferencesProvider:         true,
		DocumentHighlightProvider:  true,
		DocumentSymbolProvider:     true,
		DocumentFormattingProvider: true,
		RenameProvider:             true,
		CodeActionProvider:         true,
		FoldingRangeProvider:       true,
		SelectionRangeProvider:     true,
		InlayHintProvider:          true,
		SemanticTokensProvider: &protocol.SemanticTokensOptions{
			Legend: legend,
			Full:   true,
			Range:  true,
		},
	}
}
