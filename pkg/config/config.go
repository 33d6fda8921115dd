// Package config implements the configuration subsystem: a flat record of
// typed options, merged from either a workspace/configuration pull or a
// workspace/didChangeConfiguration push, with per-type coercion and
// rejection-keeps-previous-value semantics.
package config

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// AutofixMode mirrors the enable_autofix setting: how aggressively zls
// applies fix-its it can derive from diagnostics.
type AutofixMode string

const (
	AutofixNone              AutofixMode = "none"
	AutofixOnSave             AutofixMode = "on_save"
	AutofixWillSaveWaitUntil AutofixMode = "will_save_wait_until"
	AutofixAuto              AutofixMode = "auto"
)

// SemanticTokensMode mirrors the semantic_tokens option.
type SemanticTokensMode string

const (
	SemanticTokensNone    SemanticTokensMode = "none"
	SemanticTokensPartial SemanticTokensMode = "partial"
	SemanticTokensFull    SemanticTokensMode = "full"
)

// TraceLevel mirrors $/setTrace and the initial initialize trace value.
type TraceLevel string

const (
	TraceOff      TraceLevel = "off"
	TraceMessages TraceLevel = "messages"
	TraceVerbose  TraceLevel = "verbose"
)

// Config is the effective configuration: a flat record of named, typed
// options, process-lifetime, updated from the client through ApplyPulled
// and ApplyPushed.
type Config struct {
	mu sync.RWMutex

	ZigExePath                       string
	ZigLibPath                       string
	EnableBuildOnSave                bool
	BuildOnSaveArgs                  []string
	EnableAutofix                    AutofixMode
	SemanticTokens                   SemanticTokensMode
	EnableInlayHints                 bool
	InlayHintsExcludeSingleArgument  bool
	WarnStyle                        bool
	HighlightGlobalVarDeclarations   bool
	MaxDetailLength                  int
	RecordSession                    bool
	Trace                            TraceLevel

	hook   ChangeHook
	logger logrus.FieldLogger
}

// ChangeHook is invoked after every successful configuration update. It is
// implemented by the document store so it can invalidate its build-file
// cache when the toolchain path changes.
type ChangeHook interface {
	ConfigChanged(old, new *Config)
}

// New creates a Config with the documented defaults.
func New(logger logrus.FieldLogger) *Config {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Config{
		ZigExePath:      "zig",
		EnableAutofix:   AutofixNone,
		SemanticTokens:  SemanticTokensFull,
		MaxDetailLength: 1024,
		Trace:           TraceOff,
		logger:          logger,
	}
}

// SetChangeHook installs the configChanged hook.
func (c *Config) SetChangeHook(hook ChangeHook) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hook = hook
}

// snapshot copies the scalar fields for before/after comparison without
// holding the lock across the hook call.
func (c *Config) snapshot() *Config {
	return &Config{
		ZigExePath:                      c.ZigExePath,
		ZigLibPath:                      c.ZigLibPath,
		EnableBuildOnSave:               c.EnableBuildOnSave,
		BuildOnSaveArgs:                 append([]string(nil), c.BuildOnSaveArgs...),
		EnableAutofix:                   c.EnableAutofix,
		SemanticTokens:                  c.SemanticTokens,
		EnableInlayHints:                c.EnableInlayHints,
		InlayHintsExcludeSingleArgument: c.InlayHintsExcludeSingleArgument,
		WarnStyle:                       c.WarnStyle,
		HighlightGlobalVarDeclarations:  c.HighlightGlobalVarDeclarations,
		MaxDetailLength:                 c.MaxDetailLength,
		RecordSession:                   c.RecordSession,
		Trace:                           c.Trace,
	}
}

// OptionNames returns every known option's zls.<name> key, in schema order,
// for the workspace/configuration pull request.
func OptionNames() []string {
	names := make([]string, len(schema))
	for i, d := range schema {
		names[i] = "zls." + d.name
	}
	return names
}

// ApplyPulled applies the ordered array returned by a workspace/configuration
// response, matching schema order. Type mismatches keep the previous value
// and log a warning; they do not abort the remaining options.
func (c *Config) ApplyPulled(values []json.RawMessage) {
	c.mu.Lock()
	before := c.snapshot()

	for i, d := range schema {
		if i >= len(values) {
			break
		}
		if err := d.coerce(c, values[i]); err != nil {
			c.logger.WithFields(logrus.Fields{"option": d.name, "error": err.Error()}).Warn("rejecting configuration value")
		}
	}
	after := c.snapshot()
	hook := c.hook
	c.mu.Unlock()

	if hook != nil {
		hook.ConfigChanged(before, after)
	}
}

// ApplyPushed applies a workspace/didChangeConfiguration settings object:
// either its "zls" sub-object, or (if absent) the whole settings value.
func (c *Config) ApplyPushed(settings json.RawMessage) error {
	var wrapper struct {
		Zls json.RawMessage `json:"zls"`
	}
	if err := json.Unmarshal(settings, &wrapper); err != nil {
		return errors.Wrap(err, "decoding didChangeConfiguration settings")
	}

	body := wrapper.Zls
	if len(body) == 0 {
		body = settings
	}

	var asMap map[string]json.RawMessage
	if err := json.Unmarshal(body, &asMap); err != nil {
		return errors.Wrap(err, "decoding configuration object")
	}

	c.mu.Lock()
	before := c.snapshot()

	for _, d := range schema {
		raw, ok := asMap[d.name]
		if !ok {
			continue
		}
		if err := d.coerce(c, raw); err != nil {
			c.logger.WithFields(logrus.Fields{"option": d.name, "error": err.Error()}).Warn("rejecting configuration value")
		}
	}
	after := c.snapshot()
	hook := c.hook
	c.mu.Unlock()

	if hook != nil {
		hook.ConfigChanged(before, after)
	}
	return nil
}

func trimmedString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" || s == "nil" {
		return "", false
	}
	return s, true
}
