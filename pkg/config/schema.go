package config

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// optionDescriptor replaces struct-tag field reflection with an explicit
// table: one entry per option, each owning its own coercion into the
// Config struct.
type optionDescriptor struct {
	name   string
	coerce func(c *Config, raw json.RawMessage) error
}

// schema is the fixed, compile-time option set. Order here is the order
// items are enumerated in the workspace/configuration pull request and the
// order ApplyPulled consumes the response array.
var schema = []optionDescriptor{
	{"zig_exe_path", stringOption(func(c *Config) *string { return &c.ZigExePath })},
	{"zig_lib_path", stringOption(func(c *Config) *string { return &c.ZigLibPath })},
	{"enable_build_on_save", boolOption(func(c *Config) *bool { return &c.EnableBuildOnSave })},
	{"build_on_save_args", stringSliceOption(func(c *Config) *[]string { return &c.BuildOnSaveArgs })},
	{"enable_autofix", enumOption(
		func(c *Config, v string) { c.EnableAutofix = AutofixMode(v) },
		string(AutofixNone), string(AutofixOnSave), string(AutofixWillSaveWaitUntil), string(AutofixAuto),
	)},
	{"semantic_tokens", enumOption(
		func(c *Config, v string) { c.SemanticTokens = SemanticTokensMode(v) },
		string(SemanticTokensNone), string(SemanticTokensPartial), string(SemanticTokensFull),
	)},
	{"enable_inlay_hints", boolOption(func(c *Config) *bool { return &c.EnableInlayHints })},
	{"inlay_hints_exclude_single_argument", boolOption(func(c *Config) *bool { return &c.InlayHintsExcludeSingleArgument })},
	{"warn_style", boolOption(func(c *Config) *bool { return &c.WarnStyle })},
	{"highlight_global_var_declarations", boolOption(func(c *Config) *bool { return &c.HighlightGlobalVarDeclarations })},
	{"max_detail_length", intOption(func(c *Config) *int { return &c.MaxDetailLength }, 0, 1<<20)},
	{"record_session", boolOption(func(c *Config) *bool { return &c.RecordSession })},
	{"trace", enumOption(
		func(c *Config, v string) { c.Trace = TraceLevel(v) },
		string(TraceOff), string(TraceMessages), string(TraceVerbose),
	)},
}

func stringOption(field func(*Config) *string) func(*Config, json.RawMessage) error {
	return func(c *Config, raw json.RawMessage) error {
		v, ok := trimmedString(raw)
		if !ok {
			return errors.New("expected a non-empty string")
		}
		*field(c) = v
		return nil
	}
}

func boolOption(field func(*Config) *bool) func(*Config, json.RawMessage) error {
	return func(c *Config, raw json.RawMessage) error {
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			return errors.New("expected a boolean")
		}
		*field(c) = v
		return nil
	}
}

func intOption(field func(*Config) *int, min, max int) func(*Config, json.RawMessage) error {
	return func(c *Config, raw json.RawMessage) error {
		var v int
		if err := json.Unmarshal(raw, &v); err != nil {
			return errors.New("expected an integer")
		}
		if v < min || v > max {
			return errors.Errorf("value %d out of range [%d, %d]", v, min, max)
		}
		*field(c) = v
		return nil
	}
}

func stringSliceOption(field func(*Config) *[]string) func(*Config, json.RawMessage) error {
	return func(c *Config, raw json.RawMessage) error {
		var v []string
		if err := json.Unmarshal(raw, &v); err != nil {
			return errors.New("expected an array of strings")
		}
		*field(c) = v
		return nil
	}
}

func enumOption(set func(*Config, string), variants ...string) func(*Config, json.RawMessage) error {
	return func(c *Config, raw json.RawMessage) error {
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return errors.New("expected a string")
		}
		for _, variant := range variants {
			if v == variant {
				set(c, v)
				return nil
			}
		}
		return errors.Errorf("%q is not a known variant of %v", v, variants)
	}
}
