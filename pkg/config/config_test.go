package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPulledTypePreservingOnMismatch(t *testing.T) {
	c := New(nil)
	before := c.MaxDetailLength

	values := make([]json.RawMessage, len(schema))
	for i, d := range schema {
		if d.name == "max_detail_length" {
			values[i] = json.RawMessage(`"not a number"`)
			continue
		}
		values[i] = json.RawMessage("null")
	}

	c.ApplyPulled(values)
	assert.Equal(t, before, c.MaxDetailLength)
}

func TestApplyPulledAcceptsValid(t *testing.T) {
	c := New(nil)

	values := make([]json.RawMessage, len(schema))
	for i, d := range schema {
		switch d.name {
		case "zig_exe_path":
			values[i] = json.RawMessage(`"/usr/local/bin/zig"`)
		case "enable_autofix":
			values[i] = json.RawMessage(`"on_save"`)
		default:
			values[i] = json.RawMessage("null")
		}
	}

	c.ApplyPulled(values)
	assert.Equal(t, "/usr/local/bin/zig", c.ZigExePath)
	assert.Equal(t, AutofixOnSave, c.EnableAutofix)
}

func TestStringOptionRejectsEmptyAndNil(t *testing.T) {
	c := New(nil)
	c.ZigExePath = "zig"

	for _, raw := range []string{`""`, `"nil"`, `"   "`} {
		err := stringOption(func(c *Config) *string { return &c.ZigExePath })(c, json.RawMessage(raw))
		require.Error(t, err)
		assert.Equal(t, "zig", c.ZigExePath)
	}
}

func TestApplyPushedZlsSubObject(t *testing.T) {
	c := New(nil)
	err := c.ApplyPushed(json.RawMessage(`{"zls":{"enable_inlay_hints":true}}`))
	require.NoError(t, err)
	assert.True(t, c.EnableInlayHints)
}

func TestApplyPushedFallsBackToWholeSettings(t *testing.T) {
	c := New(nil)
	err := c.ApplyPushed(json.RawMessage(`{"enable_inlay_hints":true}`))
	require.NoError(t, err)
	assert.True(t, c.EnableInlayHints)
}

func TestEnumOptionRejectsUnknownVariant(t *testing.T) {
	c := New(nil)
	c.EnableAutofix = AutofixNone

	for _, d := range schema {
		if d.name != "enable_autofix" {
			continue
		}
		err := d.coerce(c, json.RawMessage(`"bogus"`))
		require.Error(t, err)
		assert.Equal(t, AutofixNone, c.EnableAutofix)
	}
}

type recordingHook struct {
	calls int
	last  *Config
}

func (h *recordingHook) ConfigChanged(old, new *Config) {
	h.calls++
	h.last = new
}

func TestChangeHookInvokedOnUpdate(t *testing.T) {
	c := New(nil)
	hook := &recordingHook{}
	c.SetChangeHook(hook)

	require.NoError(t, c.ApplyPushed(json.RawMessage(`{"zig_exe_path":"/opt/zig"}`)))
	assert.Equal(t, 1, hook.calls)
	assert.Equal(t, "/opt/zig", hook.last.ZigExePath)
}

func TestOptionNamesPrefixed(t *testing.T) {
	names := OptionNames()
	require.NotEmpty(t, names)
	for _, n := range names {
		assert.Contains(t, n, "zls.")
	}
}
