package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xphoniex/zls/pkg/capabilities"
	"github.com/xphoniex/zls/pkg/config"
	"github.com/xphoniex/zls/pkg/protocol"
)

func TestAutofixModeSelection(t *testing.T) {
	cases := []struct {
		name     string
		autofix  config.AutofixMode
		applyEdits, willSaveWaitUntil bool
		want     config.AutofixMode
	}{
		{"disabled stays none regardless of capabilities", config.AutofixNone, true, true, config.AutofixNone},
		{"enabled but client can't applyEdit falls back to none", config.AutofixOnSave, false, false, config.AutofixNone},
		{"enabled, applyEdit only, uses on_save", config.AutofixOnSave, true, false, config.AutofixOnSave},
		{"enabled, willSaveWaitUntil preferred over on_save", config.AutofixOnSave, true, true, config.AutofixWillSaveWaitUntil},
		{"auto setting still requires applyEdit", config.AutofixAuto, false, false, config.AutofixNone},
		{"auto setting prefers willSaveWaitUntil", config.AutofixAuto, true, true, config.AutofixWillSaveWaitUntil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.EnableAutofix = tc.autofix
			caps := capabilities.Snapshot{ApplyEdits: tc.applyEdits, WillSaveWaitUntil: tc.willSaveWaitUntil}

			assert.Equal(t, tc.want, autofixMode(cfg, caps))
		})
	}
}

func TestBuildFixAllActionsEmptyDiagnostics(t *testing.T) {
	actions := buildFixAllActions("file:///a.zig", nil)
	assert.Empty(t, actions)
}

func TestBuildFixAllActionsOneActionPerCallCoveringAllDiagnostics(t *testing.T) {
	diags := []protocol.Diagnostic{
		{Range: protocol.Range{Start: protocol.Position{Line: 0, Character: 0}, End: protocol.Position{Line: 0, Character: 1}}, Message: "a"},
		{Range: protocol.Range{Start: protocol.Position{Line: 1, Character: 0}, End: protocol.Position{Line: 1, Character: 1}}, Message: "b"},
	}

	actions := buildFixAllActions("file:///a.zig", diags)
	if assert.Len(t, actions, 1) {
		assert.Equal(t, "source.fixAll", actions[0].Kind)
		assert.Len(t, actions[0].Edit.Changes["file:///a.zig"], 2)
	}
}
