package server_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xphoniex/zls/pkg/lifecycle"
	"github.com/xphoniex/zls/pkg/protocol"
	"github.com/xphoniex/zls/pkg/server"
	"github.com/xphoniex/zls/pkg/server/servertest"
)

type fakeChecker struct {
	diags []protocol.Diagnostic
}

func (f fakeChecker) Check(ctx context.Context, uri string, text string) ([]protocol.Diagnostic, error) {
	return f.diags, nil
}

func decodeFrame(t *testing.T, raw []byte) map[string]json.RawMessage {
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func TestLifecycleHappyPath(t *testing.T) {
	h := servertest.New(t)

	frames := h.Feed(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"capabilities":{}}}`)
	require.Len(t, frames, 1)
	resp := decodeFrame(t, frames[0])
	var result protocol.InitializeResult
	require.NoError(t, json.Unmarshal(resp["result"], &result))
	assert.Equal(t, "zls", result.ServerInfo.Name)

	frames = h.Feed(`{"jsonrpc":"2.0","method":"initialized","params":{}}`)
	assert.Empty(t, frames)

	frames = h.Feed(`{"jsonrpc":"2.0","id":2,"method":"shutdown"}`)
	require.Len(t, frames, 1)
	resp = decodeFrame(t, frames[0])
	assert.Equal(t, json.RawMessage("null"), resp["result"])

	h.Feed(`{"jsonrpc":"2.0","method":"exit"}`)
	assert.Equal(t, lifecycle.ExitingSuccess, h.Server.Lifecycle.Status())
}

func TestPreInitializeRejection(t *testing.T) {
	h := servertest.New(t)

	frames := h.Feed(`{"jsonrpc":"2.0","id":7,"method":"textDocument/hover","params":{}}`)
	require.Len(t, frames, 1)
	resp := decodeFrame(t, frames[0])

	var respErr protocol.ResponseError
	require.NoError(t, json.Unmarshal(resp["error"], &respErr))
	assert.Equal(t, protocol.ServerNotInitialized, respErr.Code)
}

func TestUnknownMethod(t *testing.T) {
	h := servertest.New(t)
	h.Feed(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"capabilities":{}}}`)
	h.Feed(`{"jsonrpc":"2.0","method":"initialized","params":{}}`)

	frames := h.Feed(`{"jsonrpc":"2.0","id":9,"method":"textDocument/banana"}`)
	require.Len(t, frames, 1)
	resp := decodeFrame(t, frames[0])

	var respErr protocol.ResponseError
	require.NoError(t, json.Unmarshal(resp["error"], &respErr))
	assert.Equal(t, protocol.MethodNotFound, respErr.Code)
}

func TestOffsetEncodingNegotiation(t *testing.T) {
	cases := []struct {
		advertised string
		want       string
	}{
		{`["utf-8","utf-16"]`, "utf-8"},
		{`["utf-16"]`, "utf-16"},
		{`[]`, "utf-16"},
	}

	for _, tc := range cases {
		h := servertest.New(t)
		frames := h.Feed(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"capabilities":{"general":{"positionEncodings":` + tc.advertised + `}}}}`)
		require.Len(t, frames, 1)
		resp := decodeFrame(t, frames[0])
		var result protocol.InitializeResult
		require.NoError(t, json.Unmarshal(resp["result"], &result))
		assert.Equal(t, protocol.OffsetEncoding(tc.want), result.Capabilities.PositionEncoding)
	}
}

func TestConfigurationPull(t *testing.T) {
	h := servertest.New(t)

	frames := h.Feed(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"capabilities":{"workspace":{"configuration":true}}}}`)
	require.Len(t, frames, 2, "expect the initialize result plus the configuration pull request")

	var pullFrame map[string]json.RawMessage
	for _, f := range frames {
		m := decodeFrame(t, f)
		if string(m["method"]) == `"workspace/configuration"` {
			pullFrame = m
		}
	}
	require.NotNil(t, pullFrame)

	var id string
	require.NoError(t, json.Unmarshal(pullFrame["id"], &id))
	assert.Equal(t, "i_haz_configuration", id)

	var params protocol.ConfigurationParams
	require.NoError(t, json.Unmarshal(pullFrame["params"], &params))
	require.NotEmpty(t, params.Items)
	assert.Contains(t, params.Items[0].Section, "zls.")

	values := make([]json.RawMessage, len(params.Items))
	for i, item := range params.Items {
		if item.Section == "zls.zig_exe_path" {
			values[i] = json.RawMessage(`"/opt/zig"`)
			continue
		}
		if item.Section == "zls.max_detail_length" {
			values[i] = json.RawMessage(`"not an int"`)
			continue
		}
		values[i] = json.RawMessage("null")
	}
	before := h.Server.Config.MaxDetailLength

	resultJSON, err := json.Marshal(values)
	require.NoError(t, err)
	h.Feed(`{"jsonrpc":"2.0","id":"i_haz_configuration","result":` + string(resultJSON) + `}`)

	assert.Equal(t, "/opt/zig", h.Server.Config.ZigExePath)
	assert.Equal(t, before, h.Server.Config.MaxDetailLength)
}

func TestRecordingModeDisablesConfigurationPull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")
	h := servertest.New(t, servertest.Option(server.WithRecordingPath(path)))
	defer h.Server.Close()
	require.True(t, h.Server.Recording())

	frames := h.Feed(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"capabilities":{"workspace":{"configuration":true}}}}`)
	require.Len(t, frames, 2, "expect the recording showMessage plus the initialize result, and no workspace/configuration pull")

	for _, f := range frames {
		m := decodeFrame(t, f)
		assert.NotEqual(t, `"workspace/configuration"`, string(m["method"]))
	}

	h.Feed(`{"jsonrpc":"2.0","method":"initialized","params":{}}`)
	frames = h.Feed(`{"jsonrpc":"2.0","method":"workspace/didChangeConfiguration","params":{"settings":null}}`)
	assert.Empty(t, frames, "a recording session must not re-pull on an empty didChangeConfiguration push either")
}

func TestAutofixOnSave(t *testing.T) {
	diag := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 1},
		},
		Message: "unused variable",
	}
	h := servertest.New(t, servertest.WithChecker(fakeChecker{diags: []protocol.Diagnostic{diag}}))

	h.Feed(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"capabilities":{"workspace":{"applyEdit":true}}}}`)
	h.Feed(`{"jsonrpc":"2.0","method":"initialized","params":{}}`)
	h.Server.Config.EnableAutofix = "on_save"

	h.Feed(`{"jsonrpc":"2.0","method":"textDocument/didOpen","params":{"textDocument":{"uri":"file:///a.zig","languageId":"zig","version":1,"text":"const x = 1;"}}}`)
	frames := h.Feed(`{"jsonrpc":"2.0","method":"textDocument/didSave","params":{"textDocument":{"uri":"file:///a.zig"}}}`)

	require.Len(t, frames, 1)
	m := decodeFrame(t, frames[0])
	assert.Equal(t, `"workspace/applyEdit"`, string(m["method"]))

	var params protocol.ApplyWorkspaceEditParams
	require.NoError(t, json.Unmarshal(m["params"], &params))
	require.Len(t, params.Edit.Changes, 1)
	_, ok := params.Edit.Changes["file:///a.zig"]
	assert.True(t, ok)
}
