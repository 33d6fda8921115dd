package checker

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFakeChecker(t *testing.T, script string) string {
	if runtime.GOOS == "windows" {
		t.Skip("fake checker script relies on a shebang-executable binary")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "fake-zig")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestCheckParsesDiagnosticStream(t *testing.T) {
	path := writeFakeChecker(t, "#!/bin/sh\ncat <<'EOF'\n"+
		`{"line":1,"column":2,"message":"unused variable"}`+"\n"+
		`{"line":3,"column":0,"message":"missing semicolon"}`+"\n"+
		"EOF\n")

	c := NewExecChecker(func() string { return path })
	diags, err := c.Check(context.Background(), "file:///a.zig", "const x = 1;")
	require.NoError(t, err)
	require.Len(t, diags, 2)

	assert.Equal(t, "unused variable", diags[0].Message)
	assert.Equal(t, 1, diags[0].Range.Start.Line)
	assert.Equal(t, 2, diags[0].Range.Start.Character)
	assert.Equal(t, "zls", diags[0].Source)

	assert.Equal(t, "missing semicolon", diags[1].Message)
}

func TestCheckNonZeroExitStillParsesPartialOutput(t *testing.T) {
	path := writeFakeChecker(t, "#!/bin/sh\n"+
		`echo '{"line":1,"column":1,"message":"fatal error"}'`+"\n"+
		"exit 1\n")

	c := NewExecChecker(func() string { return path })
	diags, err := c.Check(context.Background(), "file:///a.zig", "")
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, "fatal error", diags[0].Message)
}

func TestCheckEmptyExePathErrors(t *testing.T) {
	c := NewExecChecker(func() string { return "" })
	_, err := c.Check(context.Background(), "file:///a.zig", "")
	assert.Error(t, err)
}

func TestCheckRereadsExePathPerCall(t *testing.T) {
	first := writeFakeChecker(t, "#!/bin/sh\necho '{\"line\":0,\"column\":0,\"message\":\"from-first\"}'\n")
	second := writeFakeChecker(t, "#!/bin/sh\necho '{\"line\":0,\"column\":0,\"message\":\"from-second\"}'\n")

	var current string
	c := NewExecChecker(func() string { return current })

	current = first
	diags, err := c.Check(context.Background(), "file:///a.zig", "")
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, "from-first", diags[0].Message)

	current = second
	diags, err = c.Check(context.Background(), "file:///a.zig", "")
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, "from-second", diags[0].Message)
}
