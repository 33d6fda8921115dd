// Package checker defines the external syntax-checker contract the autofix
// pipeline consumes, plus an os/exec-based default implementation that
// shells out to the configured toolchain binary rather than parsing
// in-process, since the target toolchain lives outside this process.
package checker

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"

	"github.com/pkg/errors"

	"github.com/xphoniex/zls/pkg/protocol"
)

// Checker reports syntax diagnostics for a document's current text.
type Checker interface {
	Check(ctx context.Context, uri string, text string) ([]protocol.Diagnostic, error)
}

// ExecChecker runs an external binary in "ast-check" mode and parses its
// diagnostic output.
type ExecChecker struct {
	// ExePath is the toolchain binary invoked for each check; read fresh
	// from Config on every call so a path change takes effect immediately.
	ExePath func() string
}

// NewExecChecker builds an ExecChecker that reads the toolchain path via
// exePath on every Check call.
func NewExecChecker(exePath func() string) *ExecChecker {
	return &ExecChecker{ExePath: exePath}
}

// astCheckDiagnostic is the toolchain's own JSON diagnostic shape, decoded
// and translated into protocol.Diagnostic.
type astCheckDiagnostic struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

// Check invokes "<exe> ast-check --stdin" feeding text on stdin, and parses
// a newline-delimited-JSON diagnostic stream from stdout.
func (c *ExecChecker) Check(ctx context.Context, uri string, text string) ([]protocol.Diagnostic, error) {
	exe := c.ExePath()
	if exe == "" {
		return nil, errors.New("no toolchain executable configured")
	}

	cmd := exec.CommandContext(ctx, exe, "ast-check", "--stdin")
	cmd.Stdin = bytes.NewBufferString(text)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			return nil, errors.Wrapf(err, "running %s ast-check", exe)
		}
	}

	dec := json.NewDecoder(&stdout)
	var diags []protocol.Diagnostic
	for dec.More() {
		var d astCheckDiagnostic
		if err := dec.Decode(&d); err != nil {
			return diags, errors.Wrap(err, "decoding checker diagnostic")
		}
		diags = append(diags, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: d.Line, Character: d.Column},
				End:   protocol.Position{Line: d.Line, Character: d.Column},
			},
			Source:  "zls",
			Message: d.Message,
		})
	}

	return diags, nil
}
