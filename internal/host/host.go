// Package host wires the wire codec, command translation, environment
// composition, tool invocation, and diagnostic classification into the
// single request/response cycle a native messaging host performs before
// exiting.
package host

import (
	"context"
	"errors"
	"io"

	"github.com/xdg/passbridge/internal/config"
	"github.com/xdg/passbridge/internal/gpg"
	"github.com/xdg/passbridge/internal/pass"
	"github.com/xdg/passbridge/internal/plog"
	"github.com/xdg/passbridge/internal/protocol"
	"github.com/xdg/passbridge/internal/version"
)

// Host processes exactly one framed request from In and writes exactly one
// framed response to Out. All state is per-invocation; a fresh process is
// spawned by the browser for each call.
type Host struct {
	In      io.Reader
	Out     io.Writer
	Prefs   *config.Preferences
	Environ []string
	Invoker pass.Invoker
}

// Run performs one request/response cycle. A clean end-of-stream before any
// request arrives returns nil without writing anything: the browser closed
// the pipe without asking for work. Any framing failure is returned as an
// error, since no structured reply can be produced for a request that never
// decoded.
func (h *Host) Run(ctx context.Context) error {
	raw, err := protocol.ReadMessage(h.In)
	if errors.Is(err, io.EOF) {
		plog.Debug("stream closed before request; exiting")
		return nil
	}
	if err != nil {
		return err
	}

	req, err := protocol.ParseRequest(raw)
	if err != nil {
		return err
	}

	spec := pass.Translate(req, h.Prefs.Command, h.Prefs.Args)
	spec.Env = pass.ComposeEnv(h.Environ, h.Prefs.Env)
	plog.Debug("request %s: invoking %q", req.Kind, spec.Argv)

	resp := protocol.Response{Version: version.Version}
	result, err := h.Invoker.Invoke(ctx, spec)
	if err != nil {
		// The extension still expects a structured reply when the tool
		// cannot be launched at all.
		plog.Error("invoke: %v", err)
		resp.ExitCode = -1
		resp.Stderr = err.Error()
	} else {
		cleaned, code := gpg.Classify(string(result.Stderr))
		resp.ExitCode = result.ExitCode
		resp.Stdout = string(result.Stdout)
		resp.Stderr = cleaned
		resp.ErrorCode = code
		plog.Info("request %s: exit %d, error code %d", req.Kind, resp.ExitCode, resp.ErrorCode)
	}

	return protocol.WriteMessage(h.Out, resp)
}
