package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// RawResult captures everything observed from one pass invocation.
type RawResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Invoker runs one InvocationSpec to completion. Implementations must return
// a RawResult whenever the child actually ran, regardless of exit status; an
// error is reserved for failures to launch the child at all.
type Invoker interface {
	Invoke(ctx context.Context, spec InvocationSpec) (RawResult, error)
}

// ExecInvoker runs the tool with os/exec, blocking until it exits. There is
// no timeout: cancellation is the supervising browser's job, which kills the
// whole host process.
type ExecInvoker struct{}

// NewExecInvoker creates a new ExecInvoker.
func NewExecInvoker() *ExecInvoker {
	return &ExecInvoker{}
}

// Invoke runs the command described by spec with both output streams
// captured separately.
func (e *ExecInvoker) Invoke(ctx context.Context, spec InvocationSpec) (RawResult, error) {
	cmd := exec.CommandContext(ctx, spec.Argv[0], spec.Argv[1:]...)
	cmd.Env = spec.Env
	if spec.Stdin != nil {
		cmd.Stdin = bytes.NewReader(spec.Stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		// A non-zero exit is a normal outcome; it belongs in the result.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return RawResult{
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdout.Bytes(),
				Stderr:   stderr.Bytes(),
			}, nil
		}
		return RawResult{}, fmt.Errorf("launch %s: %w", spec.Argv[0], err)
	}

	return RawResult{
		ExitCode: 0,
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
	}, nil
}
