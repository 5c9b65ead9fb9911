// Package term provides user-facing terminal output for passbridge's
// management commands (install, uninstall). This is distinct from
// operational logging (see internal/plog) and is never used while the
// bridge is speaking the wire protocol, since stdout belongs to the
// browser then.
package term

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput sets the writer for stdout output. Pass nil to use os.Stdout.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		stdout = os.Stdout
	} else {
		stdout = w
	}
}

// SetErrOutput sets the writer for stderr output. Pass nil to use os.Stderr.
func SetErrOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		stderr = os.Stderr
	} else {
		stderr = w
	}
}

// Printf formats and writes to stdout.
func Printf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(stdout, format, args...)
}

// Println writes to stdout with a trailing newline.
func Println(args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(stdout, args...)
}

// Warn formats and writes a warning to stderr.
func Warn(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(stderr, "Warning: "+format+"\n", args...)
}
