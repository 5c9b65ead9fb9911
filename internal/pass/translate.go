// Package pass translates decoded requests into invocations of the pass
// command-line tool and composes the environment those invocations run under.
package pass

import (
	"strings"

	"github.com/xdg/passbridge/internal/protocol"
)

// InvocationSpec describes one pass invocation: the full argument vector,
// the composed process environment, and an optional stdin payload. It is
// built once and consumed exactly once by an Invoker.
type InvocationSpec struct {
	Argv  []string
	Env   []string
	Stdin []byte
}

// Translate maps a decoded request to the pass argument vector and optional
// stdin payload. extraArgs are user-configured arguments inserted after the
// option flags. The "--" terminator keeps store keys from being parsed as
// options by pass.
func Translate(req protocol.Request, command string, extraArgs []string) InvocationSpec {
	var opts []string
	var positional []string
	var stdin []byte

	switch req.Kind {
	case protocol.KindShowDefault:
		opts = []string{"show"}
		positional = []string{"/"}
	case protocol.KindInsert:
		opts = []string{"insert", "-m"}
		positional = []string{req.Key}
		stdin = []byte(req.Secret)
	case protocol.KindGenerate:
		opts = []string{"generate"}
		if req.NoSymbols {
			opts = append(opts, "-n")
		}
		positional = []string{req.Key, req.Length}
	case protocol.KindGrepMetaURLs:
		positional = []string{metaURLPattern(req.FieldNames)}
		opts = []string{"grep", "-iE"}
	case protocol.KindOTP:
		opts = []string{"otp"}
		positional = []string{NormalizeKey(req.Key)}
	default:
		opts = []string{"show"}
		positional = []string{NormalizeKey(req.Key)}
	}

	opts = append(opts, extraArgs...)

	argv := make([]string, 0, 1+len(opts)+1+len(positional))
	argv = append(argv, command)
	argv = append(argv, opts...)
	argv = append(argv, "--")
	argv = append(argv, positional...)

	return InvocationSpec{Argv: argv, Stdin: stdin}
}

// NormalizeKey guarantees a leading slash on a store key. A key that already
// starts with a slash is returned unchanged; no further separators are
// collapsed.
func NormalizeKey(key string) string {
	if strings.HasPrefix(key, "/") {
		return key
	}
	return "/" + key
}

// metaURLPattern builds the extended regular expression handed to
// "pass grep -iE": any of the field names at line start, followed by a colon.
func metaURLPattern(fieldNames []string) string {
	return "^(" + strings.Join(fieldNames, "|") + "):"
}
