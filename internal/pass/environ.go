package pass

import (
	"os/user"
	"regexp"
	"sort"
	"strings"
)

// GPGOptsVar is the environment variable pass forwards to gpg as extra
// command-line options.
const GPGOptsVar = "PASSWORD_STORE_GPG_OPTS"

// gpgFlag is one gpg option the bridge forces into GPGOptsVar, along with a
// pattern that strips any occurrence the user's environment already carries.
type gpgFlag struct {
	name  string
	value string
	strip *regexp.Regexp
}

func requiredFlag(name, value string) gpgFlag {
	return gpgFlag{
		name:  name,
		value: value,
		strip: regexp.MustCompile(`--` + regexp.QuoteMeta(name) + `(?:(?:=|\s+)\S*)?`),
	}
}

// requiredGPGFlags are applied in order, so the composed option string is
// reproducible for identical input.
var requiredGPGFlags = []gpgFlag{
	requiredFlag("status-fd", "2"), // status markers on the diagnostic stream
	requiredFlag("debug", "ipc"),   // surfaces agent channel errors
}

// ComposeEnv builds the child process environment from the host environment
// plus the configured overrides. HOME is backfilled from the user database
// when absent, and the gpg option string gains the flags the classifier
// depends on. The result is sorted for reproducibility.
func ComposeEnv(base []string, overrides map[string]string) []string {
	env := make(map[string]string, len(base)+len(overrides)+1)
	for _, kv := range base {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[k] = v
	}

	if _, ok := env["HOME"]; !ok {
		if u, err := user.Current(); err == nil && u.HomeDir != "" {
			env["HOME"] = u.HomeDir
		}
	}

	for k, v := range overrides {
		env[k] = v
	}

	env[GPGOptsVar] = mergeGPGFlags(env[GPGOptsVar])

	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}

// mergeGPGFlags forces each required flag into opts exactly once: every
// pre-existing occurrence is stripped, then the canonical forms are appended
// in order. Stripping happens before any appending so a bare flag's
// whitespace-value pattern cannot swallow a flag injected just before it.
func mergeGPGFlags(opts string) string {
	for _, f := range requiredGPGFlags {
		opts = strings.TrimSpace(f.strip.ReplaceAllString(opts, ""))
	}
	for _, f := range requiredGPGFlags {
		flag := "--" + f.name
		if f.value != "" {
			flag += "=" + shellQuote(f.value)
		}
		if opts == "" {
			opts = flag
		} else {
			opts += " " + flag
		}
	}
	return opts
}

var shellSafe = regexp.MustCompile(`^[\w@%+=:,./-]+$`)

// shellQuote quotes s for safe word-splitting by a POSIX shell, since pass
// expands GPGOptsVar unquoted.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if shellSafe.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
