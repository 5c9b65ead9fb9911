package pass

import (
	"strings"
	"testing"
)

// envValue extracts the value of key from a "K=V" slice, reporting whether
// it was present.
func envValue(env []string, key string) (string, bool) {
	for _, kv := range env {
		if v, ok := strings.CutPrefix(kv, key+"="); ok {
			return v, true
		}
	}
	return "", false
}

func TestComposeEnv_InjectsGPGFlags(t *testing.T) {
	env := ComposeEnv([]string{"HOME=/home/t"}, nil)

	opts, ok := envValue(env, GPGOptsVar)
	if !ok {
		t.Fatalf("%s not set", GPGOptsVar)
	}
	want := "--status-fd=2 --debug=ipc"
	if opts != want {
		t.Errorf("%s = %q, want %q", GPGOptsVar, opts, want)
	}
}

func TestComposeEnv_ReplacesExistingFlags(t *testing.T) {
	tests := []struct {
		name string
		opts string
	}{
		{"equals form", "--status-fd=1 --debug=none"},
		{"space form", "--status-fd 1 --debug guru"},
		{"bare flag", "--debug"},
		{"mixed with unrelated flags", "--armor --status-fd 1 --trust-model=always"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := ComposeEnv([]string{"HOME=/home/t", GPGOptsVar + "=" + tc.opts}, nil)
			opts, _ := envValue(env, GPGOptsVar)

			if got := strings.Count(opts, "--status-fd"); got != 1 {
				t.Errorf("occurrences of --status-fd = %d, want 1 (opts: %q)", got, opts)
			}
			if got := strings.Count(opts, "--debug"); got != 1 {
				t.Errorf("occurrences of --debug = %d, want 1 (opts: %q)", got, opts)
			}
			if !strings.Contains(opts, "--status-fd=2") {
				t.Errorf("opts %q missing --status-fd=2", opts)
			}
			if !strings.Contains(opts, "--debug=ipc") {
				t.Errorf("opts %q missing --debug=ipc", opts)
			}
		})
	}
}

func TestComposeEnv_PreservesUnrelatedFlags(t *testing.T) {
	env := ComposeEnv([]string{"HOME=/home/t", GPGOptsVar + "=--armor --status-fd 1"}, nil)
	opts, _ := envValue(env, GPGOptsVar)

	if !strings.Contains(opts, "--armor") {
		t.Errorf("opts %q lost unrelated flag --armor", opts)
	}
	if !strings.HasSuffix(opts, "--status-fd=2 --debug=ipc") {
		t.Errorf("injected flags must be appended in fixed order, got %q", opts)
	}
}

func TestComposeEnv_Deterministic(t *testing.T) {
	base := []string{"HOME=/home/t", "FOO=bar", GPGOptsVar + "=--debug=none"}
	first := ComposeEnv(base, map[string]string{"TREE_CHARSET": "ISO-8859-1"})
	second := ComposeEnv(base, map[string]string{"TREE_CHARSET": "ISO-8859-1"})

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("env[%d]: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestComposeEnv_AppliesOverrides(t *testing.T) {
	base := []string{"HOME=/home/t", "PATH=/home/t/bin", "LANG=C"}
	overrides := map[string]string{
		"TREE_CHARSET": "ISO-8859-1",
		"PATH":         "/usr/local/bin:/usr/bin:/bin:/usr/sbin:/sbin",
	}
	env := ComposeEnv(base, overrides)

	if got, _ := envValue(env, "PATH"); got != overrides["PATH"] {
		t.Errorf("PATH = %q, want %q", got, overrides["PATH"])
	}
	if got, _ := envValue(env, "TREE_CHARSET"); got != "ISO-8859-1" {
		t.Errorf("TREE_CHARSET = %q, want %q", got, "ISO-8859-1")
	}
	if got, _ := envValue(env, "LANG"); got != "C" {
		t.Errorf("LANG = %q, want %q (pass-through lost)", got, "C")
	}
}

func TestComposeEnv_BackfillsHome(t *testing.T) {
	env := ComposeEnv([]string{"LANG=C"}, nil)

	home, ok := envValue(env, "HOME")
	if !ok || home == "" {
		t.Errorf("HOME not backfilled, env = %q", env)
	}
}

func TestComposeEnv_KeepsExistingHome(t *testing.T) {
	env := ComposeEnv([]string{"HOME=/custom/home"}, nil)

	if home, _ := envValue(env, "HOME"); home != "/custom/home" {
		t.Errorf("HOME = %q, want /custom/home", home)
	}
}

func TestShellQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2", "2"},
		{"ipc", "ipc"},
		{"", "''"},
		{"with space", "'with space'"},
		{"it's", `'it'"'"'s'`},
		{"a;b", "'a;b'"},
	}
	for _, tc := range tests {
		if got := shellQuote(tc.in); got != tc.want {
			t.Errorf("shellQuote(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
