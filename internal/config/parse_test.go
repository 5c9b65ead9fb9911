package config

import (
	"strings"
	"testing"
)

const samplePreferences = `command: gopass
args:
  - --store
  - work
env:
  TREE_CHARSET: UTF-8
  GNUPGHOME: /home/t/.gnupg-alt
log:
  file: ~/.local/state/passbridge.log
  level: debug
`

func TestParsePreferences_Valid(t *testing.T) {
	prefs, err := ParsePreferences([]byte(samplePreferences))
	if err != nil {
		t.Fatalf("ParsePreferences() error = %v", err)
	}

	if prefs.Command != "gopass" {
		t.Errorf("Command = %q, want %q", prefs.Command, "gopass")
	}
	if len(prefs.Args) != 2 || prefs.Args[0] != "--store" {
		t.Errorf("Args = %q, want [--store work]", prefs.Args)
	}
	if prefs.Env["TREE_CHARSET"] != "UTF-8" {
		t.Errorf("Env[TREE_CHARSET] = %q, want UTF-8", prefs.Env["TREE_CHARSET"])
	}
	if prefs.Env["GNUPGHOME"] != "/home/t/.gnupg-alt" {
		t.Errorf("Env[GNUPGHOME] = %q, want /home/t/.gnupg-alt", prefs.Env["GNUPGHOME"])
	}
	if prefs.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", prefs.Log.Level)
	}
}

func TestParsePreferences_Empty(t *testing.T) {
	prefs, err := ParsePreferences([]byte(""))
	if err != nil {
		t.Fatalf("ParsePreferences() error = %v", err)
	}
	if prefs.Command != "" {
		t.Errorf("Command = %q, want empty", prefs.Command)
	}
}

func TestParsePreferences_UnknownField(t *testing.T) {
	_, err := ParsePreferences([]byte("comand: pass\n"))
	if err == nil {
		t.Fatal("expected error for unknown field, got nil")
	}
	if !strings.Contains(err.Error(), "comand") {
		t.Errorf("error %q should name the unknown field", err)
	}
}

func TestParsePreferences_TypeMismatch(t *testing.T) {
	_, err := ParsePreferences([]byte("args: not-a-list\n"))
	if err == nil {
		t.Fatal("expected error for type mismatch, got nil")
	}
}

// The commented template shipped by "passbridge install" must stay a valid,
// effectively-empty preferences file.
func TestDefaultPreferencesTemplate_Parses(t *testing.T) {
	prefs, err := ParsePreferences([]byte(defaultPreferencesTemplate))
	if err != nil {
		t.Fatalf("template does not parse: %v", err)
	}
	if prefs.Command != "" || len(prefs.Args) != 0 || len(prefs.Env) != 0 {
		t.Errorf("template must not set any values, got %+v", prefs)
	}
}
