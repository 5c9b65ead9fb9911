package pathutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("failed to get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
		{
			name:     "tilde with subpath",
			input:    "~/state/bridge.log",
			expected: filepath.Join(home, "state", "bridge.log"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/log/passbridge.log",
			expected: "/var/log/passbridge.log",
		},
		{
			name:     "relative path unchanged",
			input:    "relative/path",
			expected: "relative/path",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde in middle unchanged",
			input:    "/path/~/test",
			expected: "/path/~/test",
		},
		{
			name:     "tilde without slash unchanged",
			input:    "~user",
			expected: "~user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExpandHome(tt.input)
			if result != tt.expected {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestExecutable(t *testing.T) {
	exe, err := Executable()
	if err != nil {
		t.Fatalf("Executable() error = %v", err)
	}
	if !filepath.IsAbs(exe) {
		t.Errorf("Executable() = %q, want an absolute path", exe)
	}
	if _, err := os.Stat(exe); err != nil {
		t.Errorf("Executable() = %q, not statable: %v", exe, err)
	}
}
