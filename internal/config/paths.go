package config

import (
	"fmt"
	"os"

	"github.com/xdg/passbridge/internal/pathutil"
)

// Dir returns the passbridge configuration directory path. By default this
// is ~/.config/passbridge/; if XDG_CONFIG_HOME is set, it is
// $XDG_CONFIG_HOME/passbridge/ instead. The returned path always has a
// trailing slash.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = "~/.config"
	}
	return pathutil.ExpandHome(base) + "/passbridge/"
}

// EnsureDir creates the passbridge configuration directory if it doesn't
// exist, with 0700 permissions (user-only access).
func EnsureDir() error {
	if err := os.MkdirAll(Dir(), 0o700); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	return nil
}

// PreferencesPath returns the full path to the preferences file.
// This is Dir() + "config.yaml".
func PreferencesPath() string {
	return Dir() + "config.yaml"
}
