package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/xdg/passbridge/internal/pathutil"
)

// LoadPreferences loads preferences from the default path. A missing file is
// not an error: the built-in defaults are returned unchanged. A file that
// exists but cannot be read or parsed is an error, since silently ignoring a
// broken file would be worse than refusing to run.
func LoadPreferences() (*Preferences, error) {
	return loadPreferences(PreferencesPath())
}

func loadPreferences(path string) (*Preferences, error) {
	prefs := DefaultPreferences()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return nil, fmt.Errorf("read preferences: %w", err)
	}

	loaded, err := ParsePreferences(data)
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}

	merge(prefs, loaded)
	prefs.Log.File = pathutil.ExpandHome(prefs.Log.File)
	return prefs, nil
}

// merge overlays the loaded file onto the defaults. Environment entries are
// merged key-by-key so a file can add variables without losing the built-in
// overrides.
func merge(base, loaded *Preferences) {
	if loaded.Command != "" {
		base.Command = loaded.Command
	}
	if len(loaded.Args) > 0 {
		base.Args = loaded.Args
	}
	for k, v := range loaded.Env {
		base.Env[k] = v
	}
	if loaded.Log.File != "" {
		base.Log.File = loaded.Log.File
	}
	if loaded.Log.Level != "" {
		base.Log.Level = loaded.Log.Level
	}
}
