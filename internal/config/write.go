package config

import (
	"errors"
	"fmt"
	"os"
)

// defaultPreferencesTemplate is written by "passbridge install" so users
// have a documented starting point. Every setting is commented out; the
// commented values are the built-in defaults.
const defaultPreferencesTemplate = `# passbridge preferences
#
# Everything here is optional. Missing settings use the built-in defaults,
# which are shown commented out below.

# The password-store command to invoke.
#command: pass

# Extra arguments inserted after the action's option flags.
#args: []

# Environment overrides for the pass invocation. Entries here are merged
# over the defaults, so setting one does not discard the others.
#env:
#  TREE_CHARSET: ISO-8859-1
#  PATH: /usr/local/bin:/usr/bin:/bin:/usr/sbin:/sbin

# Host logging. Disabled unless a file is given. The browser already shows
# anything written to stderr in its console.
#log:
#  file: ""
#  level: info
`

// WriteDefaultPreferences creates the default preferences file with helpful
// comments. If the file already exists it is left untouched. The config
// directory is created if needed; the file is written with 0600 permissions.
func WriteDefaultPreferences() error {
	path := PreferencesPath()

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat preferences file: %w", err)
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(defaultPreferencesTemplate), 0o600); err != nil {
		return fmt.Errorf("write default preferences: %w", err)
	}
	return nil
}
