// Package config provides passbridge preferences: which pass command to run,
// extra arguments, environment overrides, and logging. Preferences map to an
// optional YAML file; when the file is absent, the built-in defaults apply
// and the bridge behaves as a pure fixed-constant filter.
package config

// Preferences represents the passbridge preferences file, typically stored
// at ~/.config/passbridge/config.yaml.
type Preferences struct {
	// Command is the password-store executable to invoke.
	Command string `yaml:"command,omitempty"`
	// Args are extra arguments inserted after the action's option flags.
	Args []string `yaml:"args,omitempty"`
	// Env overrides entries in the child process environment. User entries
	// are merged over the built-in defaults.
	Env map[string]string `yaml:"env,omitempty"`
	// Log controls host logging.
	Log LogConfig `yaml:"log,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// File receives log output when set; empty disables file logging.
	File string `yaml:"file,omitempty"`
	// Level is the minimum level to log (debug, info, warn, error).
	Level string `yaml:"level,omitempty"`
}

// DefaultPreferences returns the built-in preferences. The environment
// overrides pin the tree-listing charset pass emits and restrict the
// executable search path to system directories.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Command: "pass",
		Env: map[string]string{
			"TREE_CHARSET": "ISO-8859-1",
			"PATH":         "/usr/local/bin:/usr/bin:/bin:/usr/sbin:/sbin",
		},
	}
}
