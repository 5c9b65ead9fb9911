// Package manifest generates and installs the native messaging manifests
// that let a browser extension discover and launch passbridge.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// AppName is the native messaging host name the extension requests.
	AppName = "passff"

	description = "Host application for the PassFF browser extension"

	firefoxExtensionID = "passff@invicem.pro"
	chromeExtensionID  = "glnhdclnfbpjmpcnlblkoabhdfnipbhl"
)

// ErrNotInstalled is returned by Uninstall when no manifest exists for the
// requested browser.
var ErrNotInstalled = errors.New("manifest not installed")

// ErrUnsupportedPlatform is returned when no manifest location is known for
// the current operating system.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Browser identifies a supported browser family.
type Browser string

// Supported browser families.
const (
	Firefox  Browser = "firefox"
	Chrome   Browser = "chrome"
	Chromium Browser = "chromium"
)

// ParseBrowser validates a browser name from the command line.
func ParseBrowser(s string) (Browser, error) {
	switch Browser(s) {
	case Firefox, Chrome, Chromium:
		return Browser(s), nil
	}
	return "", fmt.Errorf("unknown browser %q (supported: firefox, chrome, chromium)", s)
}

// Manifest is the JSON document a browser reads to locate a native
// messaging host. Firefox keys hosts by extension ID; the Chrome family
// keys them by extension origin.
type Manifest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Path              string   `json:"path"`
	Type              string   `json:"type"`
	AllowedExtensions []string `json:"allowed_extensions,omitempty"`
	AllowedOrigins    []string `json:"allowed_origins,omitempty"`
}

// New builds the manifest for a browser, pointing it at execPath.
func New(browser Browser, execPath string) *Manifest {
	m := &Manifest{
		Name:        AppName,
		Description: description,
		Path:        execPath,
		Type:        "stdio",
	}
	switch browser {
	case Firefox:
		m.AllowedExtensions = []string{firefoxExtensionID}
	case Chrome, Chromium:
		m.AllowedOrigins = []string{"chrome-extension://" + chromeExtensionID + "/"}
	}
	return m
}

// Dir returns the per-user manifest directory for a browser on the current
// operating system.
func Dir(browser Browser) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	switch runtime.GOOS {
	case "linux":
		switch browser {
		case Firefox:
			return filepath.Join(home, ".mozilla", "native-messaging-hosts"), nil
		case Chrome:
			return filepath.Join(home, ".config", "google-chrome", "NativeMessagingHosts"), nil
		case Chromium:
			return filepath.Join(home, ".config", "chromium", "NativeMessagingHosts"), nil
		}
	case "darwin":
		appSupport := filepath.Join(home, "Library", "Application Support")
		switch browser {
		case Firefox:
			return filepath.Join(appSupport, "Mozilla", "NativeMessagingHosts"), nil
		case Chrome:
			return filepath.Join(appSupport, "Google", "Chrome", "NativeMessagingHosts"), nil
		case Chromium:
			return filepath.Join(appSupport, "Chromium", "NativeMessagingHosts"), nil
		}
	}
	return "", fmt.Errorf("%w: %s/%s", ErrUnsupportedPlatform, runtime.GOOS, browser)
}

// Path returns the full manifest path for a browser.
func Path(browser Browser) (string, error) {
	dir, err := Dir(browser)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName+".json"), nil
}

// Install writes the manifest for a browser and returns its path. The
// manifest directory is created if needed; an existing manifest is
// overwritten, since its embedded executable path may be stale.
func Install(browser Browser, execPath string) (string, error) {
	path, err := Path(browser)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(New(browser, execPath), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode manifest: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("create manifest directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return path, nil
}

// Uninstall removes the manifest for a browser and returns the path it
// removed. Returns ErrNotInstalled if no manifest was present.
func Uninstall(browser Browser) (string, error) {
	path, err := Path(browser)
	if err != nil {
		return "", err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w for %s", ErrNotInstalled, browser)
		}
		return "", fmt.Errorf("remove manifest: %w", err)
	}
	return path, nil
}
