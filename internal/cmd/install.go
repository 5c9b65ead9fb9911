package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xdg/passbridge/internal/config"
	"github.com/xdg/passbridge/internal/manifest"
	"github.com/xdg/passbridge/internal/pathutil"
	"github.com/xdg/passbridge/internal/term"
)

var installBrowser string

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the browser native messaging manifest",
	Long: `Install the native messaging manifest so the browser can launch passbridge.

The manifest embeds the absolute path of this binary, so re-run install after
moving it. A commented preferences file is created alongside if one does not
exist yet.`,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVarP(&installBrowser, "browser", "b", "firefox",
		"browser to install for (firefox, chrome, chromium)")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	browser, err := manifest.ParseBrowser(installBrowser)
	if err != nil {
		return err
	}

	exe, err := pathutil.Executable()
	if err != nil {
		return err
	}

	path, err := manifest.Install(browser, exe)
	if err != nil {
		return fmt.Errorf("install manifest for %s: %w", browser, err)
	}
	term.Printf("Installed native messaging manifest: %s\n", path)

	if err := config.WriteDefaultPreferences(); err != nil {
		term.Warn("could not create preferences file: %v", err)
	} else {
		term.Printf("Preferences file: %s\n", config.PreferencesPath())
	}
	return nil
}
