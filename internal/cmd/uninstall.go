package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xdg/passbridge/internal/manifest"
	"github.com/xdg/passbridge/internal/term"
)

var uninstallBrowser string

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the browser native messaging manifest",
	Long: `Remove the native messaging manifest for a browser.

The preferences file is left in place; delete it manually if no longer wanted.`,
	RunE: runUninstall,
}

func init() {
	uninstallCmd.Flags().StringVarP(&uninstallBrowser, "browser", "b", "firefox",
		"browser to uninstall from (firefox, chrome, chromium)")
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	browser, err := manifest.ParseBrowser(uninstallBrowser)
	if err != nil {
		return err
	}

	path, err := manifest.Uninstall(browser)
	if err != nil {
		if errors.Is(err, manifest.ErrNotInstalled) {
			return fmt.Errorf("no manifest installed for %s", browser)
		}
		return fmt.Errorf("uninstall manifest for %s: %w", browser, err)
	}
	term.Printf("Removed native messaging manifest: %s\n", path)
	return nil
}
