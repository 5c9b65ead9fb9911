// Package cmd implements the CLI commands for passbridge.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/xdg/passbridge/internal/config"
	"github.com/xdg/passbridge/internal/host"
	"github.com/xdg/passbridge/internal/pass"
	"github.com/xdg/passbridge/internal/plog"
	"github.com/xdg/passbridge/internal/version"
)

// rootCmd runs the bridge itself when invoked without a subcommand. Browsers
// launch the host with extra positional arguments (the manifest path and the
// extension origin), so arbitrary args are accepted and ignored.
var rootCmd = &cobra.Command{
	Use:   "passbridge",
	Short: "Native messaging host bridging a browser extension to pass",
	Long: `Passbridge is the native messaging host for the PassFF browser extension.

It reads one length-prefixed JSON request from stdin, runs the pass
password-store command, classifies the gpg diagnostics it produced, and
writes a single structured response back to stdout before exiting.

It is normally launched by the browser. Run 'passbridge install' to write
the native messaging manifest that lets the browser find it.`,
	Version: version.Version,
	Args:    cobra.ArbitraryArgs,
	RunE:    runBridge,
	// Usage output would be noise in the browser console.
	SilenceUsage: true,
}

// Execute runs the root command and returns any error.
func Execute() error {
	return rootCmd.Execute()
}

func runBridge(cmd *cobra.Command, args []string) error {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is a terminal; passbridge speaks a binary protocol and is " +
			"meant to be launched by the browser (run 'passbridge install' to set that up)")
	}

	prefs, err := config.LoadPreferences()
	if err != nil {
		return err
	}

	if err := plog.Configure(prefs.Log.File, plog.ParseLevel(prefs.Log.Level)); err != nil {
		return err
	}
	defer plog.Close()

	h := &host.Host{
		In:      os.Stdin,
		Out:     os.Stdout,
		Prefs:   prefs,
		Environ: os.Environ(),
		Invoker: pass.NewExecInvoker(),
	}
	if err := h.Run(cmd.Context()); err != nil {
		plog.Error("bridge: %v", err)
		// No structured reply was possible; exit distinctly from generic
		// CLI failures.
		return errors.Join(NewExitCodeError(2), err)
	}
	return nil
}
