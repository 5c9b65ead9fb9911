// Package version provides version information for passbridge.
// The Version variable is set at build time via ldflags.
package version

// Version is the current version of passbridge. It is reported to the
// extension in every response so the two sides can detect mismatches.
// Set at build time via:
//
//	-ldflags "-X github.com/xdg/passbridge/internal/version.Version=v1.0.0"
//
// Defaults to "dev" for development builds.
var Version = "dev"
