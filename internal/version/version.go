// Package version holds build information for wezconf.
package version

import "fmt"

// Version is set at build time with -ldflags "-X ...version.Version=v1.2.3".
var Version = "development"

// Commit is the git commit hash, set at build time.
var Commit = "unknown"

// String returns the version with the commit appended when known.
func String() string {
	if Commit != "unknown" && Commit != "" {
		return Version + "+" + Commit
	}
	return Version
}

// Banner is the line printed by `wezconf version`.
func Banner() string {
	return fmt.Sprintf("wezconf version %s", String())
}
