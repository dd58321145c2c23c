// Package version reports build metadata injected at link time.
package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are populated by the Go linker (LDFLAGS) at build time:
//
//	-X github.com/dkoosis/lastrun/internal/version.Version=v1.2.3
var (
	Version    = "dev"     // Default value if not built with LDFLAGS
	CommitHash = "unknown" // Default value
	BuildDate  = "unknown" // Default value
)

// String returns "lastrun <version> (commit <hash>, built <date>)". When the
// commit was not injected it falls back to the VCS revision recorded by the
// go command, if any.
func String() string {
	commit := CommitHash
	if commit == "unknown" {
		if rev := vcsRevision(); rev != "" {
			commit = rev
		}
	}
	return fmt.Sprintf("lastrun %s (commit %s, built %s)", Version, commit, BuildDate)
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return ""
}
