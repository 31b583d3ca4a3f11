// Package version contains build information for ding, set with -ldflags.
package version

import "fmt"

var (
	// Version is the release tag of the binary
	Version = "dev"
	// BuildTime is the time when the binary was built.
	BuildTime = "unknown"
	// GitCommit is the git commit hash of the build.
	GitCommit = "unknown"
)

// String formats the build information for --version
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
