// Package version holds build information set via ldflags.
package version

var (
	// Version is the release version of the host and bundled modules.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)
