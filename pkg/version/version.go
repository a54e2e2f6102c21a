// Package version exposes build-time version information.
package version

// Populated at build time via -ldflags.
var (
	// Version is the semantic version of the deskfang binary.
	Version = "dev"

	// Commit is the Git hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)
