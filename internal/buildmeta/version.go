// Package buildmeta holds build-time version information injected via ldflags:
//
//	go build -ldflags="-X github.com/devantler-tech/docdiff/internal/buildmeta.Version=v1.0.0 ..."
//
//nolint:gochecknoglobals
package buildmeta

var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the Git SHA of the build.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
