// Package buildinfo holds version information injected at build time:
//
//	go build -ldflags "-X github.com/jetplot/jetplot/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/jetplot/jetplot/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/jetplot/jetplot/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the build information on three lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
