// Package buildinfo holds version information stamped in at link time:
//
//	go build -ldflags "-X github.com/ecbingo/ecbingo/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/ecbingo/ecbingo/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/ecbingo/ecbingo/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Binaries built with `go install` fall back to the module version recorded
// by the toolchain.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Resolved returns Version, or the main module version when Version was not
// set at link time.
func Resolved() string {
	if Version != "dev" {
		return Version
	}
	if bi, ok := readBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return Version
}

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Resolved(), Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Resolved(), Commit, Date)
}

// UserAgent identifies ecbingo in outgoing HTTP requests.
func UserAgent() string {
	return "ecbingo/" + Resolved()
}
