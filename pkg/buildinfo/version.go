// Package buildinfo carries the build version of hexalith.
//
// Values are stamped at link time:
//
//	go build -ldflags "-X github.com/utensils/hexalith/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/utensils/hexalith/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/utensils/hexalith/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/hexalith
//
// The version also namespaces shared cache keys, so logos rendered by
// different releases never collide in Redis or MongoDB.
package buildinfo

import "fmt"

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"

	// Commit is the short git SHA.
	Commit = "none"

	// Date is the UTC build time in RFC 3339.
	Date = "unknown"
)

// Info is the build information as reported by the HTTP health check.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get returns the current build information.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// UserAgent identifies hexalith to remote services, e.g. "hexalith/v0.3.0".
func UserAgent() string {
	return "hexalith/" + Version
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
