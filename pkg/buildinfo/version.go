// Package buildinfo reports which initstate build is running. The values
// are stamped in at link time; Version also scopes render cache keys, so an
// upgraded binary never serves diagrams drawn by an older one.
//
//	go build -ldflags "\
//	    -X github.com/matzehuels/initstate/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/initstate/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/initstate/pkg/buildinfo.Date=$(date -u +%FT%TZ)" ./cmd/initstate
package buildinfo

import "fmt"

// Stamped at link time; the defaults mark a local build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String renders the build stamp on three lines, as logged by the preview
// server at startup.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template is the cobra version template for `initstate --version`.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
