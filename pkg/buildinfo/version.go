// Package buildinfo reports which asciisketch binary is running.
//
// Release builds stamp the variables below with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/asciisketch/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/asciisketch/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/asciisketch/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/asciisketch
//
// Binaries built with plain go install carry no stamp; [Current] then
// falls back to the module version and VCS settings recorded by the Go
// toolchain.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Stamped by ldflags. The defaults mark an unstamped build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info identifies one build of asciisketch.
type Info struct {
	Version string
	Commit  string
	Date    string
}

var readBuildInfo = debug.ReadBuildInfo

// Current returns the stamped build information, filling unstamped fields
// from the toolchain's embedded build info when it is available.
func Current() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.Commit == "none":
			info.Commit = s.Value
			if len(info.Commit) > 12 {
				info.Commit = info.Commit[:12]
			}
		case s.Key == "vcs.time" && info.Date == "unknown":
			info.Date = s.Value
		}
	}
	return info
}

// Template returns the --version output template for the cobra root
// command.
func Template() string {
	i := Current()
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", i.Version, i.Commit, i.Date)
}
