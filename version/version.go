// Package version exposes build metadata for the leetgen binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// Version is the application version, set via ldflags.
	Version string
	// Branch is the git branch, set via ldflags.
	Branch string
	// BuildUser is the user who built the binary, set via ldflags.
	BuildUser string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string
)

// Info is a snapshot of the build metadata.
type Info struct {
	Version   string `json:"version"`
	Revision  string `json:"revision"`
	Branch    string `json:"branch,omitempty"`
	BuildUser string `json:"buildUser,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns the metadata of the running binary. Values not set via ldflags
// fall back to the module build info.
func Get() Info {
	bi, _ := debug.ReadBuildInfo()

	return newInfo(bi)
}

func newInfo(bi *debug.BuildInfo) Info {
	info := Info{
		Version:   Version,
		Revision:  revision(bi),
		Branch:    Branch,
		BuildUser: BuildUser,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if info.Version == "" && bi != nil && bi.Main.Version != "" {
		info.Version = bi.Main.Version
	}

	if info.Version == "" {
		info.Version = "(devel)"
	}

	return info
}

// String renders info as a one-line summary followed by indented details.
func (i Info) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "leetgen %s (revision: %s)\n", i.Version, i.Revision)

	if i.Branch != "" {
		fmt.Fprintf(&b, "  branch:     %s\n", i.Branch)
	}

	if i.BuildUser != "" || i.BuildDate != "" {
		fmt.Fprintf(&b, "  built by:   %s on %s\n", i.BuildUser, i.BuildDate)
	}

	fmt.Fprintf(&b, "  go version: %s\n", i.GoVersion)
	fmt.Fprintf(&b, "  platform:   %s", i.Platform)

	return b.String()
}

func revision(bi *debug.BuildInfo) string {
	rev := "unknown"

	if bi == nil {
		return rev
	}

	modified := false

	for _, v := range bi.Settings {
		switch v.Key {
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			if v.Value == "true" {
				modified = true
			}
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
