// Package version reports build information for the rowframe CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

const (
	unknownValue     = "unknown"
	commitHashLength = 7
)

// Build-time variables set by ldflags
var (
	Version   = "dev"
	BuildDate = unknownValue
	GitCommit = unknownValue
	GoVersion = runtime.Version()
)

// BuildInfo describes the running binary
type BuildInfo struct {
	Version    string `json:"version"`
	BuildDate  string `json:"build_date"`
	GitCommit  string `json:"git_commit"`
	GoVersion  string `json:"go_version"`
	Dirty      bool   `json:"dirty"`
	ModulePath string `json:"module_path"`
	Arrow      string `json:"arrow"`
}

// Info collects the ldflags values and the module versions embedded in the binary
func Info() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: GoVersion,
		Dirty:     strings.HasSuffix(GitCommit, "-dirty"),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.ModulePath = bi.Main.Path
		for _, dep := range bi.Deps {
			if strings.HasPrefix(dep.Path, "github.com/apache/arrow-go/") {
				info.Arrow = dep.Version
			}
		}
	}

	return info
}

// String returns a formatted version string
func (b BuildInfo) String() string {
	var sb strings.Builder
	sb.WriteString("rowframe\n")
	sb.WriteString(fmt.Sprintf("Version: %s", b.Version))
	if b.Dirty {
		sb.WriteString(" (dirty)")
	}
	sb.WriteString("\n")

	if b.BuildDate != unknownValue {
		sb.WriteString(fmt.Sprintf("Build Date: %s\n", b.BuildDate))
	}

	if b.GitCommit != unknownValue {
		commit := strings.TrimSuffix(b.GitCommit, "-dirty")
		if len(commit) > commitHashLength {
			commit = commit[:commitHashLength]
		}
		sb.WriteString(fmt.Sprintf("Git Commit: %s\n", commit))
	}

	sb.WriteString(fmt.Sprintf("Go Version: %s\n", b.GoVersion))

	if b.ModulePath != "" {
		sb.WriteString(fmt.Sprintf("Module: %s\n", b.ModulePath))
	}
	if b.Arrow != "" {
		sb.WriteString(fmt.Sprintf("Arrow: %s\n", b.Arrow))
	}

	return sb.String()
}
