// Package version reports what build of answerlog is running
package version

import "runtime/debug"

// stamped with -ldflags "-X answerlog/internal/core/version.version=v0.1.0 -X ...commit=abcd -X ...date=2026-10-01"
var (
	version = "dev"
	commit  = ""
	date    = "unknown"
)

// BuildInfo is served by /meta/version and /meta/backends
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the stamped build; an unstamped commit falls back to the vcs revision go build recorded
func Info() BuildInfo {
	c := commit
	if c == "" {
		c = "none"
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" {
					c = s.Value
				}
			}
		}
	}
	return BuildInfo{Service: "answerlog-api", Version: version, Commit: c, Date: date}
}
