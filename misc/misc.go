// Package misc keeps small helpers describing the program itself.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "exc"

// set by the build via -ldflags when releasing
var version = "development"

// GetAppName returns short program name used for logs, temporary files and reports.
func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	return version
}

var readBuildInfo = sync.OnceValue(func() *debug.BuildInfo {
	if bi, ok := debug.ReadBuildInfo(); ok {
		return bi
	}
	return nil
})

// GetGitHash returns VCS revision recorded in the binary, if any.
func GetGitHash() string {
	bi := readBuildInfo()
	if bi == nil {
		return "unknown"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return "unknown"
}
