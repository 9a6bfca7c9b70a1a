// Package misc keeps build identification for the program.
package misc

import (
	"runtime/debug"
)

// set with -ldflags "-X linecut/misc.version=..." by the build
var (
	version = "dev"
	gitHash = ""
)

const appName = "linecut"

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns revision program was built from, falling back to VCS
// information recorded by the toolchain.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
