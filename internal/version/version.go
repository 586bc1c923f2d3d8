/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides build information for the resolve-with-prefix CLI.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Name is the program name printed by the version command.
const Name = "resolve-with-prefix"

var (
	// Version information, set at build time via ldflags
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
	GitDirty  = ""
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion,omitempty"`
	Dirty     bool   `json:"dirty"`
}

// Get returns the version string, preferring ldflags over module build info.
func Get() string {
	if Version != "dev" {
		return withDirty(Version)
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
	}

	if GitCommit != "unknown" && GitCommit != "" {
		return withDirty("dev-" + shortCommit(GitCommit))
	}

	return "dev"
}

// String returns "<name> <version>".
func String() string {
	return fmt.Sprintf("%s %s", Name, Get())
}

// Full returns String plus the commit and build time when they are known.
func Full() string {
	var details []string
	if GitCommit != "unknown" && GitCommit != "" {
		details = append(details, "commit "+shortCommit(GitCommit))
	}
	if BuildTime != "unknown" && BuildTime != "" {
		details = append(details, "built "+BuildTime)
	}
	if len(details) == 0 {
		return String()
	}
	return fmt.Sprintf("%s (%s)", String(), strings.Join(details, ", "))
}

// Info returns detailed build information.
func Info() BuildInfo {
	info := BuildInfo{
		Name:      Name,
		Version:   Get(),
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		Dirty:     GitDirty == "dirty",
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
	}
	return info
}

func withDirty(v string) string {
	if GitDirty == "dirty" && !strings.HasSuffix(v, "-dirty") {
		return v + "-dirty"
	}
	return v
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
