/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import "testing"

func setBuildVars(t *testing.T, version, commit, dirty string) {
	t.Helper()
	oldVersion, oldCommit, oldDirty, oldBuildTime := Version, GitCommit, GitDirty, BuildTime
	t.Cleanup(func() {
		Version, GitCommit, GitDirty, BuildTime = oldVersion, oldCommit, oldDirty, oldBuildTime
	})
	Version, GitCommit, GitDirty, BuildTime = version, commit, dirty, "unknown"
}

func TestGet_Ldflags(t *testing.T) {
	setBuildVars(t, "v1.2.3", "unknown", "")
	if got := Get(); got != "v1.2.3" {
		t.Errorf("expected v1.2.3, got %q", got)
	}
}

func TestGet_Dirty(t *testing.T) {
	setBuildVars(t, "v1.2.3", "unknown", "dirty")
	if got := Get(); got != "v1.2.3-dirty" {
		t.Errorf("expected v1.2.3-dirty, got %q", got)
	}
}

func TestString(t *testing.T) {
	setBuildVars(t, "v2.0.0", "unknown", "")
	if got := String(); got != "resolve-with-prefix v2.0.0" {
		t.Errorf("unexpected version string %q", got)
	}
}

func TestInfo(t *testing.T) {
	setBuildVars(t, "v2.0.0", "0123456789abcdef", "dirty")
	info := Info()
	if info.Name != Name || info.Version != "v2.0.0-dirty" || !info.Dirty {
		t.Errorf("unexpected build info %+v", info)
	}
	if info.GitCommit != "0123456789abcdef" {
		t.Errorf("expected full commit, got %q", info.GitCommit)
	}
}

func TestFull(t *testing.T) {
	setBuildVars(t, "v2.0.0", "unknown", "")
	if got := Full(); got != "resolve-with-prefix v2.0.0" {
		t.Errorf("expected bare version string, got %q", got)
	}

	GitCommit = "0123456789abcdef"
	BuildTime = "2026-01-02T03:04:05Z"
	want := "resolve-with-prefix v2.0.0 (commit 0123456, built 2026-01-02T03:04:05Z)"
	if got := Full(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
