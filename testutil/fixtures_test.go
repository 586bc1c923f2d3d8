/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package testutil

import (
	"path/filepath"
	"slices"
	"testing"
)

func TestNewFixtureFS_MapsFilesUnderRoot(t *testing.T) {
	mfs := NewFixtureFS(t, "fixtures/config/globs", "/project")

	want := []string{
		"/project/.config/resolve-with-prefix.yaml",
		"/project/packages/a/node_modules/one-preset-alpha/index.js",
		"/project/packages/a/node_modules/one-preset-alpha/package.json",
		"/project/packages/b/node_modules/one-preset-beta/index.js",
		"/project/packages/b/node_modules/one-preset-beta/package.json",
		"/project/packages/c/lib/index.js",
	}
	if got := mfs.ListFiles(); !slices.Equal(got, want) {
		t.Errorf("ListFiles() = %q, want %q", got, want)
	}

	info, err := mfs.Stat("/project/packages/c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected /project/packages/c to be a directory")
	}
}

func TestFixtureDir_Absolute(t *testing.T) {
	dir := FixtureDir(t, "fixtures/app1")
	if !filepath.IsAbs(dir) {
		t.Errorf("FixtureDir returned relative path %q", dir)
	}
}
