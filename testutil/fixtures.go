/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides fixture loading for resolve-with-prefix tests.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/chrisblossom/resolve-with-prefix/internal/mapfs"
)

// FixtureDir returns the absolute on-disk path of testdata/<fixtureDir>,
// looking upward from the package under test.
func FixtureDir(t *testing.T, fixtureDir string) string {
	t.Helper()

	// Try multiple possible paths since Go test changes working directory
	possiblePaths := []string{
		filepath.Join("testdata", fixtureDir),
		filepath.Join("..", "testdata", fixtureDir),
		filepath.Join("..", "..", "testdata", fixtureDir),
	}

	for _, path := range possiblePaths {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			abs, err := filepath.Abs(path)
			if err != nil {
				t.Fatalf("Could not make %s absolute: %v", path, err)
			}
			return abs
		}
	}

	t.Fatalf("Could not find fixtures at %s (tried all paths)", fixtureDir)
	return ""
}

// NewFixtureFS loads fixture files from testdata and returns a MapFileSystem
// with files mapped to the specified root path.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	mfs := mapfs.New()
	fixturePath := FixtureDir(t, fixtureDir)

	// Walk fixture directory and load all files
	err := filepath.WalkDir(fixturePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(fixturePath, path)
		if err != nil {
			return err
		}
		virtualPath := filepath.ToSlash(filepath.Join(rootPath, relPath))

		if d.IsDir() {
			mfs.AddDir(virtualPath, 0755)
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		mfs.AddFile(virtualPath, string(content), 0644)

		return nil
	})

	if err != nil {
		t.Fatalf("Failed to load fixtures from %s: %v", fixtureDir, err)
	}

	return mfs
}
