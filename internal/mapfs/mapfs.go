/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory filesystem implementation for testing.
package mapfs

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// MapFileSystem implements fs.FileSystem using an in-memory fstest.MapFS.
// Paths are absolute, slash-separated; "/project/a.js" is stored as "project/a.js".
type MapFileSystem struct {
	mu      sync.RWMutex
	mapFS   fstest.MapFS
	faults  map[string]error
	modTime time.Time
}

// New creates a new in-memory filesystem for testing.
func New() *MapFileSystem {
	return &MapFileSystem{
		mapFS:   make(fstest.MapFS),
		faults:  make(map[string]error),
		modTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// AddFile adds a file to the in-memory filesystem.
func (mfs *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.mapFS[mfs.cleanPath(p)] = &fstest.MapFile{
		Data:    []byte(content),
		Mode:    mode,
		ModTime: mfs.modTime,
	}
}

// AddDir adds an empty directory to the in-memory filesystem.
func (mfs *MapFileSystem) AddDir(p string, mode fs.FileMode) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.mapFS[mfs.cleanPath(p)] = &fstest.MapFile{
		Mode:    fs.ModeDir | mode.Perm(),
		ModTime: mfs.modTime,
	}
}

// AddPackage adds node_modules/<name>/package.json under dir with the given
// main field ("" omits it) and an entry file at <main or index.js>.
func (mfs *MapFileSystem) AddPackage(dir, name, main string) {
	pkgDir := path.Join(dir, "node_modules", name)
	if main == "" {
		mfs.AddFile(path.Join(pkgDir, "package.json"), fmt.Sprintf(`{"name": %q}`, name), 0644)
		mfs.AddFile(path.Join(pkgDir, "index.js"), "module.exports = {};\n", 0644)
		return
	}
	mfs.AddFile(path.Join(pkgDir, "package.json"), fmt.Sprintf(`{"name": %q, "main": %q}`, name, main), 0644)
	mfs.AddFile(path.Join(pkgDir, main), "module.exports = {};\n", 0644)
}

// Fail makes every Stat, Open and ReadFile of p return err.
func (mfs *MapFileSystem) Fail(p string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.faults[mfs.cleanPath(p)] = err
}

// ReadFile implements fs.FileSystem.
func (mfs *MapFileSystem) ReadFile(name string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	name = mfs.cleanPath(name)
	if err := mfs.fault("read", name); err != nil {
		return nil, err
	}
	return fs.ReadFile(mfs.mapFS, name)
}

// ReadDir implements fs.FileSystem.
func (mfs *MapFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	return fs.ReadDir(mfs.mapFS, mfs.cleanPath(name))
}

// Stat implements fs.FileSystem.
func (mfs *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	name = mfs.cleanPath(name)
	if err := mfs.fault("stat", name); err != nil {
		return nil, err
	}
	return fs.Stat(mfs.mapFS, name)
}

// Exists implements fs.FileSystem.
func (mfs *MapFileSystem) Exists(p string) bool {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	p = mfs.cleanPath(p)
	if p == "." {
		return true
	}
	if _, exists := mfs.mapFS[p]; exists {
		return true
	}

	prefix := p + "/"
	for filePath := range mfs.mapFS {
		if strings.HasPrefix(filePath, prefix) {
			return true
		}
	}

	return false
}

// Open implements fs.FileSystem.
func (mfs *MapFileSystem) Open(name string) (fs.File, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	name = mfs.cleanPath(name)
	if err := mfs.fault("open", name); err != nil {
		return nil, err
	}
	return mfs.mapFS.Open(name)
}

// ListFiles returns the absolute paths of all regular files, sorted.
func (mfs *MapFileSystem) ListFiles() []string {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	files := make([]string, 0, len(mfs.mapFS))
	for p, file := range mfs.mapFS {
		if file.Mode.IsDir() {
			continue
		}
		files = append(files, "/"+p)
	}
	sort.Strings(files)
	return files
}

func (mfs *MapFileSystem) fault(op, name string) error {
	if err, ok := mfs.faults[name]; ok {
		return &fs.PathError{Op: op, Path: "/" + name, Err: err}
	}
	return nil
}

func (mfs *MapFileSystem) cleanPath(p string) string {
	cleaned := path.Clean("/" + strings.ReplaceAll(p, "\\", "/"))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" {
		return "."
	}
	return cleaned
}
