/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fs provides the read-only filesystem abstraction that module
// resolution runs against.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"syscall"
)

// FileSystem is the set of queries module resolution and config loading need.
// Resolution never writes, so no mutating operations are exposed.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	Stat(name string) (fs.FileInfo, error)
	Exists(path string) bool

	// fs.FS compatibility - allows use with fs.WalkDir
	Open(name string) (fs.File, error)
}

// OSFileSystem implements FileSystem using the standard os package.
type OSFileSystem struct{}

// NewOSFileSystem creates a new filesystem that uses the standard os package.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// ReadFile reads the entire contents of a file.
func (f *OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// ReadDir reads the named directory and returns its entries.
func (f *OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// Stat returns file information for the named file.
func (f *OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Exists returns true if the path exists.
func (f *OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Open opens the named file for reading.
func (f *OSFileSystem) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// Kind stats name and reports whether it is a regular file or a directory.
// A missing path is not an error: both results are false. Any other stat
// failure is returned so callers can tell "absent" from "unreadable".
func Kind(filesystem FileSystem, name string) (isFile, isDir bool, err error) {
	info, err := filesystem.Stat(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || isNotDirErr(err) {
			return false, false, nil
		}
		return false, false, err
	}
	if info.IsDir() {
		return false, true, nil
	}
	return info.Mode().IsRegular(), false, nil
}

// isNotDirErr reports a path component that exists but is not a directory,
// e.g. stat("index.js/package.json").
func isNotDirErr(err error) bool {
	return errors.Is(err, syscall.ENOTDIR)
}
