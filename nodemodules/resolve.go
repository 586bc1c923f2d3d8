/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package nodemodules implements Node.js-style module resolution: relative and
// absolute paths, core modules, and bare identifiers looked up in node_modules
// directories from a base directory upward, then in extra search paths.
package nodemodules

import (
	"fmt"
	"path/filepath"
	"strings"

	rfs "github.com/chrisblossom/resolve-with-prefix/fs"
)

// DefaultExtensions are tried after the exact path when Options.Extensions is empty.
var DefaultExtensions = []string{".js"}

// Options configures a single resolution.
type Options struct {
	// Basedir is where lookup starts. Relative values are made absolute.
	Basedir string

	// Paths are searched after the node_modules hierarchy, like NODE_PATH.
	Paths []string

	// Extensions are appended to file candidates, in order.
	Extensions []string
}

// Resolver resolves module identifiers against a filesystem.
type Resolver struct {
	fs rfs.FileSystem
}

// New creates a resolver. A nil filesystem means the OS filesystem.
func New(filesystem rfs.FileSystem) *Resolver {
	if filesystem == nil {
		filesystem = rfs.NewOSFileSystem()
	}
	return &Resolver{fs: filesystem}
}

// Resolve returns the path of the file id refers to, or id itself for core
// modules. When nothing matches the error is a *NotFoundError; any other
// error means resolution itself failed (unreadable or invalid package.json).
func (r *Resolver) Resolve(id string, opts Options) (string, error) {
	basedir := opts.Basedir
	if basedir == "" {
		basedir = "."
	}
	// Convert basedir to absolute path for proper walk-up
	if !filepath.IsAbs(basedir) {
		absDir, err := filepath.Abs(basedir)
		if err != nil {
			return "", fmt.Errorf("failed to resolve path %s: %w", basedir, err)
		}
		basedir = absDir
	}

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	if isPath(id) {
		target := id
		if !filepath.IsAbs(target) {
			target = filepath.Join(basedir, id)
		}
		dirOnly := id == "." || id == ".." || strings.HasSuffix(id, "/")
		if path, ok, err := r.load(target, exts, dirOnly); err != nil || ok {
			return path, err
		}
		return "", &NotFoundError{ID: id, Basedir: basedir}
	}

	if IsCore(id) {
		return id, nil
	}

	dirs := nodeModulesPaths(basedir)
	for _, p := range opts.Paths {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		dirs = append(dirs, p)
	}

	for _, dir := range dirs {
		target := filepath.Join(dir, id)
		if path, ok, err := r.load(target, exts, strings.HasSuffix(id, "/")); err != nil || ok {
			return path, err
		}
	}

	return "", &NotFoundError{ID: id, Basedir: basedir}
}

// load tries target as a file, then as a directory.
func (r *Resolver) load(target string, exts []string, dirOnly bool) (string, bool, error) {
	if !dirOnly {
		if path, ok, err := r.loadAsFile(target, exts); err != nil || ok {
			return path, ok, err
		}
	}
	return r.loadAsDirectory(target, exts)
}

func (r *Resolver) loadAsFile(target string, exts []string) (string, bool, error) {
	candidates := make([]string, 0, len(exts)+1)
	candidates = append(candidates, target)
	for _, ext := range exts {
		candidates = append(candidates, target+ext)
	}

	for _, candidate := range candidates {
		isFile, _, err := rfs.Kind(r.fs, candidate)
		if err != nil {
			return "", false, err
		}
		if isFile {
			return candidate, true, nil
		}
	}
	return "", false, nil
}

func (r *Resolver) loadAsDirectory(dir string, exts []string) (string, bool, error) {
	return r.loadDirectory(dir, exts, map[string]bool{})
}

// loadDirectory follows "main" into nested directories; seen holds the
// directories already entered so a main cycle fails instead of recursing.
func (r *Resolver) loadDirectory(dir string, exts []string, seen map[string]bool) (string, bool, error) {
	manifestPath := filepath.Join(dir, "package.json")
	if seen[dir] {
		return "", false, &ManifestError{Path: manifestPath, Err: errMainCycle}
	}
	seen[dir] = true

	main, err := readMain(r.fs, manifestPath)
	if err != nil {
		return "", false, err
	}

	if main != "" {
		if main == "." || main == "./" {
			main = "index"
		}
		target := main
		if !filepath.IsAbs(target) {
			target = filepath.Join(dir, main)
		}
		if path, ok, err := r.loadAsFile(target, exts); err != nil || ok {
			return path, ok, err
		}
		if target != dir {
			if path, ok, err := r.loadDirectory(target, exts, seen); err != nil || ok {
				return path, ok, err
			}
		}
	}

	return r.loadAsFile(filepath.Join(dir, "index"), exts)
}

// nodeModulesPaths lists <dir>/node_modules for basedir and each ancestor,
// nearest first.
func nodeModulesPaths(basedir string) []string {
	var dirs []string
	dir := basedir
	for {
		if filepath.Base(dir) != "node_modules" {
			dirs = append(dirs, filepath.Join(dir, "node_modules"))
		}

		// Move up one directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return dirs
}

// isPath reports identifiers resolved relative to basedir instead of through
// node_modules: ".", "..", "./x", "../x", and absolute paths.
func isPath(id string) bool {
	if id == "." || id == ".." {
		return true
	}
	if strings.HasPrefix(id, "./") || strings.HasPrefix(id, "../") || strings.HasPrefix(id, "/") {
		return true
	}
	if filepath.Separator == '\\' && (strings.HasPrefix(id, `.\`) || strings.HasPrefix(id, `..\`)) {
		return true
	}
	return filepath.IsAbs(id)
}
