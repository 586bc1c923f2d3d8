/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	rfs "github.com/chrisblossom/resolve-with-prefix/fs"
	"github.com/chrisblossom/resolve-with-prefix/internal/logger"
	"github.com/chrisblossom/resolve-with-prefix/resolver"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "resolve-with-prefix"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json", ".toml"}

// Load searches for .config/resolve-with-prefix.{yaml,yml,json,toml} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem rfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := &Config{}
		switch ext {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(data, cfg)
		case ".json":
			err = json.Unmarshal(data, cfg)
		case ".toml":
			err = toml.Unmarshal(data, cfg)
		}
		if err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", configPath, err)
		}

		logger.Info("loaded config", "path", configPath)
		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns config or defaults if not found or invalid.
func LoadOrDefault(filesystem rfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil {
		logger.Warn("ignoring invalid config", "dir", rootDir, "error", err)
		return Default()
	}
	if cfg == nil {
		return Default()
	}
	return cfg
}

// PrefixOptions converts the config into resolver options, expanding Paths
// relative to rootDir.
func (c *Config) PrefixOptions(filesystem rfs.FileSystem, rootDir string) (resolver.PrefixOptions, error) {
	paths, err := c.ExpandPaths(filesystem, rootDir)
	if err != nil {
		return resolver.PrefixOptions{}, err
	}

	opts := resolver.PrefixOptions{
		Prefix:     []string(c.Prefix),
		Org:        c.Org,
		OrgPrefix:  []string(c.OrgPrefix),
		Paths:      paths,
		Extensions: c.Extensions,
		FS:         filesystem,
	}
	if c.Strict != nil {
		opts.Strict = resolver.Bool(*c.Strict)
	}
	return opts, nil
}

// ExpandPaths expands glob patterns in Paths and returns absolute directories.
// Non-glob entries are returned whether or not they exist.
func (c *Config) ExpandPaths(filesystem rfs.FileSystem, rootDir string) ([]string, error) {
	var result []string

	for _, p := range c.Paths {
		expanded, err := expandSearchPath(filesystem, rootDir, p)
		if err != nil {
			return nil, err
		}
		result = append(result, expanded...)
	}

	return result, nil
}

// expandSearchPath expands a single search path which may contain globs.
func expandSearchPath(filesystem rfs.FileSystem, rootDir, pattern string) ([]string, error) {
	// Make pattern absolute if relative
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}

	if !containsGlob(pattern) {
		return []string{pattern}, nil
	}

	return expandGlob(filesystem, pattern)
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob walks the non-glob base of pattern and collects matching directories.
// A matched directory is not descended into.
func expandGlob(filesystem rfs.FileSystem, pattern string) ([]string, error) {
	// Find the base directory (non-glob prefix)
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	if !filesystem.Exists(baseDir) {
		return nil, nil
	}

	// Get the relative pattern from baseDir
	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = filepath.ToSlash(strings.TrimPrefix(relPattern, string(filepath.Separator)))

	var matches []string

	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't read
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if !d.IsDir() || path == baseDir {
			return nil
		}

		// Get path relative to baseDir for matching
		relPath := strings.TrimPrefix(path, baseDir)
		relPath = filepath.ToSlash(strings.TrimPrefix(relPath, string(filepath.Separator)))

		// doublestar handles both simple and ** globs
		if matched, _ := doublestar.Match(relPattern, relPath); matched {
			matches = append(matches, path)
			return fs.SkipDir
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return matches, nil
}
