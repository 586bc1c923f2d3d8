/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package settings merges the config file, environment and CLI flags into
// resolver options.
package settings

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/chrisblossom/resolve-with-prefix/config"
	rfs "github.com/chrisblossom/resolve-with-prefix/fs"
	"github.com/chrisblossom/resolve-with-prefix/internal/logger"
	"github.com/chrisblossom/resolve-with-prefix/resolver"
)

// Keys shared by flags, environment variables and viper lookups.
const (
	KeyPrefix    = "prefix"
	KeyOrg       = "org"
	KeyOrgPrefix = "org-prefix"
	KeyStrict    = "strict"
	KeyDir       = "dir"
	KeyPath      = "path"
	KeyExtension = "extension"
	KeyVerbose   = "verbose"
)

// EnvPrefix namespaces environment variables, e.g. RESOLVE_WITH_PREFIX_ORG.
const EnvPrefix = "RESOLVE_WITH_PREFIX"

// AddFlags registers the resolution flags on flags.
func AddFlags(flags *pflag.FlagSet) {
	flags.StringSliceP(KeyPrefix, "p", nil, "Prefix for identifiers outside the org (repeatable)")
	flags.String(KeyOrg, "", "Organization scope, e.g. example or @example/")
	flags.StringSlice(KeyOrgPrefix, nil, "Prefix for identifiers inside the org (repeatable)")
	flags.Bool(KeyStrict, true, "Require module: for unprefixed identifiers")
	flags.StringP(KeyDir, "C", "", "Directory to resolve from and to search for config (default: working directory)")
	flags.StringSlice(KeyPath, nil, "Extra search path, consulted after NODE_PATH (repeatable)")
	flags.StringSlice(KeyExtension, nil, "File extension to try (repeatable, default: .js)")
	flags.BoolP(KeyVerbose, "v", false, "Log each resolution attempt")
}

// Bind wires flags and RESOLVE_WITH_PREFIX_* environment variables into v.
func Bind(v *viper.Viper, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v.BindPFlags(flags)
}

// Settings is the effective configuration for one CLI invocation.
type Settings struct {
	// Options are the resolver options after merging all sources.
	Options resolver.PrefixOptions

	// Dir is the absolute directory identifiers are resolved from.
	Dir string

	// ConfigFound reports whether a config file was loaded from Dir.
	ConfigFound bool
}

// Load builds Settings from the config file in the resolution directory,
// overridden by any flag or environment value set in v. Relative --dir and
// --path values are taken relative to cwd.
func Load(v *viper.Viper, filesystem rfs.FileSystem, cwd string) (Settings, error) {
	dir := absFrom(cwd, v.GetString(KeyDir))

	cfg, err := config.Load(filesystem, dir)
	if err != nil {
		return Settings{}, fmt.Errorf("error loading config: %w", err)
	}

	s := Settings{
		Dir:     dir,
		Options: resolver.PrefixOptions{FS: filesystem},
	}

	if cfg != nil {
		s.ConfigFound = true
		s.Options, err = cfg.PrefixOptions(filesystem, dir)
		if err != nil {
			return Settings{}, fmt.Errorf("error expanding config paths: %w", err)
		}
	}

	if v.IsSet(KeyPrefix) {
		s.Options.Prefix = nonEmpty(v.GetStringSlice(KeyPrefix))
	}
	if v.IsSet(KeyOrg) {
		s.Options.Org = v.GetString(KeyOrg)
	}
	if v.IsSet(KeyOrgPrefix) {
		s.Options.OrgPrefix = nonEmpty(v.GetStringSlice(KeyOrgPrefix))
	}
	if v.IsSet(KeyStrict) {
		s.Options.Strict = resolver.Bool(v.GetBool(KeyStrict))
	}
	if v.IsSet(KeyPath) {
		var paths []string
		for _, p := range nonEmpty(v.GetStringSlice(KeyPath)) {
			paths = append(paths, absFrom(cwd, p))
		}
		s.Options.Paths = paths
	}
	if v.IsSet(KeyExtension) {
		s.Options.Extensions = nonEmpty(v.GetStringSlice(KeyExtension))
	}

	logger.Debug("settings loaded",
		"dir", s.Dir,
		"config", s.ConfigFound,
		"prefix", s.Options.Prefix,
		"org", s.Options.Org,
		"orgPrefix", s.Options.OrgPrefix,
		"strict", s.Options.IsStrict(),
	)

	return s, nil
}

func absFrom(cwd, p string) string {
	if p == "" {
		return cwd
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(cwd, p)
}

// nonEmpty drops blank entries so "--prefix ''" clears the list.
func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
