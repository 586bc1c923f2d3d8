/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for resolve-with-prefix.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chrisblossom/resolve-with-prefix/cmd/candidates"
	"github.com/chrisblossom/resolve-with-prefix/cmd/resolve"
	"github.com/chrisblossom/resolve-with-prefix/cmd/settings"
	"github.com/chrisblossom/resolve-with-prefix/cmd/version"
	"github.com/chrisblossom/resolve-with-prefix/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "resolve-with-prefix",
	Short: "Resolve node modules by shorthand names",
	Long: `resolve-with-prefix resolves package identifiers such as "env" to installed
modules such as "babel-preset-env", using configurable prefixes and an
optional organization scope.

Settings come from .config/resolve-with-prefix.{yaml,yml,json,toml},
RESOLVE_WITH_PREFIX_* environment variables and flags, in increasing priority.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(viper.GetBool(settings.KeyVerbose))
	},
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	settings.AddFlags(rootCmd.PersistentFlags())
	if err := settings.Bind(viper.GetViper(), rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(candidates.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
