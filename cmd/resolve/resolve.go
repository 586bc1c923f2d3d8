/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for resolve-with-prefix.
package resolve

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chrisblossom/resolve-with-prefix/cmd/settings"
	"github.com/chrisblossom/resolve-with-prefix/fs"
	"github.com/chrisblossom/resolve-with-prefix/resolver"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve <id>...",
	Short: "Resolve package identifiers to file paths",
	Long: `Resolve each identifier using the configured prefixes and print the
absolute path of its entry file. Identifiers starting with "module:" bypass
prefixing. Stops at the first identifier that cannot be resolved.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
}

// resolution is one resolved identifier.
type resolution struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q (expected text or json)", format)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("error getting working directory: %w", err)
	}

	s, err := settings.Load(viper.GetViper(), fs.NewOSFileSystem(), cwd)
	if err != nil {
		return err
	}

	resolved, resolveErr := resolveAll(cmd.Context(), resolver.New(s.Options), args, s.Dir)

	if err := write(cmd.OutOrStdout(), resolved, format); err != nil {
		return err
	}
	return resolveErr
}

// resolveAll starts every resolution at once and collects results in
// argument order, stopping at the first failure.
func resolveAll(ctx context.Context, r *resolver.Resolver, ids []string, dir string) ([]resolution, error) {
	pending := make([]<-chan resolver.Result, len(ids))
	for i, id := range ids {
		pending[i] = r.ResolveAsync(ctx, id, dir)
	}

	resolved := make([]resolution, 0, len(ids))
	for i, results := range pending {
		result := <-results
		if result.Err != nil {
			return resolved, fmt.Errorf("%s: %w", ids[i], result.Err)
		}
		resolved = append(resolved, resolution{ID: ids[i], Path: result.Path})
	}

	return resolved, nil
}

func write(w io.Writer, resolved []resolution, format string) error {
	switch format {
	case "json":
		out, err := json.MarshalIndent(resolved, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling results: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	default:
		for _, r := range resolved {
			if _, err := fmt.Fprintln(w, r.Path); err != nil {
				return err
			}
		}
		return nil
	}
}
