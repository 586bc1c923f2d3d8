/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package candidates provides the candidates command for resolve-with-prefix.
package candidates

import (
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

// Cmd is the candidates cobra command.
var Cmd = &cobra.Command{
	Use:   "candidates <id>...",
	Short: "Show the names tried for each identifier",
	Long: `Print, in attempt order, the module names that resolve would try for
each identifier under the configured prefixes. Nothing is resolved.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
}

type entry struct {
	ID         string   `json:"id"`
	Candidates []string `json:"candidates"`
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("error getting working directory: %w", err)
	}

	s, err := settings.Load(viper.GetViper(), fs.NewOSFileSystem(), cwd)
	if err != nil {
		return err
	}

	return write(cmd.OutOrStdout(), collect(resolver.New(s.Options), args), format)
}

func collect(r *resolver.Resolver, ids []string) []entry {
	entries := make([]entry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, entry{ID: id, Candidates: r.Candidates(id)})
	}
	return entries
}

func write(w io.Writer, entries []entry, format string) error {
	switch format {
	case "json":
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling candidates: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "text":
		for _, e := range entries {
			fmt.Fprintln(w, e.ID)
			for _, c := range e.Candidates {
				fmt.Fprintf(w, "  %s\n", c)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected text or json)", format)
	}
}
