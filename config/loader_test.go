/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/chrisblossom/resolve-with-prefix/internal/mapfs"
	"github.com/chrisblossom/resolve-with-prefix/resolver"
	"github.com/chrisblossom/resolve-with-prefix/testutil"
)

func TestLoad_YAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if !slices.Equal(cfg.Prefix, []string{"one-preset"}) {
		t.Errorf("expected prefix [one-preset], got %v", cfg.Prefix)
	}

	if cfg.Org != "example" {
		t.Errorf("expected org 'example', got %q", cfg.Org)
	}

	if !slices.Equal(cfg.OrgPrefix, []string{"preset", "plugin"}) {
		t.Errorf("expected orgPrefix [preset plugin], got %v", cfg.OrgPrefix)
	}

	if cfg.Strict == nil || *cfg.Strict {
		t.Errorf("expected strict false, got %v", cfg.Strict)
	}

	if !slices.Equal(cfg.Paths, []string{"vendor/node_modules"}) {
		t.Errorf("expected paths [vendor/node_modules], got %v", cfg.Paths)
	}

	if !slices.Equal(cfg.Extensions, []string{".js", ".cjs"}) {
		t.Errorf("expected extensions [.js .cjs], got %v", cfg.Extensions)
	}
}

func TestLoad_JSON(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/json", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !slices.Equal(cfg.Prefix, []string{"one-preset", "one-plugin"}) {
		t.Errorf("expected two prefixes, got %v", cfg.Prefix)
	}

	if cfg.Org != "@example/" {
		t.Errorf("expected org '@example/', got %q", cfg.Org)
	}

	if cfg.OrgPrefix != nil {
		t.Errorf("expected empty orgPrefix to be nil, got %v", cfg.OrgPrefix)
	}

	if cfg.Strict == nil || !*cfg.Strict {
		t.Errorf("expected strict true, got %v", cfg.Strict)
	}
}

func TestLoad_TOML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/toml", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !slices.Equal(cfg.Prefix, []string{"one-plugin"}) {
		t.Errorf("expected prefix [one-plugin], got %v", cfg.Prefix)
	}

	if !slices.Equal(cfg.OrgPrefix, []string{"preset"}) {
		t.Errorf("expected orgPrefix [preset], got %v", cfg.OrgPrefix)
	}

	if cfg.Strict != nil {
		t.Errorf("expected strict to be unset, got %v", *cfg.Strict)
	}
}

func TestLoad_NoConfig(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddDir("/project", 0755)

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}
}

func TestLoad_YAMLTakesPriority(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/priority", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !slices.Equal(cfg.Prefix, []string{"from-yaml"}) {
		t.Errorf("expected yaml config to win, got prefix %v", cfg.Prefix)
	}
}

func TestLoad_InvalidPrefix(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/invalid", "/project")

	_, err := Load(mfs, "/project")
	if err == nil {
		t.Fatal("expected error for mapping prefix")
	}

	if !errors.Is(err, ErrInvalidStringList) {
		t.Errorf("expected ErrInvalidStringList, got %v", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/invalid", "/project")

	cfg := LoadOrDefault(mfs, "/project")
	if cfg == nil {
		t.Fatal("expected default config, got nil")
	}
	if cfg.Prefix != nil || cfg.Org != "" || cfg.Strict != nil {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestStringList_Unmarshal(t *testing.T) {
	type doc struct {
		Prefix StringList `yaml:"prefix" json:"prefix" toml:"prefix"`
	}

	tests := []struct {
		name    string
		format  string
		input   string
		want    []string
		wantErr bool
	}{
		{name: "yaml scalar", format: "yaml", input: "prefix: babel-preset", want: []string{"babel-preset"}},
		{name: "yaml list", format: "yaml", input: "prefix: [a, b]", want: []string{"a", "b"}},
		{name: "yaml empty scalar", format: "yaml", input: `prefix: ""`, want: nil},
		{name: "yaml null", format: "yaml", input: "prefix: ~", want: nil},
		{name: "yaml mapping", format: "yaml", input: "prefix: {a: b}", wantErr: true},
		{name: "json string", format: "json", input: `{"prefix": "babel-preset"}`, want: []string{"babel-preset"}},
		{name: "json array", format: "json", input: `{"prefix": ["a", "b"]}`, want: []string{"a", "b"}},
		{name: "json number", format: "json", input: `{"prefix": 3}`, wantErr: true},
		{name: "toml string", format: "toml", input: `prefix = "babel-preset"`, want: []string{"babel-preset"}},
		{name: "toml array", format: "toml", input: `prefix = ["a", "b"]`, want: []string{"a", "b"}},
		{name: "toml mixed array", format: "toml", input: `prefix = ["a", 1]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d doc
			var err error
			switch tt.format {
			case "yaml":
				err = yaml.Unmarshal([]byte(tt.input), &d)
			case "json":
				err = json.Unmarshal([]byte(tt.input), &d)
			case "toml":
				err = toml.Unmarshal([]byte(tt.input), &d)
			}

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", d.Prefix)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(d.Prefix, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, d.Prefix)
			}
		})
	}
}

func TestExpandPaths_Globs(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/globs", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	paths, err := cfg.ExpandPaths(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"/project/packages/a/node_modules",
		"/project/packages/b/node_modules",
		"/project/shared",
	}
	if !slices.Equal(paths, want) {
		t.Errorf("expected %v, got %v", want, paths)
	}
}

func TestExpandPaths_MissingBase(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddDir("/project", 0755)

	cfg := &Config{Paths: []string{"missing/**/node_modules"}}
	paths, err := cfg.ExpandPaths(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("expected no paths, got %v", paths)
	}
}

func TestPrefixOptions_ResolvesThroughGlobPaths(t *testing.T) {
	t.Setenv(resolver.NodePathEnv, "")
	mfs := testutil.NewFixtureFS(t, "fixtures/config/globs", "/project")
	mfs.AddDir("/elsewhere", 0755)

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	opts, err := cfg.PrefixOptions(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !opts.IsStrict() {
		t.Error("expected strict by default")
	}

	got, err := resolver.New(opts).Resolve("beta", "/elsewhere")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "/project/packages/b/node_modules/one-preset-beta/index.js"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestPrefixOptions_Strict(t *testing.T) {
	strict := false
	cfg := &Config{Prefix: StringList{"one-preset"}, Strict: &strict}

	opts, err := cfg.PrefixOptions(mapfs.New(), "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if opts.IsStrict() {
		t.Error("expected strict false")
	}

	strict = true
	if opts.IsStrict() {
		t.Error("expected options not to alias config")
	}
}
