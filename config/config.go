/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for prefix resolution.
package config

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidStringList indicates a prefix value that is neither a string nor a list of strings.
var ErrInvalidStringList = errors.New("expected a string or a list of strings")

// Config represents the resolve-with-prefix configuration.
type Config struct {
	// Prefix is one prefix or a list of prefixes for identifiers outside Org.
	Prefix StringList `yaml:"prefix" json:"prefix" toml:"prefix"`

	// Org is the organization scope, e.g. "example" or "@example/".
	Org string `yaml:"org" json:"org" toml:"org"`

	// OrgPrefix replaces Prefix for identifiers inside Org.
	OrgPrefix StringList `yaml:"orgPrefix" json:"orgPrefix" toml:"orgPrefix"`

	// Strict requires "module:" for unprefixed identifiers. Omitted means true.
	Strict *bool `yaml:"strict" json:"strict" toml:"strict"`

	// Paths are extra search directories (globs allowed), relative to the config root.
	Paths []string `yaml:"paths" json:"paths" toml:"paths"`

	// Extensions override the file extensions tried during resolution.
	Extensions []string `yaml:"extensions" json:"extensions" toml:"extensions"`
}

// StringList accepts either a single string or a list of strings.
// An empty single string means no entries.
type StringList []string

func fromScalar(s string) StringList {
	if s == "" {
		return nil
	}
	return StringList{s}
}

// UnmarshalYAML handles both scalar and sequence forms.
func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = fromScalar(node.Value)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidStringList, err)
		}
		*l = items
		return nil
	default:
		return fmt.Errorf("%w (line %d)", ErrInvalidStringList, node.Line)
	}
}

// UnmarshalJSON handles both string and array forms.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = fromScalar(s)
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("%w, got %s", ErrInvalidStringList, data)
	}
	*l = items
	return nil
}

// UnmarshalTOML handles both string and array forms.
func (l *StringList) UnmarshalTOML(v any) error {
	switch val := v.(type) {
	case string:
		*l = fromScalar(val)
		return nil
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("%w, got element %v", ErrInvalidStringList, item)
			}
			items = append(items, s)
		}
		*l = items
		return nil
	default:
		return fmt.Errorf("%w, got %v", ErrInvalidStringList, v)
	}
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}
