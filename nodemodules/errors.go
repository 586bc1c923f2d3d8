/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package nodemodules

import (
	"errors"
	"fmt"
	"strings"
)

// CodeModuleNotFound is the machine-checkable code carried by NotFoundError.
const CodeModuleNotFound = "MODULE_NOT_FOUND"

// ErrNotFound matches every *NotFoundError via errors.Is.
var ErrNotFound = errors.New("module not found")

// NotFoundError reports that no file matched an identifier. Suggestions are
// rendered as extra "- " lines after the main message.
type NotFoundError struct {
	ID          string
	Basedir     string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	var msg strings.Builder
	fmt.Fprintf(&msg, "cannot find module '%s' from '%s'", e.ID, e.Basedir)
	for _, s := range e.Suggestions {
		msg.WriteString("\n- ")
		msg.WriteString(s)
	}
	return msg.String()
}

// Code returns CodeModuleNotFound.
func (e *NotFoundError) Code() string {
	return CodeModuleNotFound
}

// Is lets errors.Is(err, ErrNotFound) classify not-found failures.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Suggest appends a suggestion line.
func (e *NotFoundError) Suggest(suggestion string) {
	e.Suggestions = append(e.Suggestions, suggestion)
}

// ManifestError reports a package.json that exists but cannot be used.
// It is never a not-found failure.
type ManifestError struct {
	Path string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("invalid package manifest %s: %v", e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}
