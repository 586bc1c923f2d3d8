/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package packageid parses npm package identifiers and expands them into the
// prefixed names a resolver should try.
package packageid

import (
	"path/filepath"
	"strings"
)

// ModuleMarker opts an identifier out of prefixing: "module:foo" resolves "foo".
const ModuleMarker = "module:"

// ID is a package identifier split into its organization scope and the rest.
type ID struct {
	// Scope is "" or "@name/" (trailing slash included).
	Scope string

	// ID is everything after the scope, e.g. "pkg" or "pkg/deep/file".
	ID string
}

// String reassembles the identifier.
func (id ID) String() string {
	return id.Scope + id.ID
}

// Parse splits a package identifier into scope and bare id.
// Only a leading "@"-segment followed by at least one more segment is a scope.
func Parse(packageID string) ID {
	segments := strings.Split(packageID, "/")
	if len(segments) > 1 && strings.HasPrefix(segments[0], "@") {
		return ID{
			Scope: segments[0] + "/",
			ID:    strings.Join(segments[1:], "/"),
		}
	}
	return ID{ID: packageID}
}

// NormalizeOrg converts an organization to npm scope form "@org/".
// The empty string stays empty and means "no organization".
func NormalizeOrg(org string) string {
	if org == "" {
		return ""
	}
	if !strings.HasPrefix(org, "@") {
		org = "@" + org
	}
	if !strings.HasSuffix(org, "/") {
		org += "/"
	}
	return org
}

// IsPathLike reports identifiers that name a filesystem path rather than a
// package: absolute paths and anything starting with ".".
func IsPathLike(packageID string) bool {
	return filepath.IsAbs(packageID) || strings.HasPrefix(packageID, "/") || strings.HasPrefix(packageID, ".")
}

// StripModuleMarker removes a leading ModuleMarker.
func StripModuleMarker(packageID string) (string, bool) {
	return strings.CutPrefix(packageID, ModuleMarker)
}
