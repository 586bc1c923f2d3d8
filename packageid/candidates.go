/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package packageid

import "strings"

// Options configures candidate generation.
type Options struct {
	// Prefix is applied when the identifier's scope is not Org.
	Prefix []string

	// Org is the organization scope, in any form NormalizeOrg accepts.
	Org string

	// OrgPrefix replaces Prefix for identifiers inside Org.
	OrgPrefix []string

	// Strict leaves the unprefixed identifier out of the candidates.
	Strict bool
}

// Candidates returns the identifiers to try, in order, for packageID.
// The result is never empty.
func Candidates(packageID string, opts Options) []string {
	org := NormalizeOrg(opts.Org)
	parsed := Parse(packageID)

	prefixes := opts.Prefix
	if org != "" && org == parsed.Scope && len(opts.OrgPrefix) > 0 {
		prefixes = opts.OrgPrefix
	}

	if len(prefixes) == 0 {
		return []string{packageID}
	}

	if IsPathLike(packageID) {
		return []string{packageID}
	}

	if id, ok := StripModuleMarker(packageID); ok {
		return []string{id}
	}

	candidates := make([]string, 0, len(prefixes)+1)
	for _, prefix := range prefixes {
		// "preset" with prefix "preset" still yields "preset-preset" first.
		if strings.HasPrefix(parsed.ID, prefix) && prefix != parsed.ID {
			return []string{packageID}
		}
		candidates = append(candidates, parsed.Scope+prefix+"-"+parsed.ID)
	}

	if !opts.Strict {
		candidates = append(candidates, packageID)
	}

	return candidates
}
