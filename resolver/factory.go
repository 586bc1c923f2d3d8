/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"context"

	"github.com/chrisblossom/resolve-with-prefix/packageid"
)

// Resolver applies a fixed naming convention. Its options are copied at
// construction and cannot change afterwards; only the base directory varies
// per call.
type Resolver struct {
	opts PrefixOptions
}

// New creates a Resolver bound to a copy of opts.
func New(opts PrefixOptions) *Resolver {
	return &Resolver{opts: opts.clone()}
}

// Resolve resolves packageID from dirname ("" means the working directory).
func (r *Resolver) Resolve(packageID, dirname string) (string, error) {
	return ResolveWithPrefix(packageID, r.options(dirname))
}

// ResolveAsync is the asynchronous form of Resolve.
func (r *Resolver) ResolveAsync(ctx context.Context, packageID, dirname string) <-chan Result {
	return ResolveWithPrefixAsync(ctx, packageID, r.options(dirname))
}

// Candidates returns the identifiers Resolve would try for packageID, in order.
// Without any prefixing configured this is just packageID.
func (r *Resolver) Candidates(packageID string) []string {
	if !r.opts.hasPrefixing() {
		return []string{packageID}
	}
	return packageid.Candidates(packageID, r.opts.candidateOptions())
}

// Options returns a copy of the bound options.
func (r *Resolver) Options() PrefixOptions {
	return r.opts.clone()
}

func (r *Resolver) options(dirname string) Options {
	return Options{PrefixOptions: r.opts, Dirname: dirname}
}
