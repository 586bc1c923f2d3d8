/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver resolves package identifiers under naming conventions: it
// expands an identifier into prefixed candidates, resolves the first one that
// exists, and explains failures with suggestions.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	rfs "github.com/chrisblossom/resolve-with-prefix/fs"
	"github.com/chrisblossom/resolve-with-prefix/internal/logger"
	"github.com/chrisblossom/resolve-with-prefix/nodemodules"
	"github.com/chrisblossom/resolve-with-prefix/packageid"
)

// NodePathEnv lists extra search directories, separated by the platform's
// list separator (";" on Windows, ":" elsewhere).
const NodePathEnv = "NODE_PATH"

// PrefixOptions is the naming convention a resolution applies.
type PrefixOptions struct {
	// Prefix is tried for identifiers outside Org, in order.
	Prefix []string

	// Org is the organization scope ("example", "@example" or "@example/").
	Org string

	// OrgPrefix replaces Prefix for identifiers inside Org.
	OrgPrefix []string

	// Strict requires "module:" to resolve an unprefixed identifier.
	// Nil means true.
	Strict *bool

	// Paths are searched after NODE_PATH.
	Paths []string

	// Extensions are passed to the module resolver; empty means ".js".
	Extensions []string

	// FS is the filesystem to resolve against. Defaults to OS filesystem if nil.
	FS rfs.FileSystem
}

// Options is PrefixOptions plus the directory resolution starts from.
type Options struct {
	PrefixOptions

	// Dirname is the base directory. Empty means the working directory at call time.
	Dirname string
}

// Result is delivered by the asynchronous variants.
type Result struct {
	Path string
	Err  error
}

// Bool returns a pointer to v, for PrefixOptions.Strict.
func Bool(v bool) *bool {
	return &v
}

// IsStrict reports the effective strict setting.
func (o PrefixOptions) IsStrict() bool {
	return o.Strict == nil || *o.Strict
}

func (o PrefixOptions) hasPrefixing() bool {
	return len(o.Prefix) > 0 || o.Org != "" || len(o.OrgPrefix) > 0
}

func (o PrefixOptions) candidateOptions() packageid.Options {
	return packageid.Options{
		Prefix:    o.Prefix,
		Org:       o.Org,
		OrgPrefix: o.OrgPrefix,
		Strict:    o.IsStrict(),
	}
}

func (o PrefixOptions) clone() PrefixOptions {
	c := o
	c.Prefix = slices.Clone(o.Prefix)
	c.OrgPrefix = slices.Clone(o.OrgPrefix)
	c.Paths = slices.Clone(o.Paths)
	c.Extensions = slices.Clone(o.Extensions)
	if o.Strict != nil {
		c.Strict = Bool(*o.Strict)
	}
	return c
}

// ResolveWithPrefix resolves packageID to a file path.
//
// Candidates are tried in order and the first that resolves wins. When every
// candidate is missing, the returned error is the last candidate's
// *nodemodules.NotFoundError, possibly carrying suggestions. Any other
// resolution failure is returned as soon as it happens.
func ResolveWithPrefix(packageID string, opts Options) (string, error) {
	a, err := newAttempt(packageID, opts)
	if err != nil {
		return "", err
	}
	return a.run(context.Background())
}

// ResolveWithPrefixAsync is ResolveWithPrefix on its own goroutine. The working
// directory and NODE_PATH are read before it returns. Candidates are still
// tried one at a time; cancelling ctx stops before the next candidate.
// The channel yields exactly one Result and is then closed.
func ResolveWithPrefixAsync(ctx context.Context, packageID string, opts Options) <-chan Result {
	results := make(chan Result, 1)

	a, err := newAttempt(packageID, opts)
	if err != nil {
		results <- Result{Err: err}
		close(results)
		return results
	}

	go func() {
		defer close(results)
		path, err := a.run(ctx)
		results <- Result{Path: path, Err: err}
	}()

	return results
}

// attempt is one resolution with the ambient state already captured.
type attempt struct {
	packageID string
	opts      PrefixOptions
	module    nodemodules.Options
	resolver  *nodemodules.Resolver
}

func newAttempt(packageID string, opts Options) (*attempt, error) {
	dirname := opts.Dirname
	if dirname == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dirname = cwd
	}

	paths := append(nodePaths(), opts.Paths...)

	return &attempt{
		packageID: packageID,
		opts:      opts.PrefixOptions,
		module: nodemodules.Options{
			Basedir:    dirname,
			Paths:      paths,
			Extensions: opts.Extensions,
		},
		resolver: nodemodules.New(opts.FS),
	}, nil
}

// nodePaths splits NODE_PATH; an unset or empty variable yields nothing.
func nodePaths() []string {
	value, ok := os.LookupEnv(NodePathEnv)
	if !ok {
		return nil
	}
	var paths []string
	for _, p := range filepath.SplitList(value) {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func (a *attempt) resolve(id string) (string, error) {
	return a.resolver.Resolve(id, a.module)
}

func (a *attempt) run(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if !a.opts.hasPrefixing() {
		logger.Debug("resolving without prefix", "id", a.packageID, "basedir", a.module.Basedir)
		return a.resolve(a.packageID)
	}

	candidates := packageid.Candidates(a.packageID, a.opts.candidateOptions())

	var pending error
	for i, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		path, err := a.resolve(candidate)
		if err == nil {
			logger.Debug("resolved", "id", a.packageID, "candidate", candidate, "path", path)
			return path, nil
		}

		if !errors.Is(err, nodemodules.ErrNotFound) {
			logger.Debug("resolution failed", "id", a.packageID, "candidate", candidate, "error", err)
			return "", err
		}

		logger.Debug("candidate not found", "id", a.packageID, "candidate", candidate, "basedir", a.module.Basedir)

		if i == len(candidates)-1 {
			a.suggest(err)
			pending = err
		}
	}

	if pending == nil {
		return "", fmt.Errorf("%w: %s", ErrUnresolved, a.packageID)
	}
	return "", pending
}

// suggest probes for what the caller probably meant and attaches at most one
// suggestion to err. Probe failures only mean "no suggestion".
func (a *attempt) suggest(err error) {
	var notFound *nodemodules.NotFoundError
	if !errors.As(err, &notFound) {
		return
	}

	if a.opts.IsStrict() {
		if _, probeErr := a.resolve(a.packageID); probeErr == nil {
			notFound.Suggest(fmt.Sprintf("If you want to resolve %q, use %q", a.packageID, packageid.ModuleMarker+a.packageID))
			return
		}
	}

	org := packageid.NormalizeOrg(a.opts.Org)
	if org == "" || packageid.Parse(a.packageID).Scope != "" {
		return
	}

	scoped := org + a.packageID
	if _, probeErr := a.resolve(scoped); probeErr == nil {
		notFound.Suggest(fmt.Sprintf("Did you mean %q?", scoped))
	}
}
