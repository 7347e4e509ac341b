// SPDX-License-Identifier: MPL-2.0

package depchain

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/sprocketschain/sprocketschain/pkg/trail"
)

type (
	// Environment is the public facade: a search trail plus resolution
	// options. Search paths and extensions should be configured before the
	// first resolution call; after that an Environment is safe for concurrent
	// use.
	Environment struct {
		trail     *trail.Trail
		manifests []string
		logger    *slog.Logger
	}

	// Option configures an Environment.
	Option func(*Environment)
)

// DefaultExtensions are the extensions a new Environment recognizes.
var DefaultExtensions = []string{".js", ".coffee"}

// WithLogger routes resolution debug output to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Environment) {
		e.logger = logger
	}
}

// WithManifestFiles replaces the manifest file names consulted for directory
// paths. They are tried in order; the first one found wins.
func WithManifestFiles(names ...string) Option {
	return func(e *Environment) {
		e.manifests = append([]string(nil), names...)
	}
}

// NewEnvironment wraps t. If t recognizes no extensions yet, DefaultExtensions
// are registered.
func NewEnvironment(t *trail.Trail, opts ...Option) *Environment {
	if len(t.Extensions()) == 0 {
		t.AppendExtensions(DefaultExtensions...)
	}
	e := &Environment{trail: t}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Trail returns the underlying search trail.
func (e *Environment) Trail() *trail.Trail { return e.trail }

// AppendPaths adds search roots with the lowest precedence.
func (e *Environment) AppendPaths(paths ...string) { e.trail.AppendPaths(paths...) }

// PrependPaths adds search roots with the highest precedence.
func (e *Environment) PrependPaths(paths ...string) { e.trail.PrependPaths(paths...) }

// AppendExtensions adds recognized extensions with the lowest precedence.
func (e *Environment) AppendExtensions(exts ...string) { e.trail.AppendExtensions(exts...) }

// PrependExtensions adds recognized extensions with the highest precedence.
func (e *Environment) PrependExtensions(exts ...string) { e.trail.PrependExtensions(exts...) }

// ManifestFiles returns the package manifest names consulted for directory
// requires, in order.
func (e *Environment) ManifestFiles() []string {
	if len(e.manifests) == 0 {
		return []string{DefaultManifestFile}
	}
	return append([]string(nil), e.manifests...)
}

// Resolve locates a single logical path without reading its directives.
func (e *Environment) Resolve(logical string) (Resolved, error) {
	return e.resolver().resolve(logical)
}

// ResolveTree resolves entry and every dependency it declares, transitively.
// On error no tree is returned.
func (e *Environment) ResolveTree(entry string) (*Node, error) {
	r := e.resolver()
	root, err := r.newNode(entry, DirectiveRoot)
	if err != nil {
		return nil, err
	}
	if err := r.buildTree(root, nil); err != nil {
		return nil, err
	}
	return root, nil
}

// ResolveChain returns the chain of entry: the absolute paths of entry and
// its dependencies, each after everything it depends on.
func (e *Environment) ResolveChain(entry string) ([]string, error) {
	root, err := e.ResolveTree(entry)
	if err != nil {
		return nil, err
	}
	return Linearize(root), nil
}

// ResolveChains resolves several entries concurrently. The result has one
// chain per entry, in input order. The first error cancels the remaining
// entries that have not started yet and is returned alone.
func (e *Environment) ResolveChains(ctx context.Context, entries []string) ([][]string, error) {
	chains := make([][]string, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	for i, entry := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			chain, err := e.ResolveChain(entry)
			if err != nil {
				return err
			}
			chains[i] = chain
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return chains, nil
}

func (e *Environment) resolver() *resolver {
	return newResolver(e.trail, e.manifests, e.logger)
}
