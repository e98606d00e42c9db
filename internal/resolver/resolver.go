package resolver

import (
	"context"
	"errors"

	"github.com/vk/crmdeck/internal/component"
	"github.com/vk/crmdeck/internal/ctxlog"
	"github.com/vk/crmdeck/internal/registry"
)

// Context carries the caller's situational parameters for one resolve call
// (requesting view, density flag, placement, ...). It is consumed only to
// select among variant registrations and never stored.
type Context map[string]string

// Resolution is the outcome of a successful resolve: the registry entry and
// the implementation chosen for the caller's context.
type Resolution struct {
	Entry     *registry.Entry
	Component component.Component
}

// Resolver resolves logical component names against a registry, loading
// missing components on demand through its Loader.
type Resolver struct {
	registry *registry.Registry
	loader   Loader
}

// New creates a Resolver. The loader may be nil, in which case unregistered
// names resolve to ErrNotFound immediately.
func New(reg *registry.Registry, loader Loader) *Resolver {
	return &Resolver{registry: reg, loader: loader}
}

// Resolve looks up name in the registry, falling back to the loader on a
// miss, and applies context-based variant selection to the result. Failures
// are recoverable; callers render a placeholder fragment.
func (r *Resolver) Resolve(ctx context.Context, name string, rctx Context) (*Resolution, error) {
	entry, err := r.registry.Get(name)
	if err != nil {
		if !errors.Is(err, registry.ErrNotFound) || r.loader == nil {
			return nil, err
		}
		ctxlog.FromContext(ctx).Debug("Component not registered, delegating to loader.", "name", name)
		entry, err = r.loader.Load(ctx, name)
		if err != nil {
			return nil, err
		}
	}

	return &Resolution{
		Entry:     entry,
		Component: selectVariant(entry, rctx),
	}, nil
}

// selectVariant picks the implementation for the caller's context. The
// variant matching the most context keys wins; ties go to the earliest
// registered variant; no matching variant falls back to the base component.
func selectVariant(entry *registry.Entry, rctx Context) component.Component {
	best := entry.Component
	bestScore := 0

	for _, v := range entry.Variants {
		if v.Component == nil || len(v.Match) == 0 {
			continue
		}
		if !matchesContext(v.Match, rctx) {
			continue
		}
		if len(v.Match) > bestScore {
			best = v.Component
			bestScore = len(v.Match)
		}
	}
	return best
}

// matchesContext reports whether every key/value of the match set is present
// in the resolution context.
func matchesContext(match map[string]string, rctx Context) bool {
	for key, want := range match {
		if rctx[key] != want {
			return false
		}
	}
	return true
}
