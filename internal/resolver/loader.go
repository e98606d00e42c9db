package resolver

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/crmdeck/internal/ctxlog"
	"github.com/vk/crmdeck/internal/registry"
	"golang.org/x/sync/singleflight"
)

// ErrLoad is reported when a source found the component but failed to fetch
// or instantiate it. Like ErrNotFound it is recoverable.
var ErrLoad = errors.New("component load failed")

// Loader supplies components that are not yet in the registry.
type Loader interface {
	Load(ctx context.Context, name string) (*registry.Entry, error)
}

// Source is one backend a loader can draw from (manifest-driven
// construction, a remote catalog, ...). A source that cannot supply the name
// returns an error wrapping registry.ErrNotFound so the loader can try the
// next one.
type Source interface {
	Load(ctx context.Context, name string) (*registry.Entry, error)
}

// componentLoader tries its sources in order and registers the first entry
// it obtains. Concurrent loads for the same name are collapsed so a burst of
// requests for an unloaded component performs a single fetch.
type componentLoader struct {
	registry *registry.Registry
	sources  []Source
	group    singleflight.Group
}

// NewLoader returns a loader backed by the given sources, tried in order.
func NewLoader(reg *registry.Registry, sources ...Source) Loader {
	return &componentLoader{registry: reg, sources: sources}
}

func (l *componentLoader) Load(ctx context.Context, name string) (*registry.Entry, error) {
	v, err, _ := l.group.Do(name, func() (any, error) {
		// A collapsed caller may arrive after another finished the load.
		if entry, err := l.registry.Get(name); err == nil {
			return entry, nil
		}
		return l.loadAndRegister(ctx, name)
	})
	if err != nil {
		return nil, err
	}
	return v.(*registry.Entry), nil
}

func (l *componentLoader) loadAndRegister(ctx context.Context, name string) (*registry.Entry, error) {
	logger := ctxlog.FromContext(ctx)

	for _, src := range l.sources {
		entry, err := src.Load(ctx, name)
		if errors.Is(err, registry.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("component %q: %w: %v", name, ErrLoad, err)
		}

		if err := l.registry.Register(entry); err != nil {
			return nil, fmt.Errorf("component %q: %w: %v", name, ErrLoad, err)
		}
		logger.Debug("Component loaded and registered.", "name", name)
		return l.registry.Get(name)
	}

	return nil, fmt.Errorf("component %q: no source could supply it: %w", name, registry.ErrNotFound)
}
