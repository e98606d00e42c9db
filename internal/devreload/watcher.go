package devreload

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/vk/crmdeck/internal/component"
	"github.com/vk/crmdeck/internal/ctxlog"
	"github.com/vk/crmdeck/internal/factory"
	"github.com/vk/crmdeck/internal/manifest"
	"github.com/vk/crmdeck/internal/registry"
)

// Watcher re-applies manifest changes to a live registry. Each swapped
// component keeps its hot-reload handle so revisions stay stable across
// successive edits of the same file.
type Watcher struct {
	registry *registry.Registry
	loader   manifest.Loader
	rows     factory.RowProvider
	hub      *Hub
	handles  map[string]*factory.HotReload
}

// NewWatcher creates a watcher. The hub may be nil when no dashboard
// notification is wanted.
func NewWatcher(reg *registry.Registry, loader manifest.Loader, rows factory.RowProvider, hub *Hub) *Watcher {
	return &Watcher{
		registry: reg,
		loader:   loader,
		rows:     rows,
		hub:      hub,
		handles:  make(map[string]*factory.HotReload),
	}
}

// Run watches the given manifest paths until the context is cancelled.
func (w *Watcher) Run(ctx context.Context, paths ...string) error {
	logger := ctxlog.FromContext(ctx)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = fsw.Close() }()

	for _, path := range paths {
		if err := addRecursive(fsw, path); err != nil {
			return err
		}
	}
	logger.Info("Hot reload watcher started.", "paths", paths)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !strings.HasSuffix(event.Name, ".hcl") {
				continue
			}
			if err := w.reloadFile(ctx, event.Name); err != nil {
				// A broken edit must not kill the watcher; the next save
				// gets another chance.
				logger.Warn("Manifest reload failed.", "file", event.Name, "error", err)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error.", "error", err)
		}
	}
}

// reloadFile re-parses one manifest file and swaps every component it
// declares.
func (w *Watcher) reloadFile(ctx context.Context, path string) error {
	logger := ctxlog.FromContext(ctx)

	model, err := w.loader.Load(ctx, path)
	if err != nil {
		return err
	}
	w.registry.PopulateDefinitions(model)

	for name, def := range model.Components {
		if def.Source != nil {
			// Catalog-backed components are re-fetched lazily; dropping the
			// stale registration here would race in-flight renders, so the
			// swap below covers only locally built kinds.
			continue
		}

		entry, err := factory.EntryFromDefinition(def, rowsFor(w.rows, name))
		if err != nil {
			return err
		}

		handle, ok := w.handles[name]
		if !ok {
			if _, getErr := w.registry.Get(name); errors.Is(getErr, registry.ErrNotFound) {
				if err := w.registry.Register(entry); err != nil {
					return err
				}
			}
			handle, err = factory.NewHotReload(w.registry, name)
			if err != nil {
				return err
			}
			w.handles[name] = handle
		}

		if err := handle.Swap(entry.Component); err != nil {
			return err
		}
		logger.Info("Component hot-swapped.", "name", name, "revision", handle.Revision())

		if w.hub != nil {
			w.hub.Broadcast(Event{
				Event:     "swap",
				Component: name,
				Revision:  handle.Revision(),
			})
		}
	}
	return nil
}

func rowsFor(rows factory.RowProvider, name string) component.RowSource {
	if rows == nil {
		return nil
	}
	return rows(name)
}

// addRecursive registers path and all of its subdirectories with the
// filesystem watcher.
func addRecursive(fsw *fsnotify.Watcher, path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fsw.Add(p)
		}
		return nil
	})
}
