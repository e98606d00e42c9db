package registry

import (
	"fmt"
	"iter"
	"log/slog"
	"sort"
	"sync"

	"github.com/vk/crmdeck/internal/component"
	"github.com/vk/crmdeck/internal/manifest"
)

// Module is the interface that builtin component packages implement to be
// registered with an application instance.
type Module interface {
	Register(r *Registry)
}

// Variant is a context-selected rendering alternative of a registration.
// Match is the set of resolution-context key/values that activates it.
type Variant struct {
	Name      string
	Match     map[string]string
	Component component.Component
}

// Entry is the stored record for one logical component: its unique name,
// the implementation, optional descriptive metadata, and any variants.
type Entry struct {
	Name      string
	Component component.Component
	Metadata  map[string]any
	Variants  []Variant
}

// Registry holds all component registrations and manifest definitions for a
// single application instance. The dashboard server resolves components from
// concurrent request handlers, so all access goes through the mutex.
type Registry struct {
	mu          sync.RWMutex
	entries     map[string]*Entry
	definitions map[string]*manifest.Definition
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		entries:     make(map[string]*Entry),
		definitions: make(map[string]*manifest.Definition),
	}
}

// Register inserts the entry under its name. Re-registering an existing name
// overwrites the previous entry. Only presence is validated here; shape
// checks against the manifests happen in Validate.
func (r *Registry) Register(e *Entry) error {
	if e == nil || e.Name == "" {
		return fmt.Errorf("registration requires a non-empty name")
	}
	if e.Component == nil {
		return fmt.Errorf("registration %q requires an implementation", e.Name)
	}

	stored := *e
	r.mu.Lock()
	if _, exists := r.entries[e.Name]; exists {
		slog.Debug("Overwriting existing component registration.", "name", e.Name)
	}
	r.entries[e.Name] = &stored
	r.mu.Unlock()
	return nil
}

// Get returns the entry registered under name, or an error wrapping
// ErrNotFound when absent.
func (r *Registry) Get(name string) (*Entry, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("component %q: %w", name, ErrNotFound)
	}
	return e, nil
}

// Swap atomically replaces the stored implementation for name while
// preserving the registration's metadata and variants. This is the hot
// reload backend; it fails with ErrNotFound for unknown names.
func (r *Registry) Swap(name string, c component.Component) error {
	if c == nil {
		return fmt.Errorf("swap for %q requires an implementation", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.entries[name]
	if !ok {
		return fmt.Errorf("component %q: %w", name, ErrNotFound)
	}
	replaced := *old
	replaced.Component = c
	r.entries[name] = &replaced
	return nil
}

// Names returns a restartable sequence of all registered names. The sequence
// iterates a sorted snapshot taken when Names is called; registrations made
// afterwards are not reflected.
func (r *Registry) Names() iter.Seq[string] {
	r.mu.RLock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)

	return func(yield func(string) bool) {
		for _, name := range names {
			if !yield(name) {
				return
			}
		}
	}
}

// Len returns the number of registered components.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// PopulateDefinitions copies the loaded component definitions from the
// manifest model into the registry for use by the validator and loaders.
func (r *Registry) PopulateDefinitions(model *manifest.Model) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, def := range model.Components {
		r.definitions[name] = def
	}
}

// Definition returns the manifest definition for name, if one was loaded.
func (r *Registry) Definition(name string) (*manifest.Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[name]
	return def, ok
}

// DefinitionNames returns the names of all loaded manifest definitions,
// sorted for deterministic iteration.
func (r *Registry) DefinitionNames() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.definitions))
	for name := range r.definitions {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}
