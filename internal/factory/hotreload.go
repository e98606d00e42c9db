package factory

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/vk/crmdeck/internal/component"
	"github.com/vk/crmdeck/internal/registry"
)

// HotReload is a development-time handle for replacing a registration's
// implementation in place. The registration's name, metadata, and variants
// survive every swap; only the implementation changes.
type HotReload struct {
	registry *registry.Registry
	name     string

	mu       sync.Mutex
	revision string
}

// NewHotReload returns a handle for the named registration. The name must
// already be registered.
func NewHotReload(reg *registry.Registry, name string) (*HotReload, error) {
	if _, err := reg.Get(name); err != nil {
		return nil, fmt.Errorf("hot reload handle: %w", err)
	}
	return &HotReload{
		registry: reg,
		name:     name,
		revision: uuid.NewString(),
	}, nil
}

// Swap atomically replaces the stored implementation and stamps a fresh
// revision id that reload subscribers use to invalidate their copy.
func (h *HotReload) Swap(c component.Component) error {
	if err := h.registry.Swap(h.name, c); err != nil {
		return err
	}
	h.mu.Lock()
	h.revision = uuid.NewString()
	h.mu.Unlock()
	return nil
}

// Name returns the registration name the handle is bound to.
func (h *HotReload) Name() string {
	return h.name
}

// Revision returns the id stamped by the most recent swap.
func (h *HotReload) Revision() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.revision
}
