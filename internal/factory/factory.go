package factory

import (
	"github.com/vk/crmdeck/internal/component"
	"github.com/vk/crmdeck/internal/registry"
)

// NewRegistration constructs a registry entry. Pure construction, no side
// effects; the result is ready for Registry.Register.
func NewRegistration(name string, c component.Component, metadata map[string]any) *registry.Entry {
	return &registry.Entry{
		Name:      name,
		Component: c,
		Metadata:  metadata,
	}
}

// NewDataTableRegistration constructs a data-table entry. The supplied
// column and behavior metadata is preserved verbatim in the entry's metadata
// under the "columns" and "table" keys, where consuming views read it.
func NewDataTableRegistration(name, title string, columns []component.Column, opts component.TableOptions, source component.RowSource) *registry.Entry {
	if source == nil {
		source = component.StaticRows(nil)
	}
	return &registry.Entry{
		Name: name,
		Component: &component.Table{
			Name:    name,
			Title:   title,
			Columns: columns,
			Options: opts,
			Source:  source,
		},
		Metadata: map[string]any{
			"kind":    "table",
			"title":   title,
			"columns": columns,
			"table":   opts,
		},
	}
}
