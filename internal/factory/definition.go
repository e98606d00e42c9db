package factory

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/crmdeck/internal/component"
	"github.com/vk/crmdeck/internal/manifest"
	"github.com/vk/crmdeck/internal/registry"
)

// RowProvider supplies the row source for a manifest-built table. A nil
// provider (or a nil return) leaves the table empty.
type RowProvider func(name string) component.RowSource

// DefinitionSource builds components straight from manifest definitions. It
// satisfies the resolver's Source contract and declines names it has no
// definition for, as well as catalog-backed definitions, which the catalog
// source handles.
type DefinitionSource struct {
	registry *registry.Registry
	rows     RowProvider
}

// NewDefinitionSource creates a manifest-driven component source.
func NewDefinitionSource(reg *registry.Registry, rows RowProvider) *DefinitionSource {
	return &DefinitionSource{registry: reg, rows: rows}
}

// Load builds an entry from the named manifest definition.
func (s *DefinitionSource) Load(_ context.Context, name string) (*registry.Entry, error) {
	def, ok := s.registry.Definition(name)
	if !ok {
		return nil, fmt.Errorf("no manifest definition for %q: %w", name, registry.ErrNotFound)
	}
	if def.Source != nil {
		return nil, fmt.Errorf("definition %q is catalog-backed: %w", name, registry.ErrNotFound)
	}

	var rows component.RowSource
	if s.rows != nil {
		rows = s.rows(name)
	}
	return EntryFromDefinition(def, rows)
}

// EntryFromDefinition constructs a registry entry for a manifest definition.
// Tables get their columns and behaviors from the manifest; other kinds get
// a generic fragment carrying the definition's description.
func EntryFromDefinition(def *manifest.Definition, rows component.RowSource) (*registry.Entry, error) {
	switch def.Kind {
	case "table":
		return NewDataTableRegistration(def.Name, def.Description, columnsFromDefinition(def), tableOptions(def), rows), nil
	case "card", "feed":
		return NewRegistration(def.Name, genericComponent(def), map[string]any{
			"kind":  def.Kind,
			"title": def.Description,
		}), nil
	default:
		return nil, fmt.Errorf("definition %q has unsupported kind %q", def.Name, def.Kind)
	}
}

func columnsFromDefinition(def *manifest.Definition) []component.Column {
	names := make([]string, 0, len(def.Columns))
	for name := range def.Columns {
		names = append(names, name)
	}
	sort.Strings(names)

	cols := make([]component.Column, 0, len(names))
	for _, name := range names {
		decl := def.Columns[name]
		cols = append(cols, component.Column{
			Name:       decl.Name,
			Title:      decl.Title,
			Type:       decl.Type,
			Sortable:   decl.Sortable,
			Filterable: decl.Filterable,
		})
	}
	return cols
}

func tableOptions(def *manifest.Definition) component.TableOptions {
	if def.Table == nil {
		return component.TableOptions{}
	}
	return component.TableOptions{
		PageSize:    def.Table.PageSize,
		DefaultSort: def.Table.DefaultSort,
	}
}

func genericComponent(def *manifest.Definition) component.Component {
	kind := def.Kind
	name := def.Name
	title := def.Description
	return component.Func(func(_ context.Context, props component.Props) (*component.Fragment, error) {
		return &component.Fragment{
			Kind:      kind,
			Component: name,
			Title:     title,
			Data:      map[string]any(props),
		}, nil
	})
}
