// This file contains the logic for translating HCL schema structs into the
// format-agnostic manifest model.

package hcl

import (
	"context"
	"fmt"

	"github.com/vk/crmdeck/internal/manifest"
	"github.com/vk/crmdeck/internal/schema"
)

// translateComponent converts the HCL-specific component schema into the
// agnostic manifest model.
func (l *Loader) translateComponent(ctx context.Context, s *schema.Component) (*manifest.Definition, error) {
	if s.Kind == "" {
		return nil, fmt.Errorf("component '%s': kind is required", s.Name)
	}

	def := &manifest.Definition{
		Name:        s.Name,
		Kind:        s.Kind,
		Description: s.Description,
		Columns:     make(map[string]*manifest.ColumnDefinition),
	}

	for _, col := range s.Columns {
		parsedType, err := typeExprToCtyType(ctx, col.Type)
		if err != nil {
			return nil, fmt.Errorf("component '%s', column '%s': %w", s.Name, col.Name, err)
		}
		if _, exists := def.Columns[col.Name]; exists {
			return nil, fmt.Errorf("component '%s': duplicate column '%s'", s.Name, col.Name)
		}
		def.Columns[col.Name] = &manifest.ColumnDefinition{
			Name:       col.Name,
			Title:      col.Title,
			Type:       parsedType,
			Sortable:   col.Sortable,
			Filterable: col.Filterable,
		}
	}

	if s.Table != nil {
		def.Table = &manifest.TableDefinition{
			PageSize:    s.Table.PageSize,
			DefaultSort: s.Table.DefaultSort,
		}
		if def.Table.DefaultSort != "" {
			if _, ok := def.Columns[def.Table.DefaultSort]; !ok {
				return nil, fmt.Errorf("component '%s': default_sort references unknown column '%s'", s.Name, def.Table.DefaultSort)
			}
		}
	}

	for _, v := range s.Variants {
		if len(v.Match) == 0 {
			return nil, fmt.Errorf("component '%s', variant '%s': match set must not be empty", s.Name, v.Name)
		}
		def.Variants = append(def.Variants, &manifest.VariantDefinition{
			Name:  v.Name,
			Match: v.Match,
		})
	}

	if s.Source != nil {
		if s.Source.Catalog == "" {
			return nil, fmt.Errorf("component '%s': source block requires a catalog reference", s.Name)
		}
		def.Source = &manifest.SourceDefinition{Catalog: s.Source.Catalog}
	}

	return def, nil
}
