package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/crmdeck/internal/component"
	"github.com/vk/crmdeck/internal/ctxlog"
	"github.com/vk/crmdeck/internal/manifest"
	"github.com/zclconf/go-cty/cty"
)

// Validate performs the startup shape check over all registrations: every
// entry must carry a non-empty name and a non-nil implementation, and data
// tables must agree with their manifest definitions on column presence and
// cell types. It is a diagnostic pass, not a hot-path guard.
func (r *Registry) Validate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var errs []string
	for name, entry := range r.entries {
		if entry.Name == "" {
			errs = append(errs, fmt.Sprintf("entry under key %q has an empty name", name))
			continue
		}
		if entry.Component == nil {
			errs = append(errs, fmt.Sprintf("component '%s': registration has no implementation", name))
			continue
		}
		for _, v := range entry.Variants {
			if v.Component == nil {
				errs = append(errs, fmt.Sprintf("component '%s': variant '%s' has no implementation", name, v.Name))
			}
			if len(v.Match) == 0 {
				errs = append(errs, fmt.Sprintf("component '%s': variant '%s' has an empty match set", name, v.Name))
			}
		}

		def, ok := r.definitions[name]
		if !ok {
			logger.Debug("Component registered without a manifest definition.", "name", name)
			continue
		}

		if table, isTable := entry.Component.(*component.Table); isTable {
			errs = append(errs, validateTableParity(name, table, def.Columns)...)
		} else if def.Kind == "table" {
			errs = append(errs, fmt.Sprintf("component '%s': manifest declares kind 'table' but registration is not a data table", name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n- %s", ErrValidation, strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validation passed.", "components", len(r.entries))
	return nil
}

// validateTableParity performs a strict parity check between a manifest's
// column declarations and the columns the Go registration carries. It checks
// both the presence of columns and the compatibility of their types.
func validateTableParity(name string, table *component.Table, declared map[string]*manifest.ColumnDefinition) []string {
	var errs []string

	registered := make(map[string]component.Column, len(table.Columns))
	for _, col := range table.Columns {
		registered[col.Name] = col
	}

	for colName := range registered {
		if _, ok := declared[colName]; !ok {
			errs = append(errs, fmt.Sprintf("component '%s': registration has column '%s' which is not declared in manifest", name, colName))
		}
	}
	for colName := range declared {
		if _, ok := registered[colName]; !ok {
			errs = append(errs, fmt.Sprintf("component '%s': manifest declares column '%s' which is not found in registration", name, colName))
		}
	}

	for colName, decl := range declared {
		col, ok := registered[colName]
		if !ok {
			continue // already reported by the presence check
		}
		if decl.Type.Equals(cty.DynamicPseudoType) {
			continue // 'type = any' disables static checking for this column
		}
		if !decl.Type.Equals(col.Type) {
			errs = append(errs, fmt.Sprintf("component '%s', column '%s': type mismatch. Manifest requires '%s' but registration provides '%s'",
				name, colName, decl.Type.FriendlyName(), col.Type.FriendlyName()))
		}
		if decl.Sortable != col.Sortable {
			errs = append(errs, fmt.Sprintf("component '%s', column '%s': sortable mismatch between manifest and registration", name, colName))
		}
		if decl.Filterable != col.Filterable {
			errs = append(errs, fmt.Sprintf("component '%s', column '%s': filterable mismatch between manifest and registration", name, colName))
		}
	}

	return errs
}
