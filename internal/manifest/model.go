package manifest

import (
	"context"

	"github.com/zclconf/go-cty/cty"
)

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads manifests from the given paths and translates them into
	// the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// Model is the unified representation of all loaded component manifests.
type Model struct {
	Components map[string]*Definition
}

// Definition is the format-agnostic representation of one component manifest.
type Definition struct {
	Name        string
	Kind        string
	Description string
	Columns     map[string]*ColumnDefinition
	Table       *TableDefinition
	Variants    []*VariantDefinition
	Source      *SourceDefinition
}

// ColumnDefinition declares one data-table column and its cell type.
type ColumnDefinition struct {
	Name       string
	Title      string
	Type       cty.Type
	Sortable   bool
	Filterable bool
}

// TableDefinition declares the interactive behaviors of a data table.
type TableDefinition struct {
	PageSize    int
	DefaultSort string
}

// VariantDefinition declares a context-selected rendering variant. Match is
// the set of resolution-context key/values that activates the variant.
type VariantDefinition struct {
	Name  string
	Match map[string]string
}

// SourceDefinition points at a remote catalog entry supplying the component
// implementation when it is not compiled into the binary.
type SourceDefinition struct {
	Catalog string
}
