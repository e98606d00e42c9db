// Package schema defines the HCL-facing structures for component manifest
// files. These structs carry raw hcl tags and expressions; the hcl package
// translates them into the format-agnostic manifest model.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Component represents a `component` block from a manifest file.
type Component struct {
	Name        string     `hcl:"name,label"`
	Kind        string     `hcl:"kind"`
	Description string     `hcl:"description,optional"`
	Columns     []*Column  `hcl:"column,block"`
	Table       *Table     `hcl:"table,block"`
	Variants    []*Variant `hcl:"variant,block"`
	Source      *Source    `hcl:"source,block"`
}

// Column represents a `column` block declaring one data-table column. Type
// is kept as a raw expression (`string`, `number`, `list(string)`, ...) and
// parsed into a cty.Type during translation.
type Column struct {
	Name       string         `hcl:"name,label"`
	Type       hcl.Expression `hcl:"type"`
	Title      string         `hcl:"title,optional"`
	Sortable   bool           `hcl:"sortable,optional"`
	Filterable bool           `hcl:"filterable,optional"`
}

// Table represents the `table` block carrying interactive behaviors.
type Table struct {
	PageSize    int    `hcl:"page_size,optional"`
	DefaultSort string `hcl:"default_sort,optional"`
}

// Variant represents a `variant` block: a rendering variant activated when
// its match set is contained in the caller's resolution context.
type Variant struct {
	Name  string            `hcl:"name,label"`
	Match map[string]string `hcl:"match"`
}

// Source represents the `source` block pointing at a remote catalog entry.
type Source struct {
	Catalog string `hcl:"catalog"`
}

// ManifestConfig represents the top-level structure of a manifest file,
// containing all component declarations.
type ManifestConfig struct {
	Components []*Component `hcl:"component,block"`
	Body       hcl.Body     `hcl:",remain"`
}
