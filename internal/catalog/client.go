// Package catalog fetches component descriptors from a remote component
// catalog service. It is the loading backend for manifest definitions that
// declare a `source` block instead of shipping a compiled-in implementation;
// how the catalog stores and serves descriptors is outside this subsystem.
package catalog

import (
	"context"
	"fmt"

	"github.com/vk/crmdeck/internal/component"
	"github.com/vk/crmdeck/internal/ctxlog"
	"github.com/vk/crmdeck/internal/factory"
	"github.com/vk/crmdeck/internal/manifest"
	"github.com/vk/crmdeck/internal/registry"
	"github.com/zclconf/go-cty/cty"
	"resty.dev/v3"
)

// Descriptor is the JSON document the catalog serves for one component.
type Descriptor struct {
	Name        string             `json:"name"`
	Kind        string             `json:"kind"`
	Title       string             `json:"title"`
	Columns     []ColumnDescriptor `json:"columns"`
	PageSize    int                `json:"page_size"`
	DefaultSort string             `json:"default_sort"`
	Rows        []map[string]any   `json:"rows"`
}

// ColumnDescriptor is the wire form of one table column.
type ColumnDescriptor struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	Sortable   bool   `json:"sortable"`
	Filterable bool   `json:"filterable"`
}

// Client loads components from a catalog service. It satisfies the
// resolver's Source contract and declines names whose manifest definition
// carries no catalog reference.
type Client struct {
	registry *registry.Registry
	http     *resty.Client
}

// NewClient creates a catalog client for the given base URL.
func NewClient(baseURL string, reg *registry.Registry) *Client {
	return &Client{
		registry: reg,
		http:     resty.New().SetBaseURL(baseURL),
	}
}

// Close releases the underlying HTTP client resources.
func (c *Client) Close() error {
	return c.http.Close()
}

// Load fetches the descriptor referenced by the component's manifest and
// instantiates it. The fetch is the single suspension point of on-demand
// loading; repeated loads for the same name yield equivalent registrations.
func (c *Client) Load(ctx context.Context, name string) (*registry.Entry, error) {
	def, ok := c.registry.Definition(name)
	if !ok || def.Source == nil {
		return nil, fmt.Errorf("no catalog reference for %q: %w", name, registry.ErrNotFound)
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Fetching component descriptor from catalog.", "name", name, "ref", def.Source.Catalog)

	var desc Descriptor
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&desc).
		Get("/components/" + def.Source.Catalog)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch for %q: %w", name, err)
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("catalog fetch for %q: unexpected status %d", name, res.StatusCode())
	}

	entry, err := c.instantiate(name, &desc)
	if err != nil {
		return nil, err
	}
	logger.Debug("Catalog descriptor instantiated.", "name", name, "kind", desc.Kind)
	return entry, nil
}

// instantiate converts a descriptor into a registry entry, going through the
// same factory path manifest-built components use.
func (c *Client) instantiate(name string, desc *Descriptor) (*registry.Entry, error) {
	def := &manifest.Definition{
		Name:        name,
		Kind:        desc.Kind,
		Description: desc.Title,
		Columns:     make(map[string]*manifest.ColumnDefinition, len(desc.Columns)),
	}
	for _, col := range desc.Columns {
		colType, err := cellType(col.Type)
		if err != nil {
			return nil, fmt.Errorf("descriptor for %q, column %q: %w", name, col.Name, err)
		}
		def.Columns[col.Name] = &manifest.ColumnDefinition{
			Name:       col.Name,
			Title:      col.Title,
			Type:       colType,
			Sortable:   col.Sortable,
			Filterable: col.Filterable,
		}
	}
	if desc.Kind == "table" {
		def.Table = &manifest.TableDefinition{
			PageSize:    desc.PageSize,
			DefaultSort: desc.DefaultSort,
		}
	}

	rows := make([]component.Row, 0, len(desc.Rows))
	for _, r := range desc.Rows {
		rows = append(rows, component.Row(r))
	}
	return factory.EntryFromDefinition(def, component.StaticRows(rows))
}

// cellType maps the catalog's type keywords to cty types.
func cellType(keyword string) (cty.Type, error) {
	switch keyword {
	case "string", "":
		return cty.String, nil
	case "number":
		return cty.Number, nil
	case "bool":
		return cty.Bool, nil
	case "any":
		return cty.DynamicPseudoType, nil
	default:
		return cty.DynamicPseudoType, fmt.Errorf("unknown cell type %q", keyword)
	}
}
