package component

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// Column describes one column of a data table. Type is the declared cell
// type; the registry validator checks it against the column's manifest
// declaration.
type Column struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Type       cty.Type `json:"-"`
	Sortable   bool     `json:"sortable,omitempty"`
	Filterable bool     `json:"filterable,omitempty"`
}

// TableOptions carries the interactive behaviors a consuming view honors.
type TableOptions struct {
	PageSize    int    `json:"page_size"`
	DefaultSort string `json:"default_sort,omitempty"`
}

// Row is a single table record keyed by column name.
type Row map[string]any

// RowSource supplies the records a table renders. The CRM database behind a
// production source is outside this subsystem; builtin components ship
// in-memory sources.
type RowSource interface {
	Rows(ctx context.Context) ([]Row, error)
}

// RowsFunc adapts a plain function to the RowSource interface.
type RowsFunc func(ctx context.Context) ([]Row, error)

// Rows implements RowSource.
func (f RowsFunc) Rows(ctx context.Context) ([]Row, error) {
	return f(ctx)
}

// StaticRows returns a RowSource serving a fixed slice.
func StaticRows(rows []Row) RowSource {
	return RowsFunc(func(context.Context) ([]Row, error) {
		return rows, nil
	})
}

// Table is the data-table component specialization. Render honors the
// "sort", "order", and "page" props within the declared column behaviors.
type Table struct {
	Name    string
	Title   string
	Columns []Column
	Options TableOptions
	Source  RowSource
}

// Render implements Component.
func (t *Table) Render(ctx context.Context, props Props) (*Fragment, error) {
	if t.Source == nil {
		return nil, fmt.Errorf("table %q: no row source configured", t.Name)
	}
	rows, err := t.Source.Rows(ctx)
	if err != nil {
		return nil, fmt.Errorf("table %q: fetching rows: %w", t.Name, err)
	}
	// Sources may serve a shared backing array to concurrent renders; sorting
	// must not mutate it.
	rows = slices.Clone(rows)

	sortBy := StringProp(props, "sort", t.Options.DefaultSort)
	if col, ok := t.column(sortBy); ok && col.Sortable {
		descending := StringProp(props, "order", "asc") == "desc"
		sortRows(rows, col.Name, descending)
	}

	total := len(rows)
	pageSize := t.Options.PageSize
	if pageSize <= 0 {
		pageSize = total
	}
	page := IntProp(props, "page", 1)
	if page < 1 {
		page = 1
	}
	rows = paginate(rows, page, pageSize)

	return &Fragment{
		Kind:      "table",
		Component: t.Name,
		Title:     t.Title,
		Data: map[string]any{
			"columns": t.Columns,
			"rows":    rows,
			"total":   total,
			"page":    page,
		},
		Meta: map[string]any{
			"page_size":    pageSize,
			"default_sort": t.Options.DefaultSort,
		},
	}, nil
}

func (t *Table) column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// sortRows orders rows by the named cell. Numeric cells compare numerically,
// everything else falls back to string comparison. The sort is stable so
// repeated renders of equal cells keep their source order.
func sortRows(rows []Row, name string, descending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		less := cellLess(rows[i][name], rows[j][name])
		if descending {
			return cellLess(rows[j][name], rows[i][name])
		}
		return less
	})
}

func cellLess(a, b any) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af < bf
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func paginate(rows []Row, page, size int) []Row {
	start := (page - 1) * size
	if start >= len(rows) {
		return []Row{}
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
