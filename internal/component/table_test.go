package component

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func testTable() *Table {
	return &Table{
		Name:  "org_table",
		Title: "Organizations",
		Columns: []Column{
			{Name: "name", Title: "Organization", Type: cty.String, Sortable: true},
			{Name: "deals", Title: "Open deals", Type: cty.Number, Sortable: true},
			{Name: "segment", Title: "Segment", Type: cty.String},
		},
		Options: TableOptions{PageSize: 2, DefaultSort: "name"},
		Source: StaticRows([]Row{
			{"name": "Zenith Foods", "deals": 2, "segment": "retail"},
			{"name": "Acme Catering", "deals": 7, "segment": "hospitality"},
			{"name": "Midtown Deli", "deals": 4, "segment": "retail"},
		}),
	}
}

func renderedRows(t *testing.T, frag *Fragment) []Row {
	t.Helper()
	data, ok := frag.Data.(map[string]any)
	require.True(t, ok)
	rows, ok := data["rows"].([]Row)
	require.True(t, ok)
	return rows
}

func TestTableRender_DefaultSortAndPaging(t *testing.T) {
	t.Parallel()

	frag, err := testTable().Render(context.Background(), Props{})
	require.NoError(t, err)
	assert.Equal(t, "table", frag.Kind)
	assert.Equal(t, "org_table", frag.Component)

	rows := renderedRows(t, frag)
	require.Len(t, rows, 2)
	assert.Equal(t, "Acme Catering", rows[0]["name"])
	assert.Equal(t, "Midtown Deli", rows[1]["name"])
}

func TestTableRender_SecondPage(t *testing.T) {
	t.Parallel()

	frag, err := testTable().Render(context.Background(), Props{"page": 2})
	require.NoError(t, err)

	rows := renderedRows(t, frag)
	require.Len(t, rows, 1)
	assert.Equal(t, "Zenith Foods", rows[0]["name"])
}

func TestTableRender_NumericSortDescending(t *testing.T) {
	t.Parallel()

	frag, err := testTable().Render(context.Background(), Props{"sort": "deals", "order": "desc"})
	require.NoError(t, err)

	rows := renderedRows(t, frag)
	require.Len(t, rows, 2)
	assert.Equal(t, 7, rows[0]["deals"])
	assert.Equal(t, 4, rows[1]["deals"])
}

func TestTableRender_UnsortableColumnIgnored(t *testing.T) {
	t.Parallel()

	// "segment" is not sortable, so source order is kept.
	frag, err := testTable().Render(context.Background(), Props{"sort": "segment"})
	require.NoError(t, err)

	rows := renderedRows(t, frag)
	assert.Equal(t, "Zenith Foods", rows[0]["name"])
}

func TestTableRender_DoesNotMutateSourceRows(t *testing.T) {
	t.Parallel()

	tbl := testTable()
	_, err := tbl.Render(context.Background(), Props{"sort": "deals", "order": "desc"})
	require.NoError(t, err)

	// The source still serves its original order after a sorted render.
	rows, err := tbl.Source.Rows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Zenith Foods", rows[0]["name"])
}

func TestTableRender_ConcurrentSorts(t *testing.T) {
	t.Parallel()

	// One table, many renders with conflicting sort props. StaticRows serves
	// the same backing array to every render, so each render must sort its
	// own copy.
	tbl := testTable()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		sortBy := "name"
		if i%2 == 0 {
			sortBy = "deals"
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := tbl.Render(context.Background(), Props{"sort": sortBy, "order": "desc"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

func TestTableRender_NilSource(t *testing.T) {
	t.Parallel()

	tbl := testTable()
	tbl.Source = nil

	_, err := tbl.Render(context.Background(), Props{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no row source")
}

func TestTableRender_SourceError(t *testing.T) {
	t.Parallel()

	tbl := testTable()
	tbl.Source = RowsFunc(func(context.Context) ([]Row, error) {
		return nil, fmt.Errorf("backend unavailable")
	})

	_, err := tbl.Render(context.Background(), Props{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "org_table")
}

func TestPlaceholder(t *testing.T) {
	t.Parallel()

	frag := Placeholder("org_table", "not registered")
	assert.Equal(t, "placeholder", frag.Kind)
	assert.Equal(t, "org_table", frag.Component)
	assert.Equal(t, "not registered", frag.Meta["reason"])
}
