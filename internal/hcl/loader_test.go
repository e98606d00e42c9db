package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/crmdeck/internal/manifest"
	"github.com/zclconf/go-cty/cty"
)

func loadManifest(t *testing.T, src string) (*manifest.Model, error) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "components.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return NewLoader().Load(context.Background(), dir)
}

func TestLoad_TableComponent(t *testing.T) {
	t.Parallel()

	model, err := loadManifest(t, `
component "org_table" {
  kind        = "table"
  description = "Organizations overview."

  column "name" {
    type     = string
    title    = "Organization"
    sortable = true
  }

  column "deals" {
    type     = number
    sortable = true
  }

  column "tags" {
    type       = list(string)
    filterable = true
  }

  table {
    page_size    = 25
    default_sort = "name"
  }
}
`)
	require.NoError(t, err)
	require.Contains(t, model.Components, "org_table")

	def := model.Components["org_table"]
	assert.Equal(t, "table", def.Kind)
	assert.Equal(t, "Organizations overview.", def.Description)
	require.Len(t, def.Columns, 3)
	assert.True(t, def.Columns["name"].Type.Equals(cty.String))
	assert.True(t, def.Columns["deals"].Type.Equals(cty.Number))
	assert.True(t, def.Columns["tags"].Type.Equals(cty.List(cty.String)))
	assert.True(t, def.Columns["tags"].Filterable)
	require.NotNil(t, def.Table)
	assert.Equal(t, 25, def.Table.PageSize)
	assert.Equal(t, "name", def.Table.DefaultSort)
}

func TestLoad_VariantsAndSource(t *testing.T) {
	t.Parallel()

	model, err := loadManifest(t, `
component "contact_card" {
  kind = "card"

  variant "compact" {
    match = { density = "compact" }
  }

  variant "sidebar_compact" {
    match = { density = "compact", placement = "sidebar" }
  }

  source {
    catalog = "crm-widgets/contact_card"
  }
}
`)
	require.NoError(t, err)

	def := model.Components["contact_card"]
	require.NotNil(t, def)
	require.Len(t, def.Variants, 2)
	assert.Equal(t, "compact", def.Variants[0].Name)
	assert.Equal(t, map[string]string{"density": "compact"}, def.Variants[0].Match)
	require.NotNil(t, def.Source)
	assert.Equal(t, "crm-widgets/contact_card", def.Source.Catalog)
}

func TestLoad_MissingKind(t *testing.T) {
	t.Parallel()

	_, err := loadManifest(t, `
component "broken" {
}
`)
	require.Error(t, err)
}

func TestLoad_DefaultSortUnknownColumn(t *testing.T) {
	t.Parallel()

	_, err := loadManifest(t, `
component "bad_sort" {
  kind = "table"

  column "name" {
    type = string
  }

  table {
    default_sort = "missing"
  }
}
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_sort")
}

func TestLoad_ParseError(t *testing.T) {
	t.Parallel()

	_, err := loadManifest(t, `component "broken" {`)
	require.Error(t, err)
}

func TestLoad_EmptyVariantMatch(t *testing.T) {
	t.Parallel()

	_, err := loadManifest(t, `
component "card" {
  kind = "card"

  variant "noop" {
    match = {}
  }
}
`)
	require.Error(t, err)
}
