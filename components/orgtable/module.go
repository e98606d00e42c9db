// Package orgtable provides the organizations overview table shown on the
// dashboard's main view.
package orgtable

import (
	"github.com/vk/crmdeck/internal/component"
	"github.com/vk/crmdeck/internal/factory"
	"github.com/vk/crmdeck/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Columns returns the column contract of the organizations table. The
// manifest in manifests/org_table.hcl declares the same set; the registry
// validator keeps them in sync.
func Columns() []component.Column {
	return []component.Column{
		{Name: "name", Title: "Organization", Type: cty.String, Sortable: true},
		{Name: "segment", Title: "Segment", Type: cty.String, Filterable: true},
		{Name: "priority", Title: "Priority", Type: cty.String, Sortable: true},
		{Name: "open_deals", Title: "Open deals", Type: cty.Number, Sortable: true},
		{Name: "last_contact", Title: "Last contact", Type: cty.String, Sortable: true},
	}
}

// sampleRows stands in for the CRM database, which is outside this
// subsystem. A production deployment wires a real RowSource here.
func sampleRows() component.RowSource {
	return component.StaticRows([]component.Row{
		{"name": "Acme Catering", "segment": "hospitality", "priority": "A", "open_deals": 7, "last_contact": "2025-08-11"},
		{"name": "Midtown Deli", "segment": "retail", "priority": "B", "open_deals": 4, "last_contact": "2025-08-02"},
		{"name": "Harbor Seafood Co", "segment": "wholesale", "priority": "A", "open_deals": 5, "last_contact": "2025-07-28"},
		{"name": "Zenith Foods", "segment": "retail", "priority": "C", "open_deals": 2, "last_contact": "2025-06-19"},
		{"name": "Bluebird Bakery", "segment": "hospitality", "priority": "B", "open_deals": 3, "last_contact": "2025-08-14"},
	})
}

// Register registers the organizations table with the application's registry.
func (m *Module) Register(r *registry.Registry) {
	entry := factory.NewDataTableRegistration(
		"org_table",
		"Organizations",
		Columns(),
		component.TableOptions{PageSize: 25, DefaultSort: "name"},
		sampleRows(),
	)
	if err := r.Register(entry); err != nil {
		panic(err)
	}
}
