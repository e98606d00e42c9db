// Package contactstable provides the contacts table for the contacts view.
package contactstable

import (
	"github.com/vk/crmdeck/internal/component"
	"github.com/vk/crmdeck/internal/factory"
	"github.com/vk/crmdeck/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Columns returns the column contract of the contacts table, kept in sync
// with manifests/contacts_table.hcl by the registry validator.
func Columns() []component.Column {
	return []component.Column{
		{Name: "name", Title: "Name", Type: cty.String, Sortable: true},
		{Name: "organization", Title: "Organization", Type: cty.String, Filterable: true},
		{Name: "role", Title: "Role", Type: cty.String, Filterable: true},
		{Name: "email", Title: "Email", Type: cty.String},
		{Name: "phone", Title: "Phone", Type: cty.String},
	}
}

func sampleRows() component.RowSource {
	return component.StaticRows([]component.Row{
		{"name": "Dana Whitfield", "organization": "Acme Catering", "role": "Purchasing", "email": "dana@acmecatering.example", "phone": "555-0141"},
		{"name": "Luis Ortega", "organization": "Midtown Deli", "role": "Owner", "email": "luis@midtowndeli.example", "phone": "555-0172"},
		{"name": "Priya Raman", "organization": "Harbor Seafood Co", "role": "Operations", "email": "priya@harborseafood.example", "phone": "555-0115"},
		{"name": "Tom Becker", "organization": "Bluebird Bakery", "role": "Head Baker", "email": "tom@bluebirdbakery.example", "phone": "555-0198"},
	})
}

// Register registers the contacts table with the application's registry.
func (m *Module) Register(r *registry.Registry) {
	entry := factory.NewDataTableRegistration(
		"contacts_table",
		"Contacts",
		Columns(),
		component.TableOptions{PageSize: 50, DefaultSort: "name"},
		sampleRows(),
	)
	if err := r.Register(entry); err != nil {
		panic(err)
	}
}
