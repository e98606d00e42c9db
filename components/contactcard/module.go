// Package contactcard provides the contact detail card. It registers a full
// base rendering plus compact variants selected through the resolution
// context, which is how dense sidebar placements get a smaller card without
// a second component name.
package contactcard

import (
	"context"

	"github.com/vk/crmdeck/internal/component"
	"github.com/vk/crmdeck/internal/factory"
	"github.com/vk/crmdeck/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// card renders the contact identified by the "record" prop. fields controls
// which attributes the variant exposes.
func card(variant string, fields []string) component.Component {
	return component.Func(func(_ context.Context, props component.Props) (*component.Fragment, error) {
		return &component.Fragment{
			Kind:      "card",
			Component: "contact_card",
			Title:     "Contact",
			Data: map[string]any{
				"record": component.StringProp(props, "record", ""),
				"fields": fields,
			},
			Meta: map[string]any{"variant": variant},
		}, nil
	})
}

// Register registers the contact card and its variants.
func (m *Module) Register(r *registry.Registry) {
	entry := factory.NewRegistration(
		"contact_card",
		card("full", []string{"name", "organization", "role", "email", "phone", "notes"}),
		map[string]any{"kind": "card", "title": "Contact"},
	)
	entry.Variants = []registry.Variant{
		{
			Name:      "compact",
			Match:     map[string]string{"density": "compact"},
			Component: card("compact", []string{"name", "email", "phone"}),
		},
		{
			Name:      "sidebar_compact",
			Match:     map[string]string{"density": "compact", "placement": "sidebar"},
			Component: card("sidebar_compact", []string{"name", "email"}),
		},
	}
	if err := r.Register(entry); err != nil {
		panic(err)
	}
}
