// Package activityfeed provides the recent-activity feed widget.
package activityfeed

import (
	"context"

	"github.com/vk/crmdeck/internal/component"
	"github.com/vk/crmdeck/internal/factory"
	"github.com/vk/crmdeck/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

type activity struct {
	When    string `json:"when"`
	Kind    string `json:"kind"`
	Summary string `json:"summary"`
}

func sampleActivities() []activity {
	return []activity{
		{When: "2025-08-14T09:12:00Z", Kind: "call", Summary: "Follow-up call with Bluebird Bakery"},
		{When: "2025-08-13T16:40:00Z", Kind: "email", Summary: "Sent quote to Acme Catering"},
		{When: "2025-08-11T11:05:00Z", Kind: "meeting", Summary: "On-site visit at Harbor Seafood Co"},
		{When: "2025-08-08T14:30:00Z", Kind: "note", Summary: "Midtown Deli considering a second location"},
		{When: "2025-08-02T10:00:00Z", Kind: "call", Summary: "Intro call with Zenith Foods"},
	}
}

// feed renders the most recent activities, honoring the "limit" prop.
func feed() component.Component {
	return component.Func(func(_ context.Context, props component.Props) (*component.Fragment, error) {
		items := sampleActivities()
		limit := component.IntProp(props, "limit", len(items))
		if limit < 0 {
			limit = 0
		}
		if limit < len(items) {
			items = items[:limit]
		}
		return &component.Fragment{
			Kind:      "feed",
			Component: "activity_feed",
			Title:     "Recent activity",
			Data:      items,
		}, nil
	})
}

// Register registers the activity feed with the application's registry.
func (m *Module) Register(r *registry.Registry) {
	entry := factory.NewRegistration("activity_feed", feed(), map[string]any{
		"kind":  "feed",
		"title": "Recent activity",
	})
	if err := r.Register(entry); err != nil {
		panic(err)
	}
}
