// Package component defines the render vocabulary shared by the registry,
// resolver, and factory: the Component contract every registered
// implementation must satisfy, and the Fragment tree the dashboard consumes.
package component

import (
	"context"
	"strconv"
)

// Props carries the caller-supplied render parameters for a single render
// call (sort column, page number, record id, ...). Props are never stored.
type Props map[string]any

// Component is the minimal contract a registered implementation must
// satisfy: a single render entry point producing a fragment tree.
type Component interface {
	Render(ctx context.Context, props Props) (*Fragment, error)
}

// Func adapts a plain function to the Component interface.
type Func func(ctx context.Context, props Props) (*Fragment, error)

// Render implements Component.
func (f Func) Render(ctx context.Context, props Props) (*Fragment, error) {
	return f(ctx, props)
}

// Fragment is the JSON-serializable render tree a component produces. The
// browser dashboard interprets the kind and mounts the matching widget.
type Fragment struct {
	Kind      string         `json:"kind"`
	Component string         `json:"component,omitempty"`
	Title     string         `json:"title,omitempty"`
	Data      any            `json:"data,omitempty"`
	Meta      map[string]any `json:"meta,omitempty"`
	Children  []*Fragment    `json:"children,omitempty"`
}

// Placeholder builds the fallback fragment rendered when a component cannot
// be resolved. Resolution failures are recoverable; the dashboard shows this
// instead of crashing.
func Placeholder(name, reason string) *Fragment {
	return &Fragment{
		Kind:      "placeholder",
		Component: name,
		Title:     "Component unavailable",
		Meta:      map[string]any{"reason": reason},
	}
}

// IntProp reads an integer prop, tolerating JSON-decoded float64 values and
// query-string values, and falling back to def when the prop is absent or
// not numeric.
func IntProp(props Props, key string, def int) int {
	switch v := props[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		return def
	default:
		return def
	}
}

// StringProp reads a string prop, falling back to def when absent.
func StringProp(props Props, key, def string) string {
	if v, ok := props[key].(string); ok && v != "" {
		return v
	}
	return def
}
