package registry

import "errors"

// ErrNotFound is reported when a component name has no registration and no
// loader could supply one. Callers render a placeholder instead of failing.
var ErrNotFound = errors.New("component not registered")

// ErrValidation is reported by Validate when registrations fail the shape
// contract or disagree with their manifest definitions.
var ErrValidation = errors.New("registry validation failed")
