// Package registry provides the central component store for the dashboard.
//
// The Registry maps the logical component names used by views (e.g.,
// "org_table") to the registered Go implementations that render them. It
// also holds the parsed, format-agnostic component definitions from the
// manifests.
//
// During application startup, the registry is populated and then validated
// to ensure that the Go code and the public-facing manifests are in sync,
// preventing a wide class of runtime errors. Each Registry is an isolated
// instance passed to its consumers; there is no process-global state.
package registry
