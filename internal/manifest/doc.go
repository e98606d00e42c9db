// Package manifest defines the format-agnostic model for component
// manifests, along with the Loader interface for reading manifests from
// various sources.
//
// A manifest declares a component's public contract: its kind, the columns a
// data table exposes, the variants a resolution context can select, and an
// optional remote catalog source for implementations that are not compiled
// in. The registry validator checks Go registrations against this model at
// startup. The concrete HCL implementation lives in the hcl package.
package manifest
