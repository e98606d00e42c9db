// Package factory builds registry entries: plain registrations, data-table
// specializations carrying column and behavior metadata, entries constructed
// from manifest definitions, and hot-reload handles that swap a
// registration's implementation in place during development.
package factory
