// Package app wires the application together: it builds an isolated logger
// and registry per instance, loads and validates the component manifests,
// registers the builtin component packages, and runs the dashboard HTTP
// server that resolves and renders components for the browser.
package app
