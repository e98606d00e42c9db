// Package resolver translates a (name, resolution context) pair into a
// concrete, ready-to-render component.
//
// A resolve first consults the registry. A hit goes through variant
// selection: the registered variant whose match set is contained in the
// caller's context and matches the most keys wins, ties going to the
// earliest registered variant, and no match falling back to the base
// implementation. A miss is delegated to the resolver's Loader, which tries
// its sources in order and registers whatever it builds so the next resolve
// for the same name is served from the registry without loading again.
package resolver
