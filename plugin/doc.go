// Package plugin provides the generic core of the pluginflow framework:
// immutable plugin descriptors (Info), ordered composable catalogs of
// descriptors (Chain), and a resolution engine (Manager) that turns a
// registered identifier into a live capability instance.
//
// A capability family is described by a single Go interface. Plugin
// packages contribute an Info per implementation, a Chain aggregates
// the contributions from any number of packages, and a Manager owns one
// Chain per family and resolves identifiers through it:
//
//	chain registration → chain resolution → factory instantiation
//
// The core is purely in-memory: no I/O, no dynamic code loading. How
// descriptors come into existence (explicit calls, a YAML manifest,
// a package-level contribution chain) is the caller's concern; the
// Chain only sees ready-made Info values.
package plugin
