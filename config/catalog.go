package config

import (
	"fmt"
	"sort"
	"sync"

	"github.com/BaSui01/pluginflow/plugin"
)

// Catalog maps factory names to constructors for one capability
// family. Manifest entries reference factories by name; the catalog is
// populated in code at startup.
type Catalog[T any] struct {
	mu        sync.RWMutex
	factories map[string]plugin.Factory[T]
}

// NewCatalog creates an empty catalog.
func NewCatalog[T any]() *Catalog[T] {
	return &Catalog[T]{factories: make(map[string]plugin.Factory[T])}
}

// Register adds a named factory. Re-registering a name replaces the
// previous factory.
func (c *Catalog[T]) Register(name string, factory plugin.Factory[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.factories[name] = factory
}

// Lookup returns the factory registered under name.
func (c *Catalog[T]) Lookup(name string) (plugin.Factory[T], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.factories[name]
	return f, ok
}

// Names returns the sorted factory names.
func (c *Catalog[T]) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.factories))
	for name := range c.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered factories.
func (c *Catalog[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.factories)
}

// errUnknownFactory builds the skip/reject error for a manifest entry
// whose factory is not in the catalog.
func errUnknownFactory(entry Entry) error {
	return fmt.Errorf("manifest entry %q references unknown factory %q",
		entry.Identifier, entry.FactoryName())
}
