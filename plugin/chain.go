package plugin

import (
	"fmt"
	"iter"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Source is one contributor of plugin descriptors. A Chain is itself a
// Source, so independently packaged plugin sets can each expose a
// package-level Chain and a manager's chain links them in as sources.
type Source[T any] interface {
	// Name identifies the source for diagnostics.
	Name() string
	// Infos yields the source's descriptors in the source's own
	// precedence order, including shadowed duplicates.
	Infos() iter.Seq[*Info[T]]
}

// DuplicatePolicy controls what Register does when an identifier is
// already resolvable through the chain.
type DuplicatePolicy int

const (
	// PolicyShadow accepts duplicate registrations; resolution stays
	// deterministic because the first-registered descriptor wins.
	PolicyShadow DuplicatePolicy = iota
	// PolicyReject makes Register fail with DUPLICATE_IDENTIFIER.
	PolicyReject
)

// entry is one link of the chain: either an inline descriptor or a
// linked source, in the order the caller added them.
type entry[T any] struct {
	info *Info[T]
	src  Source[T]
}

// Chain is an ordered, composable catalog of plugin descriptors.
// Precedence is registration order: on conflicting identifiers the
// FIRST registered descriptor wins, across inline registrations and
// linked sources alike. The chain holds descriptors only, never live
// instances.
//
// A single writer lock serializes mutation; reads iterate over a
// snapshot taken under the lock, so resolution is safe for concurrent
// use once registration has settled.
type Chain[T any] struct {
	mu      sync.RWMutex
	name    string
	policy  DuplicatePolicy
	entries []entry[T]
	logger  *zap.Logger
}

// ChainOption configures a Chain.
type ChainOption func(*chainOptions)

type chainOptions struct {
	policy DuplicatePolicy
	logger *zap.Logger
}

// WithPolicy sets the duplicate-identifier policy. Default PolicyShadow.
func WithPolicy(p DuplicatePolicy) ChainOption {
	return func(o *chainOptions) { o.policy = p }
}

// WithChainLogger sets the logger used for registration diagnostics.
func WithChainLogger(logger *zap.Logger) ChainOption {
	return func(o *chainOptions) { o.logger = logger }
}

// NewChain creates an empty chain named for its capability family.
func NewChain[T any](name string, opts ...ChainOption) *Chain[T] {
	o := chainOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Chain[T]{
		name:   name,
		policy: o.policy,
		logger: o.logger.With(zap.String("chain", name)),
	}
}

// Name returns the chain's family name.
func (c *Chain[T]) Name() string { return c.name }

// Policy returns the chain's duplicate-identifier policy.
func (c *Chain[T]) Policy() DuplicatePolicy {
	return c.policy
}

// Register appends a descriptor to the chain. Under PolicyReject an
// already-resolvable identifier fails with DUPLICATE_IDENTIFIER; under
// PolicyShadow the new descriptor is kept but shadowed by the earlier
// registration.
func (c *Chain[T]) Register(info *Info[T]) error {
	if info == nil {
		return NewError(ErrInstantiation, "cannot register nil plugin info").WithFamily(c.name)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.policy == PolicyReject {
		if prior := c.lookupLocked(info.Identifier()); prior != nil {
			return NewError(ErrDuplicateIdentifier,
				fmt.Sprintf("plugin %q already registered by %s", info.Identifier(), prior.Source())).
				WithFamily(c.name).WithKey(info.Identifier())
		}
	} else if prior := c.lookupLocked(info.Identifier()); prior != nil {
		c.logger.Debug("duplicate plugin registration shadowed",
			zap.String("identifier", info.Identifier()),
			zap.String("kept", prior.Source()),
			zap.String("shadowed", info.Source()))
	}

	c.entries = append(c.entries, entry[T]{info: info})
	c.logger.Debug("plugin registered",
		zap.String("identifier", info.Identifier()),
		zap.String("source", info.Source()))
	return nil
}

// AddSource links another descriptor source at the end of the chain.
// Entries already in the chain take precedence over the new source.
func (c *Chain[T]) AddSource(src Source[T]) {
	if src == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry[T]{src: src})
	c.logger.Debug("source linked", zap.String("source", src.Name()))
}

// Resolve returns the first descriptor whose identifier or tags match
// key, scanning in precedence order. Fails with PLUGIN_NOT_FOUND when
// no descriptor matches.
func (c *Chain[T]) Resolve(key string) (*Info[T], error) {
	for info := range c.Infos() {
		if info.Matches(key) {
			return info, nil
		}
	}
	return nil, NewError(ErrPluginNotFound,
		fmt.Sprintf("no %s plugin registered for %q", c.name, key)).
		WithFamily(c.name).WithKey(strings.ToLower(key))
}

// Infos yields every descriptor in precedence order, including
// shadowed duplicates. Implements Source, so chains compose.
func (c *Chain[T]) Infos() iter.Seq[*Info[T]] {
	return func(yield func(*Info[T]) bool) {
		for _, e := range c.snapshot() {
			if e.info != nil {
				if !yield(e.info) {
					return
				}
				continue
			}
			for info := range e.src.Infos() {
				if !yield(info) {
					return
				}
			}
		}
	}
}

// All yields descriptors in precedence order with duplicates resolved:
// each identifier appears exactly once, represented by its
// first-registered descriptor. The sequence is lazy and restartable.
func (c *Chain[T]) All() iter.Seq[*Info[T]] {
	return func(yield func(*Info[T]) bool) {
		seen := make(map[string]bool)
		for info := range c.Infos() {
			if seen[info.Identifier()] {
				continue
			}
			seen[info.Identifier()] = true
			if !yield(info) {
				return
			}
		}
	}
}

// Identifiers returns all resolvable identifiers in precedence order,
// each exactly once.
func (c *Chain[T]) Identifiers() []string {
	var ids []string
	for info := range c.All() {
		ids = append(ids, info.Identifier())
	}
	return ids
}

// Len returns the number of distinct resolvable identifiers.
func (c *Chain[T]) Len() int {
	n := 0
	for range c.All() {
		n++
	}
	return n
}

// snapshot copies the entry slice under the read lock so iteration
// never races with late registration.
func (c *Chain[T]) snapshot() []entry[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]entry[T](nil), c.entries...)
}

// lookupLocked scans inline entries and linked sources for an exact
// identifier match. Callers must hold c.mu.
func (c *Chain[T]) lookupLocked(identifier string) *Info[T] {
	for _, e := range c.entries {
		if e.info != nil {
			if e.info.Identifier() == identifier {
				return e.info
			}
			continue
		}
		for info := range e.src.Infos() {
			if info.Identifier() == identifier {
				return info
			}
		}
	}
	return nil
}
