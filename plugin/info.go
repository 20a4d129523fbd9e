package plugin

import (
	"context"
	"fmt"
	"reflect"
	"strings"
)

// Factory constructs a capability instance. Factories must be safe to
// call more than once; whether the result is reused is the manager's
// decision, not the factory's.
type Factory[T any] func(ctx context.Context) (T, error)

// Info is an immutable descriptor binding an identifier to a factory
// for one implementation of a capability family. It holds no live
// instance; instantiation is deferred until a manager asks for it.
type Info[T any] struct {
	identifier string
	tags       []string
	source     string
	factory    Factory[T]
}

// InfoOption configures an Info at construction time.
type InfoOption func(*infoOptions)

type infoOptions struct {
	tags   []string
	source string
}

// WithTags adds extra lookup keys for the plugin. The identifier is
// always matched regardless of tags.
func WithTags(tags ...string) InfoOption {
	return func(o *infoOptions) { o.tags = append(o.tags, tags...) }
}

// WithSource records which registry or package contributed the plugin,
// for diagnostics. Defaults to "unknown".
func WithSource(source string) InfoOption {
	return func(o *infoOptions) { o.source = source }
}

// NewInfo creates an immutable plugin descriptor. Identifier and tag
// matching is case-insensitive; both are normalized to lower case here
// so lookups never re-fold.
func NewInfo[T any](identifier string, factory Factory[T], opts ...InfoOption) *Info[T] {
	o := infoOptions{source: "unknown"}
	for _, opt := range opts {
		opt(&o)
	}
	tags := make([]string, 0, len(o.tags))
	for _, t := range o.tags {
		tags = append(tags, strings.ToLower(t))
	}
	return &Info[T]{
		identifier: strings.ToLower(identifier),
		tags:       tags,
		source:     o.source,
		factory:    factory,
	}
}

// Identifier returns the plugin's unique name within its family.
func (i *Info[T]) Identifier() string { return i.identifier }

// Tags returns the extra lookup keys, excluding the identifier itself.
// The returned slice is a copy.
func (i *Info[T]) Tags() []string {
	return append([]string(nil), i.tags...)
}

// Source returns the registry or package that contributed the plugin.
func (i *Info[T]) Source() string { return i.source }

// Matches reports whether key selects this plugin, by identifier or by
// any tag. The key is folded to lower case before comparison.
func (i *Info[T]) Matches(key string) bool {
	key = strings.ToLower(key)
	if key == i.identifier {
		return true
	}
	for _, t := range i.tags {
		if key == t {
			return true
		}
	}
	return false
}

// Instantiate invokes the stored factory and validates the result.
// A nil factory, a factory error, or a nil instance all surface as an
// INSTANTIATION_FAILED error.
func (i *Info[T]) Instantiate(ctx context.Context) (T, error) {
	var zero T
	if i.factory == nil {
		return zero, NewError(ErrInstantiation,
			fmt.Sprintf("plugin %q has no factory", i.identifier)).WithKey(i.identifier)
	}
	inst, err := i.factory(ctx)
	if err != nil {
		return zero, NewError(ErrInstantiation,
			fmt.Sprintf("factory for plugin %q failed", i.identifier)).
			WithKey(i.identifier).WithCause(err)
	}
	if isNil(inst) {
		return zero, NewError(ErrInstantiation,
			fmt.Sprintf("factory for plugin %q returned nil", i.identifier)).WithKey(i.identifier)
	}
	return inst, nil
}

// String implements fmt.Stringer for diagnostics.
func (i *Info[T]) String() string {
	return fmt.Sprintf("plugin(%s from %s)", i.identifier, i.source)
}

// isNil detects nil interfaces and nil pointers hiding inside a
// non-nil interface value.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
