package named

import (
	"log/slog"
	"reflect"
	"strings"
)

// Builder declares the constants of a [Namespace].
//
// Example:
//
//	b := named.NewBuilder[int]("Colors")
//	_ = b.Define("red", 0)
//	_ = b.Define("yellow", 1)
//	colors := b.Build()
//
// A Builder is not safe for concurrent use. Once [Builder.Build] is called
// the Builder is frozen and every further declaration fails with
// [ErrImmutableNamespace].
type Builder[T comparable] struct {
	config

	name      string
	consts    []Value[T]
	names     map[string]struct{}
	inherited map[string]struct{}
	aux       map[string]any
	built     *Namespace[T]
}

// NewBuilder creates a builder for a namespace identified by name.
func NewBuilder[T comparable](name string, opts ...Option) *Builder[T] {
	return &Builder[T]{
		config:    apply(config{}, opts...),
		name:      name,
		names:     make(map[string]struct{}),
		inherited: make(map[string]struct{}),
		aux:       make(map[string]any),
	}
}

// Define declares a constant.
//
// A name starting with an underscore, or a value that holds a function,
// declares an auxiliary entry instead (see [Builder.Attach]). Auxiliary
// entries are reachable with [Namespace.Aux] but are never constants.
//
// Values are not required to be unique. When several constants share a
// value, reverse lookup returns the one declared last. A value that is not
// equal to itself, such as a floating-point NaN, could never be found by
// value and fails with [ErrNotComparable].
func (b *Builder[T]) Define(name string, v T) error {
	if err := b.check(name); err != nil {
		return err
	}

	if isAuxiliary(name, v) {
		b.attach(name, v)

		return nil
	}

	if !isKey(v) {
		return ErrNotComparable.With(
			slog.String("namespace", b.name),
			slog.String("name", name),
			slog.String("type", typeName(v)),
			slog.Any("value", v),
		)
	}

	b.override(name)
	b.names[name] = struct{}{}
	b.consts = append(b.consts, Value[T]{name: name, value: v})

	return nil
}

// Attach declares an auxiliary entry, such as a helper function that
// belongs with the constants but is not one of them.
func (b *Builder[T]) Attach(name string, v any) error {
	if err := b.check(name); err != nil {
		return err
	}

	b.attach(name, v)

	return nil
}

// Extend inherits the auxiliary entries of base, such as shared helper
// functions and private metadata. The constants of base are not inherited.
//
// Names already declared on b keep their own declaration, and any inherited
// entry can be redeclared once afterward with [Builder.Define] or
// [Builder.Attach].
func (b *Builder[T]) Extend(base *Namespace[T]) error {
	if b.built != nil {
		return ErrImmutableNamespace.With(
			slog.String("namespace", b.built.Qualifier()),
			slog.String("base", base.Qualifier()),
			slog.String("op", "extend"),
		)
	}

	for _, name := range base.AuxNames() {
		if _, ok := b.names[name]; ok {
			continue
		}

		b.names[name] = struct{}{}
		b.inherited[name] = struct{}{}
		b.aux[name] = base.aux[name]
	}

	return nil
}

// Build freezes the builder and returns the namespace.
// Calling Build again returns the same namespace.
func (b *Builder[T]) Build() *Namespace[T] {
	if b.built != nil {
		return b.built
	}

	s := &scope{module: b.module, name: b.name}

	ns := &Namespace[T]{
		scope:   s,
		order:   b.order,
		consts:  make([]Value[T], len(b.consts)),
		byName:  make(map[string]int, len(b.consts)),
		byValue: make(map[T]int, len(b.consts)),
		aux:     b.aux,
	}

	for i, c := range b.consts {
		c.scope = s
		ns.consts[i] = c
	}

	sortValues(ns.consts, b.order)

	for i, c := range ns.consts {
		ns.byName[c.name] = i
	}

	// The reverse index is filled in declaration order so that the last
	// declared constant wins, whatever the iteration order.
	for _, c := range b.consts {
		if i, ok := ns.byValue[c.value]; ok {
			b.logger.Warn("duplicate constant value",
				slog.String("namespace", s.qualifier()),
				slog.Any("value", c.value),
				slog.String("shadowed", ns.consts[i].name),
				slog.String("name", c.name),
			)
		}

		ns.byValue[c.value] = ns.byName[c.name]
	}

	b.logger.Debug("namespace built",
		slog.String("namespace", s.qualifier()),
		slog.Int("constants", len(ns.consts)),
		slog.Int("auxiliary", len(ns.aux)),
		slog.String("order", b.order.String()),
	)

	b.built = ns
	b.consts, b.aux, b.inherited = nil, nil, nil

	return ns
}

// check validates a new declaration.
func (b *Builder[T]) check(name string) error {
	if b.built != nil {
		return ErrImmutableNamespace.With(
			slog.String("namespace", b.built.Qualifier()),
			slog.String("name", name),
			slog.String("op", "define"),
		)
	}

	if strings.TrimSpace(name) == "" {
		return ErrInvalidName.With(
			slog.String("namespace", b.name),
			slog.String("name", name),
		)
	}

	if _, ok := b.inherited[name]; ok {
		return nil
	}

	if _, ok := b.names[name]; ok {
		return ErrDuplicateName.With(
			slog.String("namespace", b.name),
			slog.String("name", name),
		)
	}

	return nil
}

func (b *Builder[T]) attach(name string, v any) {
	b.override(name)
	b.names[name] = struct{}{}
	b.aux[name] = v
}

// override drops an inherited entry that name now redeclares.
func (b *Builder[T]) override(name string) {
	if _, ok := b.inherited[name]; ok {
		delete(b.inherited, name)
		delete(b.aux, name)
	}
}

// isAuxiliary reports whether a declaration is kept out of the constants:
// private names (leading underscore) and function values.
func isAuxiliary(name string, v any) bool {
	if strings.HasPrefix(name, "_") {
		return true
	}

	return reflect.ValueOf(v).Kind() == reflect.Func
}
