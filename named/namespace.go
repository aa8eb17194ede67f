package named

import (
	"fmt"
	"iter"
	"log/slog"
	"maps"
	"reflect"
	"slices"

	"github.com/sahilm/fuzzy"
)

// Namespace is an immutable set of named constants.
//
// A Namespace is created by [Builder.Build], [New] or [MustNew] and cannot be
// changed afterward; [Namespace.Set] and [Namespace.Delete] always fail with
// [ErrImmutableNamespace]. All methods are safe for concurrent use.
type Namespace[T comparable] struct {
	scope   *scope
	order   Order
	consts  []Value[T]
	byName  map[string]int
	byValue map[T]int
	aux     map[string]any
}

// Pair is a name and value declared together.
type Pair[T comparable] struct {
	Name  string
	Value T
}

// New returns a namespace holding the given pairs, in order.
//
// Pairs are defined as if by [Builder.Define]: auxiliary entries are set aside
// and the first invalid pair aborts construction.
func New[T comparable](
	name string,
	pairs []Pair[T],
	opts ...Option,
) (*Namespace[T], error) {
	b := NewBuilder[T](name, opts...)

	for _, p := range pairs {
		if err := b.Define(p.Name, p.Value); err != nil {
			return nil, err
		}
	}

	return b.Build(), nil
}

// MustNew is like [New] but panics on error.
// It simplifies initialization of package-level variables.
func MustNew[T comparable](
	name string,
	pairs []Pair[T],
	opts ...Option,
) *Namespace[T] {
	ns, err := New(name, pairs, opts...)
	if err != nil {
		panic(err)
	}

	return ns
}

// Name returns the short identifier of the namespace.
func (ns *Namespace[T]) Name() string {
	if ns.scope == nil {
		return ""
	}

	return ns.scope.name
}

// Module returns the module the namespace was declared in, if any.
func (ns *Namespace[T]) Module() string {
	if ns.scope == nil {
		return ""
	}

	return ns.scope.module
}

// Qualifier returns the identifier used to qualify constant names.
func (ns *Namespace[T]) Qualifier() string { return ns.scope.qualifier() }

// Order returns the iteration order of the namespace.
func (ns *Namespace[T]) Order() Order { return ns.order }

// String returns the qualifier.
func (ns *Namespace[T]) String() string { return ns.Qualifier() }

// Len returns the number of constants.
func (ns *Namespace[T]) Len() int { return len(ns.consts) }

// ByName returns the constant declared as name.
func (ns *Namespace[T]) ByName(name string) (Value[T], error) {
	if i, ok := ns.byName[name]; ok {
		return ns.consts[i], nil
	}

	return Value[T]{}, ErrNotFound.
		With(
			slog.String("namespace", ns.Qualifier()),
			slog.String("name", name),
		).
		Wrap(fmt.Errorf("%s has no name %q", ns.Qualifier(), name))
}

// ByValue returns the constant with underlying value v.
// If several constants share v, the one declared last is returned.
func (ns *Namespace[T]) ByValue(v T) (Value[T], error) {
	if i, ok := ns.indexOf(v); ok {
		return ns.consts[i], nil
	}

	return Value[T]{}, ErrNotFound.
		With(
			slog.String("namespace", ns.Qualifier()),
			slog.Any("value", v),
		).
		Wrap(fmt.Errorf("%s has no value %#v", ns.Qualifier(), v))
}

// Resolve returns the canonical constant for x, which may be a raw value of
// type T, a [Value] of type T or a constant name.
//
// Value lookup is tried before name lookup, so for string namespaces a value
// shadows an equal name.
func (ns *Namespace[T]) Resolve(x any) (Value[T], error) {
	if i, ok := ns.valueIndex(x); ok {
		return ns.consts[i], nil
	}

	if s, ok := x.(string); ok {
		if i, ok := ns.byName[s]; ok {
			return ns.consts[i], nil
		}
	}

	return Value[T]{}, ErrResolution.
		With(
			slog.String("namespace", ns.Qualifier()),
			slog.String("input", fmt.Sprintf("%#v", x)),
		).
		Wrap(fmt.Errorf("%s has no key or value %#v", ns.Qualifier(), x))
}

// Contains reports whether x is the name or the value of a constant.
func (ns *Namespace[T]) Contains(x any) bool {
	if _, ok := ns.valueIndex(x); ok {
		return true
	}

	s, ok := x.(string)

	return ok && ns.HasName(s)
}

// HasName reports whether a constant is declared as name.
func (ns *Namespace[T]) HasName(name string) bool {
	_, ok := ns.byName[name]

	return ok
}

// HasValue reports whether a constant has underlying value v.
func (ns *Namespace[T]) HasValue(v T) bool {
	_, ok := ns.indexOf(v)

	return ok
}

// Aux returns the auxiliary entry declared as name. Auxiliary entries are
// never constants: they are invisible to lookup, membership and enumeration.
func (ns *Namespace[T]) Aux(name string) (any, bool) {
	v, ok := ns.aux[name]

	return v, ok
}

// AuxNames returns the names of the auxiliary entries in sorted order.
func (ns *Namespace[T]) AuxNames() []string {
	return slices.Sorted(maps.Keys(ns.aux))
}

// Names returns an iterator over the constant names in canonical order.
func (ns *Namespace[T]) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, c := range ns.consts {
			if !yield(c.name) {
				return
			}
		}
	}
}

// Values returns an iterator over the constants in canonical order.
func (ns *Namespace[T]) Values() iter.Seq[Value[T]] {
	return slices.Values(ns.consts)
}

// Items returns an iterator over name and constant pairs in canonical order.
func (ns *Namespace[T]) Items() iter.Seq2[string, Value[T]] {
	return func(yield func(string, Value[T]) bool) {
		for _, c := range ns.consts {
			if !yield(c.name, c) {
				return
			}
		}
	}
}

// NameList returns a new slice of the constant names in canonical order.
func (ns *Namespace[T]) NameList() []string {
	return slices.Collect(ns.Names())
}

// ValueList returns a new slice of the constants in canonical order.
func (ns *Namespace[T]) ValueList() []Value[T] {
	return slices.Clone(ns.consts)
}

// Suggest returns the constant names that fuzzy-match name, best match first.
func (ns *Namespace[T]) Suggest(name string) []string {
	matches := fuzzy.Find(name, ns.NameList())

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}

	return out
}

// Set always fails: a namespace cannot gain or reassign constants.
func (ns *Namespace[T]) Set(name string, _ T) error {
	return ErrImmutableNamespace.With(
		slog.String("namespace", ns.Qualifier()),
		slog.String("name", name),
		slog.String("op", "set"),
	)
}

// Delete always fails: a namespace cannot lose constants.
func (ns *Namespace[T]) Delete(name string) error {
	return ErrImmutableNamespace.With(
		slog.String("namespace", ns.Qualifier()),
		slog.String("name", name),
		slog.String("op", "delete"),
	)
}

// valueIndex returns the index of the constant whose value equals x, when x
// is a T or a Value[T].
func (ns *Namespace[T]) valueIndex(x any) (int, bool) {
	switch v := x.(type) {
	case Value[T]:
		return ns.indexOf(v.value)

	case T:
		return ns.indexOf(v)

	default:
		return 0, false
	}
}

func (ns *Namespace[T]) indexOf(v T) (int, bool) {
	if !isKey(v) {
		return 0, false
	}

	i, ok := ns.byValue[v]

	return i, ok
}

// isKey reports whether v can be stored in a map and found again: it must be
// comparable without panicking and equal to itself, which rules out NaN.
func isKey(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true
	}

	return rv.Comparable() && rv.Equal(rv)
}
