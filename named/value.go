package named

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

// Value is a constant: an immutable value of type T tagged with the name it
// was declared under.
//
// A Value built by a [Namespace] also remembers which namespace declared it,
// but only to qualify its diagnostic display form (see [Value.GoString]).
// Equality is defined by the underlying value alone: use [Value.Equal],
// [Value.Is] or [Value.Key] rather than ==, which also compares names.
type Value[T comparable] struct {
	name  string
	value T
	scope *scope
}

// scope identifies the namespace that declared a constant.
// It never refers back to the [Namespace] itself.
type scope struct {
	module string
	name   string
}

// qualifier returns the namespace identifier used to qualify constant names.
func (s *scope) qualifier() string {
	if s == nil {
		return ""
	}

	return qualify(s.module, s.name)
}

// topLevel lists module identifiers that denote a program entry point rather
// than a reusable package. Namespaces declared there display unqualified.
var topLevel = map[string]struct{}{
	"":            {},
	"main":        {},
	"__main__":    {},
	"builtin":     {},
	"__builtin__": {},
}

func qualify(module, name string) string {
	if _, ok := topLevel[module]; ok {
		return name
	}

	return module + "." + name
}

// NewValue returns a constant that belongs to no namespace.
// Both of its display forms are the bare name.
//
// When T is an interface type, value must hold a comparable dynamic value:
// comparing constants that hold a slice, map or func panics.
func NewValue[T comparable](name string, value T) Value[T] {
	return Value[T]{name: name, value: value}
}

// Name returns the symbolic name the constant was declared under.
func (c Value[T]) Name() string { return c.name }

// Value returns the underlying value.
func (c Value[T]) Value() T { return c.value }

// Key returns the underlying value for use as a map key.
// Two constants with equal values have equal keys.
func (c Value[T]) Key() T { return c.value }

// Equal reports whether c and o have the same underlying value.
// Names are not compared.
func (c Value[T]) Equal(o Value[T]) bool { return c.value == o.value }

// Is reports whether the underlying value of c equals v.
func (c Value[T]) Is(v T) bool { return c.value == v }

// IsZero reports whether c is the zero Value, as returned with an error by
// the lookup methods.
func (c Value[T]) IsZero() bool {
	var zero T

	return c.name == "" && c.scope == nil && c.value == zero
}

// Qualifier returns the identifier of the declaring namespace, or the empty
// string if c was not declared by a namespace.
func (c Value[T]) Qualifier() string { return c.scope.qualifier() }

// String returns the short display form: the bare name.
func (c Value[T]) String() string { return c.name }

// GoString returns the qualified display form "<namespace>.<name>" used for
// diagnostics. A constant without a namespace renders as its bare name.
func (c Value[T]) GoString() string {
	q := c.scope.qualifier()
	if q == "" {
		return c.name
	}

	return q + "." + c.name
}

// Format implements [fmt.Formatter].
//
// The verbs %s, %v and %q format the short display form, while %+v and %#v
// format the qualified form. All other verbs format the underlying value, so
// for example %d prints the integer behind an integer constant.
func (c Value[T]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') || f.Flag('+') {
			_, _ = io.WriteString(f, c.GoString())

			return
		}

		_, _ = fmt.Fprintf(f, fmt.FormatString(f, 's'), c.name)

	case 's', 'q':
		_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), c.name)

	default:
		_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), c.value)
	}
}

// LogValue implements [slog.LogValuer] with the qualified display form.
func (c Value[T]) LogValue() slog.Value {
	return slog.StringValue(c.GoString())
}

// MarshalJSON encodes the underlying value.
func (c Value[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.value)
}

// MarshalYAML encodes the underlying value.
func (c Value[T]) MarshalYAML() (any, error) {
	return c.value, nil
}
