package named

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// Order selects the canonical iteration order of a [Namespace].
type Order int

const (
	// OrderDeclared iterates constants in the order they were defined.
	OrderDeclared Order = iota
	// OrderValue iterates constants grouped by the name of their underlying
	// type, then by ascending value. Constants that compare equal keep their
	// declaration order.
	OrderValue
)

func (o Order) String() string {
	switch o {
	case OrderDeclared:
		return "declared"
	case OrderValue:
		return "value"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// sortValues sorts consts in place according to order.
func sortValues[T comparable](consts []Value[T], order Order) {
	if order != OrderValue {
		return
	}

	slices.SortStableFunc(consts, func(a, b Value[T]) int {
		return compareAny(any(a.value), any(b.value))
	})
}

// compareAny orders arbitrary values by type (name, package and kind) first
// and then by value.
// Values of kinds without a natural order are compared by their default
// formatting.
func compareAny(a, b any) int {
	if c := cmp.Compare(typeName(a), typeName(b)); c != 0 {
		return c
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return 0
	}

	// Distinct types can share a name, for example when declared in
	// different packages or function scopes.
	ta, tb := va.Type(), vb.Type()
	if c := cmp.Compare(ta.PkgPath(), tb.PkgPath()); c != 0 {
		return c
	}

	if c := cmp.Compare(ta.Kind(), tb.Kind()); c != 0 {
		return c
	}

	switch va.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(va.Int(), vb.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(va.Uint(), vb.Uint())

	case reflect.Float32, reflect.Float64:
		return cmp.Compare(va.Float(), vb.Float())

	case reflect.String:
		return cmp.Compare(va.String(), vb.String())

	case reflect.Bool:
		return cmp.Compare(boolRank(va.Bool()), boolRank(vb.Bool()))

	default:
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}

	return t.String()
}

func boolRank(b bool) int {
	if b {
		return 1
	}

	return 0
}
