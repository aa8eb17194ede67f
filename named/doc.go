// Package named provides namespaces of named constants.
//
// A [Namespace] groups constants of any comparable type under symbolic
// names. Each constant is a [Value] that prints as its name rather than its
// raw value, while still exposing and comparing by that value:
//
//	var Colors = named.MustNew("Colors", []named.Pair[int]{
//		{"red", 0}, {"yellow", 1}, {"green", 2}, {"blue", 3}, {"white", 4},
//	})
//
//	green, _ := Colors.ByName("green")
//	fmt.Println(green)           // green
//	fmt.Printf("%#v\n", green)   // Colors.green
//	fmt.Println(green.Value())   // 2
//	fmt.Println(green.Is(2))     // true
//
// # Lookup
//
// Constants are found by name ([Namespace.ByName]), by value
// ([Namespace.ByValue]) or by either ([Namespace.Resolve]), which accepts a
// raw value parsed from external data as readily as a symbolic name and
// always returns the canonical constant. [Namespace.Contains] reports
// membership of a name or a value.
//
// # Enumeration
//
// [Namespace.Names], [Namespace.Values] and [Namespace.Items] return
// iterators that can be restarted at will and always yield the same order:
// declaration order by default, or (type, value) order with
// [WithOrder]([OrderValue]).
//
// # Display
//
// The short form (%s, %v, [Value.String]) is the bare name. The qualified
// form (%#v, %+v, [Value.GoString]) prefixes the namespace qualifier, which
// includes the module set with [WithModule] unless that module is a
// top-level context such as "main".
//
// # Immutability
//
// Namespaces cannot change once built. [Namespace.Set], [Namespace.Delete]
// and declarations on a built [Builder] fail with [ErrImmutableNamespace].
// Built namespaces are therefore safe for concurrent readers.
//
// # Auxiliary entries
//
// Names beginning with an underscore and function values are kept beside
// the constants as auxiliary entries ([Namespace.Aux]). They never take part
// in lookup, membership or enumeration.
package named
