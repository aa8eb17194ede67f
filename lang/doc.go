// Package lang reads manifests: YAML documents that declare namespaces of
// named constants.
//
//	module: github.com/acme/figures
//	namespaces:
//	  Colors:
//	    red: 0
//	    yellow: 1
//	  MyConstants:
//	    pi: 3.141592653589793
//	    _doc: underscore entries are auxiliary
//
// Each namespace becomes a [named.Namespace] of mixed-type constants in
// declaration order. Values must be scalars; integers are held as int64 and
// floats as float64 so that values parsed from the command line with
// [ParseLiteral] compare equal to declared ones.
//
// [Manifest.Eval] evaluates expr-lang expressions over the constants and
// [Manifest.FormatYAML] and [Manifest.FormatJSON] write a manifest back out.
package lang
