package lang

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/expr-lang/expr"

	"github.com/ardnew/aconst/named"
)

// Eval compiles and runs an expression over the manifest.
//
// Every namespace is visible as a map from constant name to value, so
// Colors.green or Colors["green"] yield the raw value. Three functions map
// values back to constants:
//
//	nameOf(namespace, x)    // short name of the constant x resolves to
//	qualified(namespace, x) // qualified name of that constant
//	has(namespace, x)       // whether x is a name or value of namespace
//
// Numeric arguments are normalized the way manifest values are, so
// nameOf("Colors", 2) finds a constant declared as 2.
func (m *Manifest) Eval(ctx context.Context, source string) (any, error) {
	env := m.exprEnv()

	program, err := expr.Compile(source, append(m.exprFunctions(), expr.Env(env))...)
	if err != nil {
		return nil, ErrExprCompile.Wrap(err).
			With(slog.String("source", source))
	}

	if err := ctx.Err(); err != nil {
		return nil, ErrExprEvaluate.Wrap(err).
			With(slog.String("source", source))
	}

	result, err := expr.Run(program, env)
	if err != nil {
		return nil, ErrExprEvaluate.Wrap(err).
			With(slog.String("source", source))
	}

	return result, nil
}

// FormatResult renders a value returned by [Manifest.Eval] for display.
func FormatResult(v any) string {
	if v == nil {
		return "nil"
	}

	return fmt.Sprint(v)
}

// exprFunctionParams lists the parameter names of each expression function.
var exprFunctionParams = map[string][]string{
	"nameOf":    {"namespace", "value"},
	"qualified": {"namespace", "value"},
	"has":       {"namespace", "x"},
}

// FunctionNames returns the sorted names of the functions available to
// [Manifest.Eval] in addition to the expr builtins.
func FunctionNames() []string {
	return slices.Sorted(maps.Keys(exprFunctionParams))
}

// FunctionParams returns the parameter names of the expression function
// called name.
func FunctionParams(name string) ([]string, bool) {
	params, ok := exprFunctionParams[name]

	return slices.Clone(params), ok
}

// exprEnv returns the expression environment: one map per namespace.
func (m *Manifest) exprEnv() map[string]any {
	env := make(map[string]any, len(m.namespaces))

	for _, ns := range m.namespaces {
		values := make(map[string]any, ns.Len())
		for name, c := range ns.Items() {
			values[name] = c.Value()
		}

		env[ns.Name()] = values
	}

	return env
}

func (m *Manifest) exprFunctions() []expr.Option {
	return []expr.Option{
		expr.Function("nameOf",
			func(params ...any) (any, error) {
				c, err := m.resolveParams(params)
				if err != nil {
					return nil, err
				}

				return c.Name(), nil
			},
			new(func(string, any) string),
		),
		expr.Function("qualified",
			func(params ...any) (any, error) {
				c, err := m.resolveParams(params)
				if err != nil {
					return nil, err
				}

				return c.GoString(), nil
			},
			new(func(string, any) string),
		),
		expr.Function("has",
			func(params ...any) (any, error) {
				ns, x, err := m.functionParams(params)
				if err != nil {
					return nil, err
				}

				return ns.Contains(x), nil
			},
			new(func(string, any) bool),
		),
	}
}

func (m *Manifest) resolveParams(params []any) (c named.Value[any], err error) {
	ns, x, err := m.functionParams(params)
	if err != nil {
		return c, err
	}

	return ns.Resolve(x)
}

// functionParams unpacks the (namespace, x) arguments shared by the
// expression functions.
func (m *Manifest) functionParams(params []any) (*named.Namespace[any], any, error) {
	if len(params) != 2 {
		return nil, nil, fmt.Errorf("expected 2 arguments, got %d", len(params))
	}

	name, ok := params[0].(string)
	if !ok {
		return nil, nil, fmt.Errorf("namespace must be a string, got %T", params[0])
	}

	ns, err := m.Namespace(name)
	if err != nil {
		return nil, nil, err
	}

	x := params[1]
	if n, err := Normalize(x); err == nil {
		x = n
	}

	return ns, x, nil
}
