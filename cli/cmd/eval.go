package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/aconst/lang"
	"github.com/ardnew/aconst/named"
)

// Eval evaluates an expression over the constants of the manifests.
type Eval struct {
	Expression string `arg:"" help:"Expression, e.g. 'nameOf(\"Colors\", Colors.red + 1)'"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	m, err := loadManifest(ctx)
	if err != nil {
		return err
	}

	result, err := m.Eval(ctx, e.Expression)
	if err != nil {
		return named.WrapError(err).With(slog.String("command", "eval"))
	}

	_, err = fmt.Fprintln(stdout(ctx), lang.FormatResult(result))

	return err
}
