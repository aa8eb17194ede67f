package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ardnew/aconst/lang"
	"github.com/ardnew/aconst/named"
)

// Lookup prints the value of a constant given by name.
type Lookup struct {
	Namespace string `arg:"" help:"Namespace of the constant"`
	Name      string `arg:"" help:"Constant name"`
}

// Run executes the lookup command.
func (l *Lookup) Run(ctx context.Context) error {
	m, err := loadManifest(ctx)
	if err != nil {
		return err
	}

	ns, err := m.Namespace(l.Namespace)
	if err != nil {
		return suggest(ctx, err, m.Suggest(l.Namespace))
	}

	c, err := ns.ByName(l.Name)
	if err != nil {
		return suggest(ctx, err, ns.Suggest(l.Name))
	}

	_, err = fmt.Fprintln(stdout(ctx), formatValue(c.Value()))

	return err
}

// Resolve prints the constant a raw value or a name resolves to.
type Resolve struct {
	Namespace string `arg:"" help:"Namespace to search"`
	Input     string `arg:"" help:"Value (2, 2.5, true, \"text\") or constant name"`
}

// Run executes the resolve command.
func (r *Resolve) Run(ctx context.Context) error {
	m, err := loadManifest(ctx)
	if err != nil {
		return err
	}

	ns, err := m.Namespace(r.Namespace)
	if err != nil {
		return suggest(ctx, err, m.Suggest(r.Namespace))
	}

	c, err := ns.Resolve(lang.ParseLiteral(r.Input))
	if err != nil {
		if errors.Is(err, named.ErrResolution) {
			return suggest(ctx, ErrUnknownName.Wrap(err).
				With(slog.String("input", r.Input)), ns.Suggest(r.Input))
		}

		return err
	}

	_, err = fmt.Fprintf(stdout(ctx), "%+v %s\n", c, formatValue(c.Value()))

	return err
}
