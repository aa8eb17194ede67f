package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/aconst/named"
)

// Fmt reformats the manifests as a single YAML or JSON document.
type Fmt struct {
	Format string `default:"yaml" enum:"yaml,json" help:"Output format (${enum})" short:"f"`
	Indent int    `default:"2"                     help:"Indent width; 0 selects compact output" short:"i"`
}

// Run executes the fmt command.
func (f *Fmt) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	m, err := loadManifest(ctx)
	if err != nil {
		return err
	}

	w := stdout(ctx)

	switch f.Format {
	case "json":
		err = m.FormatJSON(ctx, w, f.Indent)
	default:
		err = m.FormatYAML(ctx, w, f.Indent)
	}

	if err != nil {
		return named.WrapError(err).With(slog.String("format", f.Format))
	}

	return nil
}
