package cmd

import (
	"context"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/ardnew/aconst/lang"
	"github.com/ardnew/aconst/log"
	"github.com/ardnew/aconst/named"
	"github.com/ardnew/aconst/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 2

// Init generates a default configuration file with current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return ErrConfigPath
	}

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok || confPath == "" {
		return ErrConfigPath
	}

	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath), slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	m, err := i.buildManifest(ctx)
	if err != nil {
		return ErrWriteConfig.With(slog.String("file", confPath)).Wrap(err)
	}

	file, err := os.Create(confPath)
	if err != nil {
		return ErrWriteConfig.With(slog.String("file", confPath)).Wrap(err)
	}
	defer file.Close()

	err = m.FormatYAML(ctx, file, defaultConfigIndent)
	if err != nil {
		return ErrWriteConfig.With(slog.String("file", confPath)).Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// buildManifest collects the current flag values into a manifest with a
// single namespace named [ConfigIdentifier].
func (i *Init) buildManifest(ctx context.Context) (*lang.Manifest, error) {
	ktx := kongContextFrom(ctx)

	b := named.NewBuilder[any](ConfigIdentifier)

	prefixIgnore := []string{"help", "version", profile.Tag}

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(prefixIgnore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		val, ok := configValue(ktx.FlagValue(flag))
		if !ok {
			continue
		}

		if err := b.Define(flag.Name, val); err != nil {
			return nil, err
		}
	}

	return lang.NewManifest("", b.Build())
}

// configValue converts a flag value to a scalar a manifest can hold.
// Empty strings, lists and other composite values are left out.
func configValue(v any) (any, bool) {
	n, err := lang.Normalize(v)
	if err != nil {
		return nil, false
	}

	if s, ok := n.(string); ok && s == "" {
		return nil, false
	}

	return n, true
}
