package cli

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/aconst/lang"
	"github.com/ardnew/aconst/log"
)

// resolve returns a [kong.ConfigurationLoader] that reads flag values from
// the namespace called name in a manifest.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx, "config"), "/path/to/config.yaml")
//
// Each constant of the namespace is a flag value, keyed by the flag name.
// Underscores may be used in place of hyphens:
//
//	namespaces:
//	  config:
//	    log-level: debug
//	    log_format: text
//	    log-pretty: false
//	    order: value
//
// Command-line flags override config file values. A file that cannot be
// parsed is logged and otherwise ignored.
func resolve(ctx context.Context, name string) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		m, err := lang.Parse(ctx, r)
		if err != nil {
			log.WarnContext(ctx, "ignoring configuration file",
				slog.Any("error", err))

			return config{}, nil
		}

		ns, err := m.Namespace(name)
		if err != nil {
			return config{}, nil
		}

		cfg := make(config, ns.Len())
		for key, c := range ns.Items() {
			cfg[key] = flagValue(c.Value())
		}

		return cfg, nil
	}
}

// config implements [kong.Resolver] for manifest configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// flagValue converts a manifest value to the form kong decodes.
// Kong requires numbers as strings for parsing.
func flagValue(v any) any {
	switch v := v.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return v
	}
}
