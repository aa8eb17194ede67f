package named

import "github.com/ardnew/aconst/log"

// Option applies a configuration option to a [Builder].
type Option func(config) config

// config holds the settings shared by a [Builder] and the [Namespace] it
// builds.
type config struct {
	module string
	order  Order
	logger log.Logger
}

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithModule returns an option that sets the module (package path) the
// namespace is declared in. Qualified display forms are prefixed with it
// unless it names a top-level context such as "main".
func WithModule(module string) Option {
	return func(c config) config {
		c.module = module

		return c
	}
}

// WithOrder returns an option that sets the iteration order of the
// namespace. The default is [OrderDeclared].
func WithOrder(order Order) Option {
	return func(c config) config {
		c.order = order

		return c
	}
}

// WithLogger returns an option that sets the logger used while building.
// The zero [log.Logger] discards all messages.
func WithLogger(logger log.Logger) Option {
	return func(c config) config {
		c.logger = logger

		return c
	}
}
