package lang

import (
	"github.com/ardnew/aconst/log"
	"github.com/ardnew/aconst/named"
)

// Option configures how a manifest is built.
type Option func(*options)

type options struct {
	module    string
	hasModule bool
	order     named.Order
	logger    log.Logger
}

func applyOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithModule overrides the module declared by the manifest.
func WithModule(module string) Option {
	return func(o *options) {
		o.module = module
		o.hasModule = true
	}
}

// WithOrder sets the iteration order of every namespace in the manifest.
func WithOrder(order named.Order) Option {
	return func(o *options) { o.order = order }
}

// WithLogger sets the logger used while parsing and building namespaces.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// namedOptions converts manifest options to namespace options.
func (o options) namedOptions(module string) []named.Option {
	if o.hasModule {
		module = o.module
	}

	return []named.Option{
		named.WithModule(module),
		named.WithOrder(o.order),
		named.WithLogger(o.logger),
	}
}
