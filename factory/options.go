package factory

import "go.uber.org/zap"

type option struct {
	Logger      *zap.Logger
	Middlewares []Middleware
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type Option func(*option)

// Logger logs every creation with Logging, outside of any Middlewares.
func Logger(logger *zap.Logger) Option {
	return func(o *option) {
		o.Logger = logger
	}
}

// Middlewares wraps creation, the first middleware outermost.
func Middlewares(mdws ...Middleware) Option {
	return func(o *option) {
		o.Middlewares = append(o.Middlewares, mdws...)
	}
}
