package factory

import (
	"context"
	"errors"

	"github.com/go-leo/computer-factory/computer"
	"github.com/go-leo/computer-factory/middleware"
	"go.uber.org/zap"
)

// Creator builds the computer for kind.
type Creator = middleware.Invoker[string, computer.Computer]

// Middleware wraps a Creator. It calls next to build the computer.
type Middleware = middleware.Middleware[string, computer.Computer]

// Chain composes middlewares into one, middlewares[0] outermost.
// It returns nil when there is no middleware.
func Chain(middlewares ...Middleware) Middleware {
	return middleware.Chain(middlewares...)
}

// Logging logs unknown kinds at warn level, other failures at error level
// and every creation at debug level.
func Logging(logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context, kind string, next Creator) (computer.Computer, error) {
		c, err := next(ctx, kind)
		switch {
		case errors.Is(err, ErrUnknownKind):
			logger.Warn("unknown computer kind", zap.String("kind", kind), zap.Error(err))
		case err != nil:
			logger.Error("failed to create computer", zap.String("kind", kind), zap.Error(err))
		default:
			logger.Debug("computer created", zap.String("kind", kind))
		}
		return c, err
	}
}
