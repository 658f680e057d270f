package factory

import "context"

// Factory creates a T from a param P.
type Factory[T any, P any] interface {
	Create(ctx context.Context, param P) (T, error)
}
