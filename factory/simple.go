package factory

import (
	"context"
	"fmt"

	"github.com/go-leo/computer-factory/computer"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var constructors = map[computer.Kind]func() computer.Computer{
	computer.KindLaptop: func() computer.Computer {
		return computer.Laptop{}
	},
	computer.KindDesktop: func() computer.Computer {
		return computer.Desktop{}
	},
}

// NewComputer returns a new computer for kind, "laptop" or "desktop".
// ok is false for any other kind.
func NewComputer(kind string) (c computer.Computer, ok bool) {
	constructor, ok := constructors[computer.Kind(kind)]
	if !ok {
		return nil, false
	}
	return constructor(), true
}

// Kinds returns the kinds NewComputer accepts, sorted.
func Kinds() []computer.Kind {
	kinds := maps.Keys(constructors)
	slices.Sort(kinds)
	return kinds
}

var _ Factory[computer.Computer, string] = (*SimpleFactory)(nil)

// SimpleFactory is NewComputer behind the Factory interface.
type SimpleFactory struct {
	creator Creator
}

func NewSimpleFactory(opts ...Option) *SimpleFactory {
	o := newOption(opts...)
	creator := create
	if mdw := Chain(o.Middlewares...); mdw != nil {
		creator = func(ctx context.Context, kind string) (computer.Computer, error) {
			return mdw(ctx, kind, create)
		}
	}
	if o.Logger != nil {
		logging := Logging(o.Logger)
		next := creator
		creator = func(ctx context.Context, kind string) (computer.Computer, error) {
			return logging(ctx, kind, next)
		}
	}
	return &SimpleFactory{creator: creator}
}

// Create returns a new computer for kind, or an error wrapping ErrUnknownKind.
func (f *SimpleFactory) Create(ctx context.Context, kind string) (computer.Computer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.creator(ctx, kind)
}

func create(_ context.Context, kind string) (computer.Computer, error) {
	c, ok := NewComputer(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return c, nil
}
