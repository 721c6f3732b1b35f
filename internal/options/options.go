// Package options implements the generic functional option pattern shared by
// executors, quantizers and column codecs.
package options

import "fmt"

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func is an Option backed by a function.
type Func[T any] struct {
	name string
	fn   func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.fn(target)
}

// New creates an option from a function that may reject the configuration.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{fn: fn}
}

// Named creates an option whose errors are prefixed with name.
func Named[T any](name string, fn func(T) error) *Func[T] {
	return &Func[T]{name: name, fn: fn}
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{fn: func(target T) error {
		fn(target)
		return nil
	}}
}

// Apply applies opts to target in order and stops at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt.apply(target); err != nil {
			if f, ok := opt.(*Func[T]); ok && f.name != "" {
				return fmt.Errorf("%s: %w", f.name, err)
			}

			return err
		}
	}

	return nil
}
