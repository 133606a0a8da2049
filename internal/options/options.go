// Package options implements the functional option pattern shared by the
// encoding and frame configuration types.
package options

// Option configures a target of type T, usually a pointer to a config struct.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to Option.
type Func[T any] struct {
	applyFunc func(T) error
}

// apply treats a nil *Func, or one without a function, as a no-op.
func (f *Func[T]) apply(target T) error {
	if f == nil || f.applyFunc == nil {
		return nil
	}

	return f.applyFunc(target)
}

// New wraps fn as an option that may reject its argument.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError wraps fn as an option that always succeeds.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first error.
// Nil options are skipped, including a typed nil *Func.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// Build applies opts to target and then runs validate on the result.
// A nil validate skips validation.
func Build[T any](target T, validate func(T) error, opts ...Option[T]) (T, error) {
	if err := Apply(target, opts...); err != nil {
		var zero T
		return zero, err
	}

	if validate != nil {
		if err := validate(target); err != nil {
			var zero T
			return zero, err
		}
	}

	return target, nil
}
