package grid

// Option configures a Grid during construction.
//
// Example:
//
//	g, err := grid.New(3, 3, grid.WithDefault("."))
type Option[T any] func(*options[T])

type options[T any] struct {
	def     T
	factory func() T
	copier  func(T) T
	resolve Resolver
	wraps   bool
}

func defaultOptions[T any]() options[T] {
	return options[T]{resolve: Bounded}
}

// WithDefault sets the value held by cells that were never set.
func WithDefault[T any](v T) Option[T] {
	return func(o *options[T]) {
		o.def = v
		o.factory = nil
	}
}

// WithFactory fills every cell with a fresh value from f. Use it for cell
// types holding maps or pointers so cells do not share state. Clone still
// copies such cells by assignment unless WithCopy is also given.
func WithFactory[T any](f func() T) Option[T] {
	return func(o *options[T]) {
		o.factory = f
	}
}

// WithCopy makes Clone store f(v) for every cell value v.
func WithCopy[T any](f func(T) T) Option[T] {
	return func(o *options[T]) {
		o.copier = f
	}
}

// WithResolver sets the coordinate resolution strategy. The grid does not
// report Wraps for a custom resolver.
func WithResolver[T any](r Resolver) Option[T] {
	return func(o *options[T]) {
		if r != nil {
			o.resolve = r
			o.wraps = false
		}
	}
}

// WithWrap makes the grid a torus.
func WithWrap[T any]() Option[T] {
	return func(o *options[T]) {
		o.resolve = Wrapped
		o.wraps = true
	}
}
