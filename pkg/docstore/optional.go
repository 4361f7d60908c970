package docstore

// optional tracks presence of a value,
// so "unset" and "set to the zero value" are two different states.
type optional[T any] struct {
	value T
	set   bool
}

func newOptional[T any](value T) optional[T] {
	return optional[T]{value: value, set: true}
}

func (o optional[T]) get() (T, bool) {
	return o.value, o.set
}
