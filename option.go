package waker

// Option is an optional wake-capable value. An empty Option no-ops on every
// operation: waking does nothing, cloning yields another empty Option, and
// there is nothing to tear down.
//
// Option is two words, so it always takes the boxed arm of the codec.
type Option[T Wakeable[T]] struct {
	value T
	some  bool
}

func Some[T Wakeable[T]](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

func None[T Wakeable[T]]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) OrValue(fallback T) T {
	if o.some {
		return o.value
	}

	return fallback
}

func (o Option[T]) WakeByRef() {
	if o.some {
		o.value.WakeByRef()
	}
}

func (o Option[T]) Wake() {
	if o.some {
		wakeValue(o.value)
	}
}

func (o Option[T]) Clone() Option[T] {
	if !o.some {
		return o
	}

	return Some(o.value.Clone())
}

func (o Option[T]) Drop() {
	if o.some {
		dropValue(o.value)
	}
}
