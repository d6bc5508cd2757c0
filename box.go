package waker

// Box is an exclusive-owner wrapper: the boxed value has a single owner, so
// a consuming wake may take it. Box itself is pointer-shaped and packs
// inline into a Waker.
type Box[T Wakeable[T]] struct {
	inner *T
}

func NewBox[T Wakeable[T]](value T) Box[T] {
	return Box[T]{inner: &value}
}

// Inner returns a pointer to the boxed value.
func (b Box[T]) Inner() *T {
	return b.inner
}

func (b Box[T]) WakeByRef() {
	(*b.inner).WakeByRef()
}

// Wake consumes the box and performs the inner value's own consuming wake.
// The inner teardown stays in Drop, which the dispatch layer runs after.
func (b Box[T]) Wake() {
	wakeValue(*b.inner)
}

func (b Box[T]) Clone() Box[T] {
	return NewBox((*b.inner).Clone())
}

func (b Box[T]) Drop() {
	dropValue(*b.inner)
}
