package waker

// Ref is a borrowed reference to a wake-capable value owned elsewhere. It
// forwards wakes to its target but never consumes it: a Ref has no Wake
// override and no teardown, so consuming a Ref handle degrades to
// WakeByRef and releases nothing. The caller must keep the target alive for
// as long as handles to the Ref exist.
type Ref[T WakeRef] struct {
	target *T
}

func ByRef[T WakeRef](target *T) Ref[T] {
	if target == nil {
		panic("waker: ByRef on a nil target")
	}

	return Ref[T]{target: target}
}

func (r Ref[T]) WakeByRef() {
	(*r.target).WakeByRef()
}

func (r Ref[T]) Clone() Ref[T] {
	return r
}
