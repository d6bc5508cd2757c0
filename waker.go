package waker

import (
	"fmt"
	"unsafe"
)

// Waker is a type-erased wake handle: the packed representation of a
// wake-capable value plus the dispatch table of its concrete type. A
// scheduler can clone, wake and drop a Waker without ever learning what it
// wraps.
//
// A Waker owns its slot until Wake or Drop consumes it; afterwards any use
// of the handle panics. Use Clone to share a Waker instead of copying the
// struct, go vet flags copies.
type Waker struct {
	_ noCopy

	data unsafe.Pointer
	vt   *vtable
}

// IntoWaker erases value into a Waker. This is the only way to build one.
// The dispatch table is shared by every Waker wrapping the same concrete
// type, so handles from independent conversions remain comparable with
// WillWake.
func IntoWaker[W Wakeable[W]](value W) *Waker {
	vt := vtableFor[W]()

	var data unsafe.Pointer
	if vt.inline {
		data = packInline(value)
	} else {
		data = packBoxed(value)
	}

	return &Waker{data: data, vt: vt}
}

// Wake wakes the wrapped value and consumes the handle. The value's
// teardown runs exactly once, even if the wake callback panics.
func (w *Waker) Wake() {
	vt, data := w.take("Wake")
	vt.wake(data)
}

// WakeByRef wakes the wrapped value without consuming the handle. The
// handle stays valid and keeps its bit pattern, also when the callback
// panics.
func (w *Waker) WakeByRef() {
	w.use("WakeByRef").wakeByRef(w.data)
}

// Clone returns an independently owned handle waking the same target.
func (w *Waker) Clone() *Waker {
	vt := w.use("Clone")
	return &Waker{data: vt.clone(w.data), vt: vt}
}

// Drop consumes the handle and runs the wrapped value's teardown without
// waking it. Dropping every outstanding handle is how "stop waking" is
// expressed; there is no separate cancel operation.
func (w *Waker) Drop() {
	vt, data := w.take("Drop")
	vt.drop(data)
}

// WillWake reports whether w and other wake the same target: same dispatch
// table and same slot bits. It holds across Clone for pointer-shaped values
// (a cloned Arc keeps its pointer word); boxed values are re-boxed on clone
// and compare as distinct targets.
func (w *Waker) WillWake(other *Waker) bool {
	w.use("WillWake")
	other.use("WillWake")

	return w.vt == other.vt && w.data == other.data
}

func (w *Waker) String() string {
	if w.vt == nil {
		return "Waker(consumed)"
	}

	return fmt.Sprintf("Waker[%s](%p)", w.vt.name, w.data)
}

func (w *Waker) use(op string) *vtable {
	if w.vt == nil {
		panic("waker: " + op + " on a consumed Waker")
	}

	return w.vt
}

func (w *Waker) take(op string) (*vtable, unsafe.Pointer) {
	vt := w.use(op)
	data := w.data

	w.vt = nil
	w.data = nil

	return vt, data
}

// noCopy can be embedded to provide "go vet" linting
// when a type should not - but is - be copied
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
