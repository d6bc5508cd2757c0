package waker

import (
	"reflect"
	"unsafe"

	"github.com/Lucretiel/cooked-waker/internal/refl"
)

// The codec packs a wake-capable value into the single pointer slot of a
// Waker. Pointer-shaped types (a Box, an Arc, a plain *T) store their one
// pointer word directly, so a cloned shared handle keeps the same bit
// pattern and WillWake can compare handles for "same target". Everything
// else is moved into a fresh heap allocation and the slot stores the box
// address.
//
// The collector scans the slot as a pointer, so the inline arm is limited
// to types whose single word really is a pointer. The inline-or-boxed
// decision is made once per type when its vtable is built, never per value;
// the slot itself carries no tag.

func packInline[W any](value W) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&value))
}

// peekInline reconstructs a value sharing the stored pointer word. The slot
// is not modified, so the handle keeps its bit pattern across borrows.
func peekInline[W any](p unsafe.Pointer) W {
	return *(*W)(unsafe.Pointer(&p))
}

func packBoxed[W any](value W) unsafe.Pointer {
	box := new(W)
	*box = value
	return unsafe.Pointer(box)
}

func peekBoxed[W any](p unsafe.Pointer) W {
	return *(*W)(p)
}

// unpackBoxed moves the value out of its box. The box is zeroed afterwards
// so a stale slot cannot resurrect the moved-out value.
func unpackBoxed[W any](p unsafe.Pointer) W {
	box := (*W)(p)
	value := *box

	var zero W
	*box = zero

	return value
}

func codecFor[W any](ty reflect.Type) (pack func(W) unsafe.Pointer, peek, unpack func(unsafe.Pointer) W, inline bool) {
	if refl.IsPointerShaped(ty) {
		// peeking an inline value copies the pointer word, which is
		// already a complete borrow; unpack is the same operation
		return packInline[W], peekInline[W], peekInline[W], true
	}

	return packBoxed[W], peekBoxed[W], unpackBoxed[W], false
}
