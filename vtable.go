package waker

import (
	"maps"
	"reflect"
	"sync/atomic"
	"unsafe"

	"go.uber.org/zap"
)

// vtable is the dispatch table of a concrete waker type: four operations
// over the opaque pointer slot, plus the codec decision for that type. One
// instance exists per type, shared by every Waker wrapping it, so table
// identity is part of the "same target" comparison in WillWake.
type vtable struct {
	name   string
	inline bool

	// clone packs a duplicate of the value into a fresh slot
	clone func(unsafe.Pointer) unsafe.Pointer

	// wake consumes the slot: wake action, then teardown. Teardown runs
	// even if the wake callback panics.
	wake func(unsafe.Pointer)

	// wakeByRef borrows the slot and leaves its bits untouched
	wakeByRef func(unsafe.Pointer)

	// drop consumes the slot and runs teardown without waking
	drop func(unsafe.Pointer)
}

var vtables atomic.Pointer[map[unsafe.Pointer]*vtable]

func init() {
	// initialize the lookup table
	vtables.Store(&map[unsafe.Pointer]*vtable{})
}

// vtableFor returns the dispatch table for W, building and registering it
// on first use. Every call for the same W returns the same instance.
func vtableFor[W Wakeable[W]]() *vtable {
	ptrToType := abiTypePointerTo(reflect.TypeOf((*W)(nil)).Elem())

	if cached, ok := (*vtables.Load())[ptrToType]; ok {
		return cached
	}

	return ensureVTable[W](ptrToType)
}

func ensureVTable[W Wakeable[W]](ptrToType unsafe.Pointer) *vtable {
	for {
		previousTables := vtables.Load()
		if cached, ok := (*previousTables)[ptrToType]; ok {
			return cached
		}

		newTable := makeVTable[W]()

		newTables := maps.Clone(*previousTables)
		newTables[ptrToType] = newTable

		if vtables.CompareAndSwap(previousTables, &newTables) {
			logger().Debug(
				"new waker vtable registered",
				zap.String("type", newTable.name),
				zap.Bool("inline", newTable.inline),
			)

			return newTable
		}
	}
}

func makeVTable[W Wakeable[W]]() *vtable {
	ty := reflect.TypeOf((*W)(nil)).Elem()

	pack, peek, unpack, inline := codecFor[W](ty)

	return &vtable{
		name:   ty.String(),
		inline: inline,

		clone: func(p unsafe.Pointer) unsafe.Pointer {
			return pack(peek(p).Clone())
		},

		wake: func(p unsafe.Pointer) {
			value := unpack(p)
			defer dropValue(value)
			wakeValue(value)
		},

		wakeByRef: func(p unsafe.Pointer) {
			peek(p).WakeByRef()
		},

		drop: func(p unsafe.Pointer) {
			dropValue(unpack(p))
		},
	}
}

func abiTypePointerTo(t reflect.Type) unsafe.Pointer {
	type eface struct {
		typ, val unsafe.Pointer
	}

	// a reflect.Type is backed by an *rType. The rType contains an abi.Type
	// as its first value, so the data word of the interface identifies the
	// type uniquely for the lifetime of the process.
	return (*eface)(unsafe.Pointer(&t)).val
}
