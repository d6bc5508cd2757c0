// Package refl analyzes the memory shape of types for the erasure codec.
package refl

import (
	"reflect"
	"unsafe"
)

const pointerSize = unsafe.Sizeof(uintptr(0))

// IsPointerShaped reports whether values of t occupy exactly one machine
// word and that word is a pointer. Only such types may be stored directly
// in a pointer slot; anything else would put non-pointer bits where the
// garbage collector expects a pointer.
func IsPointerShaped(t reflect.Type) bool {
	if t.Size() != pointerSize {
		return false
	}

	return isPointerWord(t)
}

func isPointerWord(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func:
		return true

	case reflect.Array:
		return t.Len() == 1 && isPointerWord(t.Elem())

	case reflect.Struct:
		// exactly one field of non-zero size, and that field is the pointer.
		// zero-size fields like noCopy guards do not disturb the shape.
		var inner reflect.Type

		for idx := 0; idx < t.NumField(); idx++ {
			field := t.Field(idx)

			if field.Type.Size() == 0 {
				continue
			}

			if inner != nil {
				return false
			}

			inner = field.Type
		}

		return inner != nil && isPointerWord(inner)

	default:
		return false
	}
}
