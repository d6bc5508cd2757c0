package waker

// WakeRef is implemented by values that can wake a suspended task without
// being consumed. WakeByRef may be called any number of times, from any
// goroutine, including reentrantly from inside another wake callback.
type WakeRef interface {
	WakeByRef()
}

// Wake is an optional refinement of WakeRef for values that can do something
// more specific when they are consumed, e.g. a Box that takes its target out
// and signals it exactly once. When a type does not implement Wake, the
// consuming wake of its handle degrades to WakeByRef, so waking by value is
// never weaker than waking by reference.
//
// Wake performs the wake action only. Teardown stays in Drop; the dispatch
// layer runs it once after the consuming wake, even if Wake panics.
//
// Shared-ownership wrappers (Arc, Weak) must not implement Wake: consuming
// one shared handle cannot assume exclusivity of the target.
type Wake interface {
	WakeRef
	Wake()
}

// Dropper is implemented by values that own a resource which must be
// released when the handle wrapping them is consumed. The erasure layer
// invokes Drop exactly once per handle, on consuming wake or on destroy.
type Dropper interface {
	Drop()
}

// Wakeable is the constraint for IntoWaker: a wake-capable value that can
// duplicate itself. Handles and their clones may be woken and dropped from
// arbitrary goroutines, so the value's methods must be safe for concurrent
// use; synchronization of interior state is the value's own concern.
type Wakeable[W any] interface {
	WakeRef
	Clone() W
}

// wakeValue performs the consuming wake action: the value's own Wake if it
// has one, WakeByRef otherwise.
func wakeValue(v WakeRef) {
	if wake, ok := v.(Wake); ok {
		wake.Wake()
		return
	}

	v.WakeByRef()
}

// dropValue runs the value's teardown, if it has any.
func dropValue(v any) {
	if dropper, ok := v.(Dropper); ok {
		dropper.Drop()
	}
}
