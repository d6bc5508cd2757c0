// Package waker converts arbitrary wake-capable values into a single
// type-erased handle, the [Waker], that a cooperative task runtime can
// clone, invoke and discard without knowing the concrete type it wraps.
//
// A value qualifies by implementing [WakeRef] and Clone (the [Wakeable]
// constraint); [Wake] and [Dropper] refine what consuming the handle means.
// [IntoWaker] packs the value into a single pointer slot, pairs it with a
// per-type dispatch table of four operations (clone, wake, wake-by-ref,
// drop) and hands back the erased handle.
//
// The package also ships the usual ownership wrappers: [Box] for exclusive
// ownership, [Arc] and [Weak] for shared strong/weak handles, [Option] for
// optional values and [Ref] for plain borrows. Each one redefines what
// "wake by value" means for its ownership semantics.
//
// This package implements no scheduler and never blocks; the four handle
// operations are synchronous and safe to call from any goroutine.
package waker
