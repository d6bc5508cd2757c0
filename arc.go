package waker

import "sync/atomic"

// arcState is the shared cell behind Arc and Weak handles. The strong count
// gates the target's teardown, the weak count only tracks outstanding weak
// handles. Memory is reclaimed by the collector; the counts exist so that
// teardown runs exactly once and upgrades fail once the target is gone.
type arcState[T WakeRef] struct {
	value  T
	strong atomic.Int64
	weak   atomic.Int64
}

// Arc is a shared strong handle to a wake-capable value. Clones share the
// same cell, so handles made from clones of one Arc compare equal under
// WillWake.
//
// Arc deliberately has no consuming Wake: one strong handle cannot assume
// exclusivity of the target, so waking an Arc by value degrades to
// WakeByRef.
type Arc[T WakeRef] struct {
	state *arcState[T]
}

func NewArc[T WakeRef](value T) Arc[T] {
	state := &arcState[T]{value: value}
	state.strong.Store(1)
	state.weak.Store(1)

	return Arc[T]{state: state}
}

// Get returns a pointer to the shared value. The pointer stays valid for
// the lifetime of the cell, but the value's teardown may already have run
// once every strong handle was released.
func (a Arc[T]) Get() *T {
	return &a.state.value
}

func (a Arc[T]) WakeByRef() {
	a.state.value.WakeByRef()
}

func (a Arc[T]) Clone() Arc[T] {
	if a.state.strong.Add(1) <= 1 {
		panic("waker: Clone of a released Arc")
	}

	return a
}

// Downgrade returns a weak handle to the same cell.
func (a Arc[T]) Downgrade() Weak[T] {
	a.state.weak.Add(1)
	return Weak[T]{state: a.state}
}

// Drop releases this strong handle. The last strong handle runs the
// target's teardown; releasing a handle twice is a programmer error.
func (a Arc[T]) Drop() {
	switch n := a.state.strong.Add(-1); {
	case n == 0:
		dropValue(a.state.value)
		a.state.weak.Add(-1)
	case n < 0:
		panic("waker: Arc released twice")
	}
}

// Weak is a shared weak handle: it does not keep the target alive, and
// waking it is a no-op once every strong handle has been released.
type Weak[T WakeRef] struct {
	state *arcState[T]
}

// Upgrade attempts to turn the weak handle into a strong one. It fails once
// the strong count has reached zero; a released target is never
// resurrected.
func (w Weak[T]) Upgrade() (Arc[T], bool) {
	if w.state == nil {
		return Arc[T]{}, false
	}

	for {
		n := w.state.strong.Load()
		if n == 0 {
			return Arc[T]{}, false
		}

		if w.state.strong.CompareAndSwap(n, n+1) {
			return Arc[T]{state: w.state}, true
		}
	}
}

// WakeByRef upgrades and wakes the target, releasing the temporary strong
// handle afterwards. A gone target makes this a no-op.
func (w Weak[T]) WakeByRef() {
	strong, ok := w.Upgrade()
	if !ok {
		return
	}

	defer strong.Drop()
	strong.WakeByRef()
}

func (w Weak[T]) Clone() Weak[T] {
	if w.state != nil {
		w.state.weak.Add(1)
	}

	return w
}

func (w Weak[T]) Drop() {
	if w.state == nil {
		return
	}

	if w.state.weak.Add(-1) < 0 {
		panic("waker: Weak released twice")
	}
}
