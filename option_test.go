package waker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmptyOptionNoops(t *testing.T) {
	w := IntoWaker(None[testWaker]())

	w.WakeByRef()

	clone := w.Clone()
	clone.Wake()

	w.Drop()
}

func TestSomeOptionForwards(t *testing.T) {
	var c counters

	opt := Some(testWaker{c: &c})

	value, ok := opt.Get()
	require.True(t, ok)
	require.Same(t, &c, value.c)

	w := IntoWaker(opt)

	w.WakeByRef()
	require.EqualValues(t, 1, c.ref.Load())

	w.Wake()
	require.EqualValues(t, 1, c.wake.Load())
	require.EqualValues(t, 1, c.drop.Load())
}

func TestOptionOrValue(t *testing.T) {
	var c counters
	fallback := testWaker{c: &c}

	require.Same(t, &c, None[testWaker]().OrValue(fallback).c)

	other := testWaker{c: &counters{}}
	require.NotSame(t, &c, Some(other).OrValue(fallback).c)
}

func TestOptionIsBoxed(t *testing.T) {
	require.False(t, vtableFor[Option[testWaker]]().inline)
}
