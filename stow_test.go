package waker

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestInlineRoundTrip(t *testing.T) {
	c := &counters{}
	value := testWaker{c: c}

	p := packInline(value)
	require.Equal(t, unsafe.Pointer(c), p, "the single pointer word is stored as-is")

	back := peekInline[testWaker](p)
	require.Same(t, c, back.c)
}

func TestBoxedRoundTrip(t *testing.T) {
	c := &counters{}
	value := fatWaker{c: c, payload: [4]uint64{1, 2, 3, 4}}

	p := packBoxed(value)

	// peeking borrows without disturbing the box
	require.Equal(t, value, peekBoxed[fatWaker](p))
	require.Equal(t, value, peekBoxed[fatWaker](p))

	// unpacking moves the value out and clears the box
	require.Equal(t, value, unpackBoxed[fatWaker](p))
	require.Equal(t, fatWaker{}, peekBoxed[fatWaker](p))
}

func TestBorrowPreservesSlotBits(t *testing.T) {
	var c counters

	w := IntoWaker(testWaker{c: &c})
	before := w.data

	w.WakeByRef()
	clone := w.Clone()
	clone.Drop()
	w.WakeByRef()

	require.Equal(t, before, w.data)

	w.Drop()
}

func TestCodecSelectionPerType(t *testing.T) {
	require.True(t, vtableFor[testWaker]().inline)
	require.True(t, vtableFor[Arc[hitCounter]]().inline)
	require.True(t, vtableFor[Weak[hitCounter]]().inline)
	require.False(t, vtableFor[fatWaker]().inline)
}

func TestRefPacksInline(t *testing.T) {
	var c counters
	target := testWaker{c: &c}

	w := IntoWaker(ByRef(&target))
	require.True(t, w.vt.inline)

	w.WakeByRef()
	require.EqualValues(t, 1, c.ref.Load())

	// consuming a borrow wakes by reference and tears nothing down
	w.Wake()
	require.EqualValues(t, 2, c.ref.Load())
	require.EqualValues(t, 0, c.wake.Load())
	require.EqualValues(t, 0, c.drop.Load())
}

func TestByRefNilPanics(t *testing.T) {
	require.PanicsWithValue(t, "waker: ByRef on a nil target", func() {
		ByRef[testWaker](nil)
	})
}
