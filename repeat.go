package seq

import (
	"math/rand"
)

// DuplicateEach returns a sequence in which every element of l is replaced
// by k consecutive copies, preserving element order. O(n·k).
//
// The copy counter starts at zero and stops as soon as it reaches k, so
// k = 0, and likewise any negative k, yields the empty sequence rather
// than the input. Callers who want repetition must pass k >= 1; the k = 0
// behaviour is fixed and covered by tests.
func (l Sequence[T]) DuplicateEach(k int) Sequence[T] {
	var acc Sequence[T]
	for cur := l.cell; cur != nil; cur = cur.tail.cell {
		for n := 0; n < k; n++ {
			acc = acc.Prepend(cur.head)
		}
	}
	return acc.Reverse()
}

// Rotate returns l rotated left by k positions with wraparound: the element
// at position k mod n comes first, preceded elements move to the back in
// order. Rotate(0) and Rotate(Len()) reproduce the sequence. The walk takes
// k literal steps, restarting at the front every time it runs off the end;
// k is not reduced modulo n up front, so the cost is O(max(n, k)).
// A negative k is a programming error and panics with an OutOfRangeError.
// Rotating the empty sequence yields the empty sequence for every k >= 0.
func (l Sequence[T]) Rotate(k int) Sequence[T] {
	if k < 0 {
		panic(OutOfRangeError{Index: k, Length: l.Len()})
	}
	if l.cell == nil {
		return l
	}
	var pre Sequence[T]
	cur := l
	for n := 0; n < k; n++ {
		if cur.cell == nil { // ran off the end: wrap around
			tracer().Debugf("rotation wraps around after %d of %d steps", n, k)
			pre, cur = Sequence[T]{}, l
		}
		pre = pre.Prepend(cur.cell.head)
		cur = cur.cell.tail
	}
	return cur.Concat(pre.Reverse())
}

// Sample returns a sequence of k elements, each drawn independently and
// uniformly at random, with replacement, from l. Every draw generates one
// random index in [0, Len()) and resolves it with At, so the cost is
// O(n·k). The randomness source is supplied by the caller, in the same way
// the sorts take their order relation; pass a seeded rand.Rand for
// reproducible draws. A negative k yields the empty sequence. Sampling a
// non-zero number of elements from the empty sequence is a programming
// error (there is no index space to draw from) and panics with
// ErrEmptyAccess.
func (l Sequence[T]) Sample(rnd *rand.Rand, k int) Sequence[T] {
	if k <= 0 {
		return Sequence[T]{}
	}
	assertThat(rnd != nil, "sampling needs a source of randomness")
	if l.cell == nil {
		panic(ErrEmptyAccess)
	}
	n := l.Len()
	tracer().Debugf("sampling %d of %d elements", k, n)
	var acc Sequence[T]
	for i := 0; i < k; i++ {
		acc = acc.Prepend(l.At(rnd.Intn(n)))
	}
	return acc.Reverse()
}
