package seq

import (
	"github.com/npillmayer/seq/maybe"
)

// Sequence is a persistent singly-linked sequence of values of type T.
// It has two shapes: the empty sequence, and a cons cell holding a head
// value and a tail sequence. The zero value is a usable empty sequence,
// i.e. this is legal:
//
//     var l seq.Sequence[int]
//     l = l.Prepend(7)          // [7]
//
// Sequences are immutable. Every operation that “modifies” a sequence
// returns a new one, reusing unmodified suffixes of the input. Operations
// never depend on native call recursion, so sequence length is bounded by
// memory, not by stack depth.
type Sequence[T any] struct {
	cell *cell[T]
}

// --- API -------------------------------------------------------------------

// IsEmpty is true for the empty sequence. O(1).
func (l Sequence[T]) IsEmpty() bool {
	return l.cell == nil
}

// Head returns the first element of a non-empty sequence. Calling Head on
// the empty sequence is a programming error; it panics with ErrEmptyAccess.
func (l Sequence[T]) Head() T {
	if l.cell == nil {
		panic(ErrEmptyAccess)
	}
	return l.cell.head
}

// Tail returns the sequence after the first element. Calling Tail on the
// empty sequence is a programming error; it panics with ErrEmptyAccess.
func (l Sequence[T]) Tail() Sequence[T] {
	if l.cell == nil {
		panic(ErrEmptyAccess)
	}
	return l.cell.tail
}

// First returns the first element, if any. It is the total variant of Head.
func (l Sequence[T]) First() maybe.Maybe[T] {
	if l.cell == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.cell.head)
}

// Last returns the final element, if any. O(n).
func (l Sequence[T]) Last() maybe.Maybe[T] {
	if l.cell == nil {
		return maybe.Nothing[T]()
	}
	cur := l.cell
	for cur.tail.cell != nil {
		cur = cur.tail.cell
	}
	return maybe.Just(cur.head)
}

// Prepend returns a new sequence with value in front of l. The cells of l
// are shared with the result, not copied. O(1).
func (l Sequence[T]) Prepend(value T) Sequence[T] {
	return Sequence[T]{cell: &cell[T]{head: value, tail: l}}
}

// At returns the element at position i, counting from 0. It walks forward
// consuming min(n, i+1) cells. A negative i, or an i beyond the last
// element, is a programming error: At panics with an OutOfRangeError.
func (l Sequence[T]) At(i int) T {
	if i < 0 {
		panic(OutOfRangeError{Index: i, Length: l.Len()})
	}
	cur := l.cell
	for n := i; cur != nil; n-- {
		if n == 0 {
			return cur.head
		}
		cur = cur.tail.cell
	}
	panic(OutOfRangeError{Index: i, Length: l.Len()})
}

// Len returns the number of elements. The length is counted on every call
// with a single forward pass, it is not cached in the cells. O(n).
func (l Sequence[T]) Len() int {
	n := 0
	for cur := l.cell; cur != nil; cur = cur.tail.cell {
		n++
	}
	return n
}

// Reverse returns a sequence holding the elements of l in opposite order.
// It consumes l once, prepending every visited element onto a fresh
// accumulator. O(n).
func (l Sequence[T]) Reverse() Sequence[T] {
	var acc Sequence[T]
	for cur := l.cell; cur != nil; cur = cur.tail.cell {
		acc = acc.Prepend(cur.head)
	}
	return acc
}

// Concat returns the elements of l followed by the elements of other.
// The receiver is reversed once and its elements are prepended onto other
// one at a time; the cost is proportional to the length of l, and all of
// other's cells are shared with the result.
func (l Sequence[T]) Concat(other Sequence[T]) Sequence[T] {
	return revOnto(l.Reverse(), other)
}

// RemoveAt returns a sequence with the element at position i excluded and
// the order of all other elements preserved. A negative i leaves the
// sequence as it is, a no-op rather than an error. An i beyond the last element
// panics with an OutOfRangeError. The suffix after position i is shared
// with the input. O(n).
func (l Sequence[T]) RemoveAt(i int) Sequence[T] {
	if i < 0 {
		return l
	}
	var prefix Sequence[T]
	cur := l.cell
	for n := 0; n < i; n++ {
		if cur == nil {
			panic(OutOfRangeError{Index: i, Length: n})
		}
		prefix = prefix.Prepend(cur.head)
		cur = cur.tail.cell
	}
	if cur == nil {
		panic(OutOfRangeError{Index: i, Length: i})
	}
	tracer().Debugf("remove element %d of %v", i, l)
	return revOnto(prefix, cur.tail)
}
