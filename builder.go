package seq

// Empty returns the empty sequence for element type T. It is the canonical
// zero-length sequence; all empty sequences of one type are identical.
func Empty[T any]() Sequence[T] {
	return Sequence[T]{}
}

// Cons returns a sequence with head in front of tail, sharing tail's cells.
// It is the literal constructor for chains:
//
//     l := seq.Cons(1, seq.Cons(2, seq.Empty[int]()))
//
func Cons[T any](head T, tail Sequence[T]) Sequence[T] {
	return tail.Prepend(head)
}

// Of builds a sequence from the given elements, in the given order.
func Of[T any](items ...T) Sequence[T] {
	return FromSlice(items)
}

// FromSlice builds a sequence holding the elements of s in order. The slice
// is walked exactly once, prepending every element into a fresh, reversed
// chain, which is then reversed once at the end. O(n).
func FromSlice[T any](s []T) Sequence[T] {
	var acc Sequence[T]
	for _, v := range s {
		acc = acc.Prepend(v)
	}
	return acc.Reverse()
}

// Tabulate builds a sequence of n elements where the element at position i
// is f(i). n <= 0 yields the empty sequence.
func Tabulate[T any](n int, f func(int) T) Sequence[T] {
	var acc Sequence[T]
	for i := 0; i < n; i++ {
		acc = acc.Prepend(f(i))
	}
	return acc.Reverse()
}

// ToSlice returns the elements of l in a fresh slice, in order; the inverse
// of FromSlice. The empty sequence yields a nil slice. O(n).
func (l Sequence[T]) ToSlice() []T {
	var out []T
	for cur := l.cell; cur != nil; cur = cur.tail.cell {
		out = append(out, cur.head)
	}
	return out
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b Sequence[T]) bool {
	ca, cb := a.cell, b.cell
	for ca != nil && cb != nil {
		if ca.head != cb.head {
			return false
		}
		ca, cb = ca.tail.cell, cb.tail.cell
	}
	return ca == nil && cb == nil
}
