package seq

// Map returns a sequence holding f applied to every element of l, in order.
// The method form maps within one element type; use the package-level Map
// to map into a different type. O(n).
func (l Sequence[T]) Map(f func(T) T) Sequence[T] {
	return Map(l, f)
}

// Filter returns the elements of l for which keep is true, preserving their
// relative order. O(n).
func (l Sequence[T]) Filter(keep func(T) bool) Sequence[T] {
	var acc Sequence[T]
	for cur := l.cell; cur != nil; cur = cur.tail.cell {
		if keep(cur.head) {
			acc = acc.Prepend(cur.head)
		}
	}
	return acc.Reverse()
}

// Map returns a sequence holding f applied to every element of l. The
// result is built by a single forward accumulation and one final reversal,
// so output order matches input order exactly. O(n).
func Map[T, S any](l Sequence[T], f func(T) S) Sequence[S] {
	var acc Sequence[S]
	for cur := l.cell; cur != nil; cur = cur.tail.cell {
		acc = acc.Prepend(f(cur.head))
	}
	return acc.Reverse()
}

// FlatMap applies f to every element of l and concatenates the resulting
// sequences left to right. This is the reference form: every concatenation
// re-walks the accumulated prefix, which makes it quadratic in the total
// output size. FlatMapLinear computes the same result in linear time.
func FlatMap[T, S any](l Sequence[T], f func(T) Sequence[S]) Sequence[S] {
	var out Sequence[S]
	for cur := l.cell; cur != nil; cur = cur.tail.cell {
		out = out.Concat(f(cur.head))
	}
	return out
}

// FlatMapLinear computes the same sequence as FlatMap in O(n + total output
// size). It works in two phases. Phase one walks l once and collects the
// per-element results, each reversed, by prepending them onto an outer
// sequence of sequences; no concatenation happens. Both layers now sit in
// reverse order. Phase two walks the outer sequence and prepends the inner
// elements one at a time onto a single running accumulator; the two
// reversals cancel, so the accumulator ends up in input order.
func FlatMapLinear[T, S any](l Sequence[T], f func(T) Sequence[S]) Sequence[S] {
	var parts Sequence[Sequence[S]]
	for cur := l.cell; cur != nil; cur = cur.tail.cell {
		parts = parts.Prepend(f(cur.head).Reverse())
	}
	tracer().Debugf("flattening %d partial sequences", parts.Len())
	var out Sequence[S]
	for p := parts.cell; p != nil; p = p.tail.cell {
		out = revOnto(p.head, out)
	}
	return out
}
