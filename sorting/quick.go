package sorting

import "github.com/npillmayer/seq"

// Quick sorts l with a quicksort driven by an explicit work-list of pending
// sublists: the recursion of the textbook formulation is held in data, so
// the call-stack depth stays constant for any input length. Each step pops
// one pending sublist: an empty one is dropped, a singleton is final and is
// emitted, anything longer is partitioned against its head as the pivot,
// and the three parts (less-or-equal group, the pivot alone, greater
// group) re-enter the work-list with the less-or-equal group on top.
// Sublists therefore finalize in ascending order, and collecting the
// emitted elements reconstructs the sorted sequence.
//
// The pivot is always the head of the sublist, deliberately not randomized:
// sorted or reverse-sorted input degrades to the O(n²) worst case, while
// the average case is O(n·log n). Quick is not stable across a partition
// boundary; within each partition group the encounter order is preserved.
func Quick[T any](l seq.Sequence[T], ord Order[T]) seq.Sequence[T] {
	assertThat(ord != nil, "quicksort needs an order")
	out := seq.Empty[T]()
	pending := seq.Of(l)
	for !pending.IsEmpty() {
		part := pending.Head()
		pending = pending.Tail()
		if part.IsEmpty() {
			continue
		}
		if part.Tail().IsEmpty() {
			out = out.Prepend(part.Head())
			continue
		}
		pivot := part.Head()
		lessEq, greater := partition(part.Tail(), pivot, ord)
		tracer().Debugf("pivot %v splits %v into %v | %v", pivot, part, lessEq, greater)
		pending = pending.Prepend(greater).Prepend(seq.Of(pivot)).Prepend(lessEq)
	}
	return out.Reverse()
}

// partition splits rest into the elements ordering less-or-equal to the
// pivot and those ordering greater. Both groups preserve the order in which
// elements were encountered: groups are accumulated by prepending and
// restored with one reversal each.
func partition[T any](rest seq.Sequence[T], pivot T, ord Order[T]) (lessEq, greater seq.Sequence[T]) {
	for cur := rest; !cur.IsEmpty(); cur = cur.Tail() {
		if ord(cur.Head(), pivot) <= 0 {
			lessEq = lessEq.Prepend(cur.Head())
		} else {
			greater = greater.Prepend(cur.Head())
		}
	}
	return lessEq.Reverse(), greater.Reverse()
}
