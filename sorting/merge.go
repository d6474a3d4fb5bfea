package sorting

import "github.com/npillmayer/seq"

// Merge sorts l with a bottom-up merge sort: the input is split into one
// singleton run per element, and runs are merged pairwise, left to right,
// generation by generation, until a single run remains. Each generation
// halves the number of runs, so there are ⌈log₂ n⌉ generations of O(n)
// total merge work: O(n·log n) overall, with no recursion anywhere.
//
// The sort is stable: singleton runs start out in input order, every merge
// prefers the run that sits earlier in the current generation (see
// mergeRuns), and generations keep their left-to-right arrangement.
func Merge[T any](l seq.Sequence[T], ord Order[T]) seq.Sequence[T] {
	assertThat(ord != nil, "merge sort needs an order")
	if l.IsEmpty() || l.Tail().IsEmpty() {
		return l
	}
	runs := singletons(l)
	for gen := 1; !runs.Tail().IsEmpty(); gen++ {
		runs = mergePairwise(runs, ord)
		tracer().Debugf("merge generation %d holds %d runs", gen, runs.Len())
	}
	return runs.Head()
}

// singletons builds the first generation: one run per element, in input
// order.
func singletons[T any](l seq.Sequence[T]) seq.Sequence[seq.Sequence[T]] {
	runs := seq.Empty[seq.Sequence[T]]()
	for cur := l; !cur.IsEmpty(); cur = cur.Tail() {
		runs = runs.Prepend(seq.Of(cur.Head()))
	}
	return runs.Reverse()
}

// mergePairwise merges neighbouring runs left to right into the next
// generation; an odd trailing run is carried over unmerged, keeping its
// position.
func mergePairwise[T any](runs seq.Sequence[seq.Sequence[T]], ord Order[T]) seq.Sequence[seq.Sequence[T]] {
	next := seq.Empty[seq.Sequence[T]]()
	cur := runs
	for !cur.IsEmpty() {
		a := cur.Head()
		cur = cur.Tail()
		if cur.IsEmpty() {
			next = next.Prepend(a)
			break
		}
		b := cur.Head()
		cur = cur.Tail()
		next = next.Prepend(mergeRuns(a, b, ord))
	}
	return next.Reverse()
}

// mergeRuns is the two-pointer merge of two sorted runs. On a tie the
// element of a is taken: a sits left of b in the generation, and preferring
// it keeps equal elements in their original relative order. When one run
// drains, the merged prefix (accumulated in reverse) is prepended back
// onto the remainder of the other, whose cells are shared with the result.
func mergeRuns[T any](a, b seq.Sequence[T], ord Order[T]) seq.Sequence[T] {
	acc := seq.Empty[T]()
	for {
		if a.IsEmpty() {
			return prependReversed(acc, b)
		}
		if b.IsEmpty() {
			return prependReversed(acc, a)
		}
		if ord(a.Head(), b.Head()) <= 0 {
			acc = acc.Prepend(a.Head())
			a = a.Tail()
		} else {
			acc = acc.Prepend(b.Head())
			b = b.Tail()
		}
	}
}

// prependReversed prepends the elements of rev onto rest one at a time.
// rev holds a prefix in reverse order, so the result is that prefix
// restored, followed by rest.
func prependReversed[T any](rev, rest seq.Sequence[T]) seq.Sequence[T] {
	out := rest
	for cur := rev; !cur.IsEmpty(); cur = cur.Tail() {
		out = out.Prepend(cur.Head())
	}
	return out
}
