package sorting

import "github.com/npillmayer/seq"

// Insertion sorts l by straight insertion: the input is processed left to
// right, and each element is inserted into its place in a sorted
// accumulator. O(n²) comparisons in the worst case, O(n) extra cells per
// insertion for the walked prefix; the unwalked suffix of the accumulator
// is shared. The sort is stable, see insert.
func Insertion[T any](l seq.Sequence[T], ord Order[T]) seq.Sequence[T] {
	assertThat(ord != nil, "insertion sort needs an order")
	out := seq.Empty[T]()
	for cur := l; !cur.IsEmpty(); cur = cur.Tail() {
		out = insert(cur.Head(), out, ord)
	}
	return out
}

// insert places x into the sorted sequence. The walk starts at the front
// and moves past every element that orders less-or-equal to x, so x lands
// behind the elements it ties with: earlier-inserted elements stay first,
// which is what makes Insertion stable.
func insert[T any](x T, sorted seq.Sequence[T], ord Order[T]) seq.Sequence[T] {
	pre := seq.Empty[T]()
	rest := sorted
	for !rest.IsEmpty() && ord(rest.Head(), x) <= 0 {
		pre = pre.Prepend(rest.Head())
		rest = rest.Tail()
	}
	out := rest.Prepend(x)
	for !pre.IsEmpty() {
		out = out.Prepend(pre.Head())
		pre = pre.Tail()
	}
	return out
}
