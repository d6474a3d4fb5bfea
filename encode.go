package seq

// RunLength compresses l into its run-length encoding: a sequence of pairs
// (element, count), one pair per run of consecutive equal elements, in the
// order the runs appear. Equal elements merge only while adjacent:
//
//     RunLength(seq.Of(1, 1, 2, 1)) ⇒ [(1,2),(2,1),(1,1)]
//
// The encoding is computed in one forward pass that tracks the current run;
// a completed run is prepended onto the accumulator whenever the run breaks,
// the final run is flushed after the pass, and a single reversal restores
// input order. Encoding the empty sequence is a programming error (there is
// no first run to seed) and panics with ErrEmptyAccess.
func RunLength[T comparable](l Sequence[T]) Sequence[Pair[T, int]] {
	if l.cell == nil {
		panic(ErrEmptyAccess)
	}
	var acc Sequence[Pair[T, int]]
	run, count := l.cell.head, 1
	for cur := l.cell.tail.cell; cur != nil; cur = cur.tail.cell {
		if cur.head == run {
			count++
			continue
		}
		tracer().Debugf("run of %v broke after %d", run, count)
		acc = acc.Prepend(P(run, count))
		run, count = cur.head, 1
	}
	acc = acc.Prepend(P(run, count))
	return acc.Reverse()
}
