/*
Package sorting implements sorting algorithms on persistent sequences.

Sequences carry no intrinsic order on their element type. Every sort takes
the total order as an explicit capability, an Order[T] comparison function
supplied by the caller, so one sequence type serves ascending, descending
and domain-specific orderings alike. Three algorithms with different
trade-offs are provided:

    Insertion:  O(n²), stable; fine for short or nearly-sorted input
    Merge:      O(n·log n), stable; bottom-up generations of runs
    Quick:      O(n·log n) on average, O(n²) worst case, not stable;
                driven by an explicit work-list of pending sublists

All three produce the same sequence for the same input and order. None of
them recurses per element or per sublist: linear passes carry accumulators,
and quicksort keeps its pending sub-problems in an explicit work-list, so
the call-stack depth stays constant no matter how long the input is.

The sorts are built strictly on the public sequence API; they have no
access to the cell representation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sorting

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'seq.sorting'.
func tracer() tracing.Trace {
	return tracing.Select("seq.sorting")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("sorting: "+msg, msgargs...)
		panic(msg)
	}
}
