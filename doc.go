/*
Package seq implements a persistent (immutable) singly-linked sequence,
the classic cons list, together with an order-preserving transformation
layer (map, filter, flat-map, run-length encoding, duplication, rotation,
random sampling). Sorting algorithms on top of it live in sub-package
sorting.

Persistence means copy-on-write behaviour: each “modification” of a
sequence (prepending, removing, transforming) creates a new sequence,
leaving the original unmodified. Under the hood most of the memory held
by the original is retained: a tail may be referenced by many sequences
simultaneously, which is safe because no cell is ever written to after
construction. Making derived versions of a sequence is therefore cheap in
terms of space, and immutable sequences are inherently concurrency-safe:
two goroutines may read the same sequence without coordination.

The zero value of Sequence is a usable empty sequence:

    var l seq.Sequence[int]     // empty
    l = l.Prepend(2).Prepend(1) // [1,2]

Stack safety

No operation in this module recurses per element. Linear passes carry an
explicit accumulator, divide-and-conquer (quicksort) carries an explicit
work-list of pending sub-problems. Sequences of 100,000+ elements are
processed within a constant number of stack frames; the test suite pins
this down.

Errors

Reading the head or tail of the empty sequence, indexed access outside
[0, Len), and the degenerate uses of Rotate and Sample are programming
errors, not recoverable conditions. They panic with ErrEmptyAccess or an
OutOfRangeError. Callers who prefer an explicit error value can wrap a
call with result.Try from sub-package result.

Status

Experimental. The API still moves as the generics idioms settle.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'seq'.
func tracer() tracing.Trace {
	return tracing.Select("seq")
}
