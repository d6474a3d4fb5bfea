package seq

import (
	"fmt"
	"strings"
)

// cell is one link of a sequence chain. A cell owns its head value and
// shares its tail: any number of sequences may hang on to the same tail,
// which is safe because cells are never written to after construction.
type cell[T any] struct {
	head T
	tail Sequence[T]
}

// revOnto prepends the elements of rev onto rest, one at a time, front to
// back. The result is reverse(rev) followed by rest, with all of rest's
// cells shared. This is the workhorse behind Concat, RemoveAt and the
// flattening pass of FlatMapLinear: accumulate a prefix in reverse by
// prepending, then restore its order with a single revOnto.
func revOnto[T any](rev, rest Sequence[T]) Sequence[T] {
	out := rest
	for cur := rev.cell; cur != nil; cur = cur.tail.cell {
		out = out.Prepend(cur.head)
	}
	return out
}

// String renders a sequence as [e1,e2,…] for traces and test output.
func (l Sequence[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for cur := l.cell; cur != nil; cur = cur.tail.cell {
		if cur != l.cell {
			b.WriteByte(',')
		}
		b.WriteString(fmt.Sprintf("%v", cur.head))
	}
	b.WriteByte(']')
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("seq: "+msg, msgargs...)
		panic(msg)
	}
}
