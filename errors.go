package seq

import (
	"errors"
	"fmt"
)

// ErrEmptyAccess is the panic value for operations which require a non-empty
// sequence: Head and Tail on the empty sequence, run-length encoding of the
// empty sequence (no run to seed), sampling from the empty sequence. Misuse
// of this kind is a programming error and not recoverable where it occurs;
// the panic propagates to the caller.
var ErrEmptyAccess = errors.New("seq: access to empty sequence")

// OutOfRangeError is the panic value for indexed operations when the
// requested position cannot exist for the sequence at hand: At with a
// negative index or an index beyond the last element, RemoveAt with an index
// beyond the last element, Rotate with a negative step count. Note the
// asymmetry between At and RemoveAt: a negative index makes RemoveAt a
// no-op instead of a failure.
type OutOfRangeError struct {
	Index  int // the requested position
	Length int // the length of the sequence, as far as it had to be measured
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("seq: index out of bounds: %d with length %d", e.Index, e.Length)
}
