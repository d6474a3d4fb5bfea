package seq

import "fmt"

// Matchable is an interface for types which can be pattern-matched and
// decomposed into their two halves.
type Matchable[T, A, B comparable] interface {
	Matches(other T) bool
	Decompose() (A, B)
}

// --- Pair ------------------------------------------------------------------

// Pair is an immutable 2-tuple. Run-length encoding produces sequences of
// pairs, with the element on the left and the run count on the right.
type Pair[A, B comparable] struct {
	Left  A
	Right B
}

// P builds a pair from its two halves.
func P[A, B comparable](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Matches is true if p and other hold equal halves.
func (p Pair[A, B]) Matches(other Pair[A, B]) bool {
	return p.Left == other.Left && p.Right == other.Right
}

// Decompose splits a pair into its two halves.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v,%v)", p.Left, p.Right)
}

var _ Matchable[Pair[int, int], int, int] = P(1, 2)
