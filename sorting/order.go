package sorting

import "golang.org/x/exp/constraints"

// Order is a total-order capability over T, the three-way comparison the
// sorts are parameterized with: negative if a sorts before b, zero if the
// two are tied, positive if a sorts after b. An Order must be consistent,
// i.e. transitive with Order(a,b) = -Order(b,a), for the sorts to produce
// ordered output.
type Order[T any] func(a, b T) int

// Natural returns the order induced by the built-in < relation of an
// ordered type.
func Natural[T constraints.Ordered]() Order[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case b < a:
			return 1
		}
		return 0
	}
}

// Reversed turns an order upside down.
func Reversed[T any](ord Order[T]) Order[T] {
	return func(a, b T) int {
		return ord(b, a)
	}
}

// By derives an order on T from an order on a key projected out of T:
//
//     byLen := sorting.By(func(s string) int { return len(s) }, sorting.Natural[int]())
//
func By[T, K any](key func(T) K, ord Order[K]) Order[T] {
	return func(a, b T) int {
		return ord(key(a), key(b))
	}
}
