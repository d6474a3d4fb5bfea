package seq

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Compose returns h = f . g, the composition to feed Map and friends:
//
//     double := func(n int) int { return n * 2 }
//     short := func(n int) bool { return n < 10 }
//     l.Filter(seq.Compose(double, short))
//
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
