/*
Package result provides a type for computations that may fail.

The design follows the Result type of Elm:

	type Result error value = Ok value | Err error

A Result carries either a value or the error that prevented one. Besides
the plain constructors Ok and Err, the package bridges Go's panic-based
misuse contracts into explicit errors: Try runs a function and captures a
panic as an Err, so that e.g. an out-of-bounds sequence access can be
handled as a value instead of unwinding the stack.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

import "fmt"

// Result is the outcome of a computation that may fail: either Ok with a
// value, or Err with an error.
type Result[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps the value of a successful computation.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err marks a computation as failed.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// Try runs f and captures its outcome: Ok with the returned value, or, if
// f panics, Err with the recovered panic value, wrapped into an error if
// it isn't one already. Try is the bridge for operations that treat misuse
// as a programming error and panic, like Head or At on sequences:
//
//     r := result.Try(l.Head)    // Ok(head) or Err(seq.ErrEmptyAccess)
//
func Try[T any](f func() T) (r Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			if err, ok := p.(error); ok {
				r = Err[T](err)
				return
			}
			r = Err[T](fmt.Errorf("%v", p))
		}
	}()
	return Ok(f())
}

// Match starts a pattern match on a Result:
//
//     var v int
//     var e error
//     switch m := r.Match(); m {
//     case m.Ok(&v):
//         // use v
//     case m.Err(&e):
//         // handle e
//     }
//
func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

// WithDefault returns the contained value, or def for a failed computation.
func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

// AndThen chains a Result into a function producing another Result; an Err
// short-circuits the chain.
func AndThen[T, S any](f func(T) Result[S], x Result[T]) Result[S] {
	var v T
	var e error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return f(v)
	case m.Err(&e):
	}
	return Err[S](e)
}

// Map applies f to the value contained in x; an Err passes through.
func Map[T, S any](f func(T) S, x Result[T]) Result[S] {
	var v T
	var e error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return Ok(f(v))
	case m.Err(&e):
	}
	return Err[S](e)
}

// MapError rewrites the error of a failed computation; an Ok passes through.
func MapError[T any](f func(error) error, x Result[T]) Result[T] {
	var v T
	var e error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return x
	case m.Err(&e):
	}
	return Err[T](f(e))
}

// --- Matching --------------------------------------------------------------

// Matcher discriminates the two shapes of a Result. A case arm matches when
// the corresponding method returns the matcher itself; the matching method
// moves the value (or error) into its argument.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
