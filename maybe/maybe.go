/*
Package maybe implements an option type: a value of type Maybe[T] either holds
a single value of type T ("Just") or holds nothing ("Nothing").

Maybe values make the absence of a result a first-class value, instead of
overloading a zero value or threading boolean flags around.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe optionally holds a value of type T. The zero value is Nothing.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a value of type T.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing is the absent Maybe of type T.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust returns true if m holds a value.
func (m Maybe[T]) IsJust() bool {
	return m.tag
}

// Value unwraps m, returning ok=false (and the zero value for T) for Nothing.
func (m Maybe[T]) Value() (T, bool) {
	return m.value, m.tag
}

// WithDefault unwraps m, substituting def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Or returns m if it holds a value, alt otherwise.
func (m Maybe[T]) Or(alt Maybe[T]) Maybe[T] {
	if m.tag {
		return m
	}
	return alt
}

// Map applies f to the value held by m, if any.
func Map[T, S any](f func(T) S, m Maybe[T]) Maybe[S] {
	if m.tag {
		return Just(f(m.value))
	}
	return Nothing[S]()
}

// AndThen chains a computation which may itself fail.
func AndThen[T, S any](f func(T) Maybe[S], m Maybe[T]) Maybe[S] {
	if m.tag {
		return f(m.value)
	}
	return Nothing[S]()
}
