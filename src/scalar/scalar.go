// Package scalar defines the abstract numeric contract the expression
// core builds on. The core never looks inside T; it only calls these
// methods, so any ring-with-division type (float64, a rational, a
// dual-precision type, ...) can stand in as the backend.
package scalar

// Scalar is the arithmetic contract required of every value carried
// through the expression graph. Implementations are expected to be
// immutable: every method returns a new value rather than mutating the
// receiver.
//
// Zero, One and FromFloat64 read like associated functions in other
// languages but Go has no such thing, so they are plain methods;
// callers invoke them on any value of T, including its zero value,
// since a correct implementation must not depend on the receiver's
// contents for these three.
type Scalar[T any] interface {
	// Clone returns an independent copy of the receiver.
	Clone() T

	Neg() T
	Add(rhs T) T
	Sub(rhs T) T
	Mul(rhs T) T
	Div(rhs T) T

	Zero() T
	One() T
	FromFloat64(v float64) T
}

// Sqrter is an optional extension: a Scalar backend that supports
// square root. Gated the way spec.md §6 describes ("the last three
// gated on the scalar supporting the corresponding extension").
type Sqrter[T any] interface {
	Sqrt() T
}

// Exponentiator is an optional extension for the natural exponential.
type Exponentiator[T any] interface {
	Exp() T
}

// Logarithmer is an optional extension for the natural logarithm.
// Per spec.md §9, Log always means natural log, never base-10.
type Logarithmer[T any] interface {
	Log() T
}

// HasSqrt reports whether v's type implements Sqrter[T].
func HasSqrt[T any](v T) (Sqrter[T], bool) {
	s, ok := any(v).(Sqrter[T])
	return s, ok
}

// HasExp reports whether v's type implements Exponentiator[T].
func HasExp[T any](v T) (Exponentiator[T], bool) {
	s, ok := any(v).(Exponentiator[T])
	return s, ok
}

// HasLog reports whether v's type implements Logarithmer[T].
func HasLog[T any](v T) (Logarithmer[T], bool) {
	s, ok := any(v).(Logarithmer[T])
	return s, ok
}
