package expr

import "github.com/grimkey/adx/src/scalar"

// newChild wraps an operand Expr (already an independent, owned copy —
// see Clone's doc comment) into a fresh, singly-owned childRef.
func newChild[T scalar.Scalar[T]](v Expr[T]) *childRef[T] {
	return &childRef[T]{refs: 1, val: v}
}

func maxGen(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

// operandGen returns the generation contribution of an operand that
// is about to become a childRef: leaves contribute 0, everything else
// contributes its own generation.
func operandGen[T scalar.Scalar[T]](v Expr[T]) uint64 {
	return v.gen
}
