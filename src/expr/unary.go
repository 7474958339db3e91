package expr

import "github.com/grimkey/adx/src/scalar"

// buildUnary is the one constructor behind negate, sqrt, exp and log
// (spec.md §4.2). a is treated as borrowed (cloned internally), same
// convention as buildBinary.
func buildUnary[T scalar.Scalar[T]](a Expr[T], tag opTag, output, g T) Expr[T] {
	if a.IsConst() {
		return Constant(output)
	}
	operand := a.Clone()
	return Expr[T]{
		kind:    kInterior,
		isUnary: true,
		op:      tag,
		output:  output,
		gl:      g,
		left:    newChild(operand),
		gen:     operandGen(operand) + 1,
	}
}

// Neg builds -a.
func Neg[T scalar.Scalar[T]](a Expr[T]) Expr[T] {
	o := a.Output().Neg()
	var z T
	return buildUnary(a, opNeg, o, z.One().Neg())
}

// Sqrt builds sqrt(a). Gated at compile time on T implementing
// scalar.Sqrter[T] (spec.md §6).
func Sqrt[T interface {
	scalar.Scalar[T]
	scalar.Sqrter[T]
}](a Expr[T]) Expr[T] {
	o := a.Output().Sqrt()
	var z T
	g := z.FromFloat64(0.5).Div(o)
	return buildUnary(a, opSqrt, o, g)
}

// Exp builds exp(a). Gated at compile time on T implementing
// scalar.Exponentiator[T].
func Exp[T interface {
	scalar.Scalar[T]
	scalar.Exponentiator[T]
}](a Expr[T]) Expr[T] {
	o := a.Output().Exp()
	return buildUnary(a, opExp, o, o.Clone())
}

// Log builds log(a), the natural logarithm (spec.md §9: this port
// fixes Log to mean natural log, consistent with the base of Exp).
// Gated at compile time on T implementing scalar.Logarithmer[T].
func Log[T interface {
	scalar.Scalar[T]
	scalar.Logarithmer[T]
}](a Expr[T]) Expr[T] {
	o := a.Output().Log()
	var z T
	g := z.One().Div(a.Output())
	return buildUnary(a, opLog, o, g)
}

// Neg returns -e.
func (e Expr[T]) Neg() Expr[T] { return Neg(e) }
