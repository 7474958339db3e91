package expr

import "github.com/grimkey/adx/src/scalar"

// buildBinary is the one constructor behind +, -, * and / (spec.md
// §4.1). a and b are treated as borrowed: each is cloned internally,
// so the caller's own handles stay valid and must still be released
// independently (see Expr.Clone's doc comment for why Go collapses
// the Rust "owned vs borrowed operand" distinction into this single
// convention).
func buildBinary[T scalar.Scalar[T]](a, b Expr[T], tag opTag, output, gl, gr T) Expr[T] {
	aConst := a.IsConst()
	bConst := b.IsConst()

	if aConst && bConst {
		return Constant(output)
	}

	n := Expr[T]{kind: kInterior, isUnary: false, op: tag, output: output, gl: gl, gr: gr}

	switch {
	case aConst && !bConst:
		right := b.Clone()
		n.right = newChild(right)
		n.gen = operandGen(right) + 1
	case !aConst && bConst:
		left := a.Clone()
		n.left = newChild(left)
		n.gen = operandGen(left) + 1
	default:
		left := a.Clone()
		right := b.Clone()
		n.left = newChild(left)
		n.right = newChild(right)
		n.gen = maxGen(operandGen(left), operandGen(right)) + 1
	}
	return n
}

// Add builds a + b.
func Add[T scalar.Scalar[T]](a, b Expr[T]) Expr[T] {
	var z T
	o := a.Output().Add(b.Output())
	return buildBinary(a, b, opAdd, o, z.One(), z.One())
}

// Sub builds a - b.
func Sub[T scalar.Scalar[T]](a, b Expr[T]) Expr[T] {
	var z T
	o := a.Output().Sub(b.Output())
	return buildBinary(a, b, opSub, o, z.One(), z.One().Neg())
}

// Mul builds a * b.
func Mul[T scalar.Scalar[T]](a, b Expr[T]) Expr[T] {
	o := a.Output().Mul(b.Output())
	gl := b.Output().Clone()
	gr := a.Output().Clone()
	return buildBinary(a, b, opMul, o, gl, gr)
}

// Div builds a / b. Division by a zero output is not special-cased;
// it inherits whatever T's Div does (spec.md §4.1).
func Div[T scalar.Scalar[T]](a, b Expr[T]) Expr[T] {
	var z T
	o := a.Output().Div(b.Output())
	gl := z.One().Div(b.Output())
	gr := o.Neg().Div(b.Output())
	return buildBinary(a, b, opDiv, o, gl, gr)
}

// Add returns e + rhs.
func (e Expr[T]) Add(rhs Expr[T]) Expr[T] { return Add(e, rhs) }

// Sub returns e - rhs.
func (e Expr[T]) Sub(rhs Expr[T]) Expr[T] { return Sub(e, rhs) }

// Mul returns e * rhs.
func (e Expr[T]) Mul(rhs Expr[T]) Expr[T] { return Mul(e, rhs) }

// Div returns e / rhs.
func (e Expr[T]) Div(rhs Expr[T]) Expr[T] { return Div(e, rhs) }

// AddScalar returns e + Constant(v).
func (e Expr[T]) AddScalar(v T) Expr[T] { return Add(e, Constant(v)) }

// SubScalar returns e - Constant(v).
func (e Expr[T]) SubScalar(v T) Expr[T] { return Sub(e, Constant(v)) }

// MulScalar returns e * Constant(v).
func (e Expr[T]) MulScalar(v T) Expr[T] { return Mul(e, Constant(v)) }

// DivScalar returns e / Constant(v).
func (e Expr[T]) DivScalar(v T) Expr[T] { return Div(e, Constant(v)) }

// AddAssign sets *e = *e + rhs in place (spec.md §4.3): clone the
// current value, apply the non-assigning op, release the stale copy,
// then install the result.
func (e *Expr[T]) AddAssign(rhs Expr[T]) { e.replace(Add(*e, rhs)) }

// SubAssign sets *e = *e - rhs in place.
func (e *Expr[T]) SubAssign(rhs Expr[T]) { e.replace(Sub(*e, rhs)) }

// MulAssign sets *e = *e * rhs in place.
func (e *Expr[T]) MulAssign(rhs Expr[T]) { e.replace(Mul(*e, rhs)) }

// DivAssign sets *e = *e / rhs in place.
func (e *Expr[T]) DivAssign(rhs Expr[T]) { e.replace(Div(*e, rhs)) }

// AddAssignScalar sets *e = *e + Constant(v) in place.
func (e *Expr[T]) AddAssignScalar(v T) { e.replace(Add(*e, Constant(v))) }

// SubAssignScalar sets *e = *e - Constant(v) in place.
func (e *Expr[T]) SubAssignScalar(v T) { e.replace(Sub(*e, Constant(v))) }

// MulAssignScalar sets *e = *e * Constant(v) in place.
func (e *Expr[T]) MulAssignScalar(v T) { e.replace(Mul(*e, Constant(v))) }

// DivAssignScalar sets *e = *e / Constant(v) in place.
func (e *Expr[T]) DivAssignScalar(v T) { e.replace(Div(*e, Constant(v))) }

// replace installs next in place of *e, releasing whatever *e used to
// own first. Add/Sub/Mul/Div already cloned *e's old value when they
// wired it in as an operand of next, so releasing the stale copy here
// just undoes the extra reference that clone took — net effect: one
// new owned edge from next, zero leaked refcounts from the old slot.
func (e *Expr[T]) replace(next Expr[T]) {
	old := *e
	*e = next
	old.Release()
}
