package expr

import "github.com/grimkey/adx/src/scalar"

// Compress collapses *e in place into a leaf-equivalent snapshot
// holding its output and its full gradient vector (spec.md §4.6).
// Further Output/GradsWithSeed calls against the result are O(1) and
// O(len(grads)) respectively, and agree with whatever *e computed
// before compression (spec.md §3 invariant 6).
//
// Compressing an already-compressed or leaf expression is harmless:
// it just rebuilds the (trivial) gradient map, matching spec.md's
// "compress(expr) replaces expr in place" phrased generically over
// any expr, not only interior nodes.
func (e *Expr[T]) Compress() {
	grads := Grads(*e)
	output := e.output.Clone()
	gen := e.gen

	if e.kind == kInterior {
		releaseInteriorChildren(*e)
	}

	*e = Expr[T]{kind: kCompressed, gen: gen, output: output, grads: grads}
}

// releaseInteriorChildren runs the same iterative unlinking Release
// uses, scoped to one already-detached interior node (refs==1, since
// it is only reachable through the handle being compressed).
func releaseInteriorChildren[T scalar.Scalar[T]](n Expr[T]) {
	ref := childRef[T]{refs: 1, val: n}
	releaseChain(&ref)
}
