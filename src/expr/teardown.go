package expr

import "github.com/grimkey/adx/src/scalar"

// Release tears down *e if this was the last handle to its subtree,
// following spec.md §4.10's discipline: never recurse through operand
// edges, always walk an explicit worklist instead. Expression depth
// can run into the hundreds of thousands (see scenario S5 in
// spec.md §8), so a naive recursive free would overflow the native
// stack long before Go's GC would ever need to care.
//
// After Release, *e reads as evacuated; touching it again (Output,
// Generation, ...) panics, matching spec.md §7's treatment of
// programmer errors.
func (e *Expr[T]) Release() {
	if e.kind != kInterior {
		e.evacuate()
		return
	}

	root := childRef[T]{refs: 1, val: *e}
	e.evacuate()
	releaseChain(&root)
}

func (e *Expr[T]) evacuate() {
	*e = Expr[T]{kind: kEvacuated}
}

// releaseChain drops one reference to ref and, if that was the last
// one, iteratively unwinds the subtree it owned.
func releaseChain[T scalar.Scalar[T]](ref *childRef[T]) {
	ref.refs--
	if ref.refs > 0 {
		return
	}

	work := []*childRef[T]{ref}
	for len(work) > 0 {
		n := len(work) - 1
		cur := work[n]
		work = work[:n]

		if cur.val.kind != kInterior {
			continue
		}
		if cur.val.left != nil {
			l := cur.val.left
			cur.val.left = nil
			l.refs--
			if l.refs == 0 {
				work = append(work, l)
			}
		}
		if cur.val.right != nil {
			r := cur.val.right
			cur.val.right = nil
			r.refs--
			if r.refs == 0 {
				work = append(work, r)
			}
		}
	}
}
