package expr

import (
	"github.com/grimkey/adx/src/id"
	"github.com/grimkey/adx/src/scalar"
)

// work item for the reverse traversal: a node together with the
// gradient flowing into it from whichever parent pushed it.
type backItem[T scalar.Scalar[T]] struct {
	node Expr[T]
	grad T
}

// GradsWithSeed walks the DAG rooted at root with an explicit LIFO
// worklist (spec.md §4.5) and returns, for every distinct variable
// transitively reachable through non-constant edges, seed * d(root)/d(var).
//
// The traversal never recurses: a node has strictly smaller generation
// than its parent, so the worklist is guaranteed to drain, and its
// size is bounded by the width of the DAG's widest cut rather than its
// depth — the same discipline Release uses in teardown.go, for the
// same reason (root can be hundreds of thousands of nodes deep).
func GradsWithSeed[T scalar.Scalar[T]](root Expr[T], seed T) map[id.Id]T {
	result := make(map[id.Id]T)
	work := []backItem[T]{{node: root, grad: seed}}

	for len(work) > 0 {
		n := len(work) - 1
		item := work[n]
		work = work[:n]

		switch item.node.kind {
		case kLeafVar:
			accumulate(result, item.node.varID, item.grad)

		case kLeafConst:
			// contributes nothing; drop.

		case kInterior:
			if item.node.isUnary {
				if item.node.left != nil {
					child := item.node.left.val
					work = append(work, backItem[T]{node: child, grad: item.grad.Mul(item.node.gl)})
				}
				continue
			}
			switch {
			case item.node.left != nil && item.node.right != nil:
				l := item.node.left.val
				r := item.node.right.val
				work = append(work,
					backItem[T]{node: l, grad: item.grad.Clone().Mul(item.node.gl)},
					backItem[T]{node: r, grad: item.grad.Mul(item.node.gr)},
				)
			case item.node.left != nil:
				l := item.node.left.val
				work = append(work, backItem[T]{node: l, grad: item.grad.Mul(item.node.gl)})
			case item.node.right != nil:
				r := item.node.right.val
				work = append(work, backItem[T]{node: r, grad: item.grad.Mul(item.node.gr)})
			}

		case kCompressed:
			for vid, g := range item.node.grads {
				accumulate(result, vid, item.grad.Clone().Mul(g))
			}

		case kEvacuated:
			panic("expr: grads traversal reached an evacuated expression")
		}
	}

	return result
}

// Grads is GradsWithSeed with a seed of one: the gradient of root with
// respect to every input it transitively references.
func Grads[T scalar.Scalar[T]](root Expr[T]) map[id.Id]T {
	var z T
	return GradsWithSeed(root, z.One())
}

func accumulate[T scalar.Scalar[T]](m map[id.Id]T, v id.Id, grad T) {
	if existing, ok := m[v]; ok {
		m[v] = existing.Add(grad)
	} else {
		m[v] = grad
	}
}
