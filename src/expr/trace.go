package expr

import "github.com/grimkey/adx/src/scalar"

// TraceNode is a read-only snapshot of one node visited by Trace: enough
// for a diagnostic renderer to draw the DAG without reaching into
// childRef internals (spec.md keeps the graph representation private to
// this package; Trace is the sanctioned escape hatch for tooling).
type TraceNode[T scalar.Scalar[T]] struct {
	Kind     string
	Op       string
	VarName  string
	Output   T
	Gen      uint64
	Children []int
}

// Trace walks root and returns one TraceNode per distinct cell reachable
// from it, in a stable order where every node appears after all of its
// children (so Children indices always point backward into the slice).
// A cell reached through several parents appears exactly once; every
// parent's Children list its single index. Each operand edge built by
// buildBinary/buildUnary gets its own cell, so a handle passed as both
// operands of one node (x+x, x*x) appears once per edge, while the
// cells beneath it are shared and appear once.
//
// Like Grads and Release, this never recurses: node generation strictly
// decreases along every edge, so an iterative post-order walk over an
// explicit stack is sufficient however deep root is.
func Trace[T scalar.Scalar[T]](root Expr[T]) []TraceNode[T] {
	type frame struct {
		ref      *childRef[T]
		val      Expr[T]
		visiting bool
	}

	index := make(map[*childRef[T]]int)
	var nodes []TraceNode[T]

	var stack []frame
	stack = append(stack, frame{val: root})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.ref != nil {
			if i, ok := index[top.ref]; ok {
				_ = i
				stack = stack[:len(stack)-1]
				continue
			}
		}

		if top.visiting {
			n := TraceNode[T]{
				Kind: kindName(top.val.kind),
				Op:   top.val.op.String(),
				Gen:  top.val.gen,
			}
			if vid, ok := top.val.AsVar(); ok {
				n.VarName = vid.String()
			}
			n.Output = top.val.Output()
			if top.val.kind == kInterior {
				if top.val.left != nil {
					if i, ok := index[top.val.left]; ok {
						n.Children = append(n.Children, i)
					}
				}
				if top.val.right != nil {
					if i, ok := index[top.val.right]; ok {
						n.Children = append(n.Children, i)
					}
				}
			}
			nodes = append(nodes, n)
			if top.ref != nil {
				index[top.ref] = len(nodes) - 1
			}
			stack = stack[:len(stack)-1]
			continue
		}

		top.visiting = true
		if top.val.kind == kInterior {
			if top.val.left != nil {
				if _, ok := index[top.val.left]; !ok {
					stack = append(stack, frame{ref: top.val.left, val: top.val.left.val})
				}
			}
			if top.val.right != nil {
				if _, ok := index[top.val.right]; !ok {
					stack = append(stack, frame{ref: top.val.right, val: top.val.right.val})
				}
			}
		}
	}

	return nodes
}

func kindName(k kind) string {
	switch k {
	case kLeafVar:
		return "var"
	case kLeafConst:
		return "const"
	case kInterior:
		return "interior"
	case kCompressed:
		return "compressed"
	default:
		return "evacuated"
	}
}
