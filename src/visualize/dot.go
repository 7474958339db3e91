// Package visualize renders diagnostic views of an expression graph and
// its gradients. None of it participates in forward/backward math; it
// only reads the snapshots expr already exposes (expr.Trace, Grads)
// and hands them to imaging/rendering libraries.
package visualize

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/grimkey/adx/src/expr"
	"github.com/grimkey/adx/src/scalar"
)

// RenderDOT lays out root's traced DAG with graphviz and returns the
// rendered image bytes in the given format (graphviz.PNG, graphviz.SVG,
// ...). There is one graph node per TraceNode that expr.Trace reports,
// so its sharing rules carry over: a handle used as both operands of
// one node (x+x, x*x) is drawn once per edge.
func RenderDOT[T scalar.Scalar[T]](ctx context.Context, root expr.Expr[T], format graphviz.Format) ([]byte, error) {
	nodes := expr.Trace(root)
	if len(nodes) == 0 {
		return nil, fmt.Errorf("visualize: nothing to render")
	}

	g, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("visualize: open graphviz: %w", err)
	}
	defer g.Close()

	graph, err := g.Graph()
	if err != nil {
		return nil, fmt.Errorf("visualize: new graph: %w", err)
	}
	defer graph.Close()

	gnodes := make([]*cgraph.Node, len(nodes))
	for i, n := range nodes {
		gn, err := graph.CreateNodeByName(fmt.Sprintf("n%d", i))
		if err != nil {
			return nil, fmt.Errorf("visualize: create node: %w", err)
		}
		gn.SetLabel(nodeLabel(n))
		if n.Kind == "var" {
			gn.SetShape(cgraph.BoxShape)
		}
		gnodes[i] = gn
	}

	for i, n := range nodes {
		for _, c := range n.Children {
			e, err := graph.CreateEdgeByName(fmt.Sprintf("n%d-n%d", i, c), gnodes[i], gnodes[c])
			if err != nil {
				return nil, fmt.Errorf("visualize: create edge: %w", err)
			}
			e.SetLabel("")
		}
	}

	var buf bytes.Buffer
	if err := g.Render(ctx, graph, format, &buf); err != nil {
		return nil, fmt.Errorf("visualize: render: %w", err)
	}
	return buf.Bytes(), nil
}

func nodeLabel[T scalar.Scalar[T]](n expr.TraceNode[T]) string {
	if n.Kind == "var" {
		return fmt.Sprintf("%s\\n%v", n.VarName, n.Output)
	}
	if n.Kind == "const" {
		return fmt.Sprintf("const\\n%v", n.Output)
	}
	return fmt.Sprintf("%s\\n%v", n.Op, n.Output)
}
