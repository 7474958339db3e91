package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grimkey/adx/src/expr"
	"github.com/grimkey/adx/src/id"
)

func buildSample(g *id.Group) (expr.Expr[F], id.Id, id.Id) {
	xid, yid := g.Next(), g.Next()
	x := expr.Var(xid, F(1.5))
	y := expr.Var(yid, F(-2.25))
	e := expr.Sub(expr.Mul(x, y), expr.Div(x, y))
	return e, xid, yid
}

func TestSeedScaling(t *testing.T) {
	g := id.NewGroup("v")
	e, xid, yid := buildSample(g)

	base := expr.Grads(e)
	scaled := expr.GradsWithSeed(e, F(3.0))

	assert.InDelta(t, float64(base[xid])*3.0, float64(scaled[xid]), 1e-9)
	assert.InDelta(t, float64(base[yid])*3.0, float64(scaled[yid]), 1e-9)
}

func TestSeedLinearity(t *testing.T) {
	g := id.NewGroup("v")
	e, xid, yid := buildSample(g)

	g1 := expr.GradsWithSeed(e, F(2.0))
	g2 := expr.GradsWithSeed(e, F(5.0))
	sum := expr.GradsWithSeed(e, F(7.0))

	assert.InDelta(t, float64(g1[xid])+float64(g2[xid]), float64(sum[xid]), 1e-9)
	assert.InDelta(t, float64(g1[yid])+float64(g2[yid]), float64(sum[yid]), 1e-9)
}

func TestAccumulatorScenarioS5(t *testing.T) {
	g := id.NewGroup("v")
	xid, yid, zid := g.Next(), g.Next(), g.Next()
	x := expr.Var(xid, F(4.2))
	y := expr.Var(yid, F(2.5))
	z := expr.Var(zid, F(3.1))
	one := expr.Constant(F(1.0))

	acc := expr.Zero[F]()
	const n = 100000
	for i := 0; i < n; i++ {
		left := expr.Mul(expr.Mul(x.Neg(), y), x).MulScalar(F(3.1))
		right := expr.Mul(expr.Mul(expr.Mul(expr.Mul(z, one), one), z), one)
		acc.AddAssign(left)
		acc.SubAssign(right)
	}

	want := n * (-3.1*4.2*4.2*2.5 - 3.1*3.1)
	assert.InDelta(t, want, float64(acc.Output()), 1e-2)

	grads := expr.Grads(acc)
	assert.InDelta(t, n*(-2*3.1*4.2*2.5), float64(grads[xid]), 1e-2)
	assert.InDelta(t, n*(-3.1*4.2*4.2), float64(grads[yid]), 1e-2)
	assert.InDelta(t, n*(-2*3.1), float64(grads[zid]), 1e-2)
}
