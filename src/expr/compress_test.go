package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grimkey/adx/src/expr"
	"github.com/grimkey/adx/src/id"
)

func TestCompressPreservesOutputAndGrads(t *testing.T) {
	g := id.NewGroup("v")
	e, xid, yid := buildSample(g)

	wantOutput := e.Output()
	wantGrads := expr.Grads(e)

	e.Compress()

	assert.Equal(t, wantOutput, e.Output())
	got := expr.Grads(e)
	assert.InDelta(t, float64(wantGrads[xid]), float64(got[xid]), 1e-9)
	assert.InDelta(t, float64(wantGrads[yid]), float64(got[yid]), 1e-9)
}

func TestCompressThenSeededGrads(t *testing.T) {
	g := id.NewGroup("v")
	e, xid, yid := buildSample(g)

	base := expr.Grads(e)
	e.Compress()

	seeded := expr.GradsWithSeed(e, F(2.0))
	assert.InDelta(t, float64(base[xid])*2, float64(seeded[xid]), 1e-9)
	assert.InDelta(t, float64(base[yid])*2, float64(seeded[yid]), 1e-9)
}

func TestCompressIsConstWhenGradientFree(t *testing.T) {
	c := expr.Constant(F(4.0))
	c.Compress()
	require.True(t, c.IsConst())
}

func TestAccumulatorThenCompress(t *testing.T) {
	g := id.NewGroup("v")
	xid, yid, zid := g.Next(), g.Next(), g.Next()
	x := expr.Var(xid, F(4.2))
	y := expr.Var(yid, F(2.5))
	z := expr.Var(zid, F(3.1))
	one := expr.Constant(F(1.0))

	acc := expr.Zero[F]()
	const n = 2000 // smaller than the full S5 run; the full run is covered in grad_test.go
	for i := 0; i < n; i++ {
		left := expr.Mul(expr.Mul(x.Neg(), y), x).MulScalar(F(3.1))
		right := expr.Mul(expr.Mul(expr.Mul(expr.Mul(z, one), one), z), one)
		acc.AddAssign(left)
		acc.SubAssign(right)
	}

	preGrads := expr.Grads(acc)
	acc.Compress()
	postGrads := expr.GradsWithSeed(acc, F(2.0))

	assert.InDelta(t, float64(preGrads[xid])*2, float64(postGrads[xid]), 1e-2)
	assert.InDelta(t, float64(preGrads[yid])*2, float64(postGrads[yid]), 1e-2)
	assert.InDelta(t, float64(preGrads[zid])*2, float64(postGrads[zid]), 1e-2)
}
