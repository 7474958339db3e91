package scalarf64_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grimkey/adx/src/scalar"
	"github.com/grimkey/adx/src/scalarf64"
)

type F = scalarf64.Float64

func TestArithmetic(t *testing.T) {
	a := scalarf64.Of(3.0)
	b := scalarf64.Of(4.0)

	assert.Equal(t, F(7.0), a.Add(b))
	assert.Equal(t, F(-1.0), a.Sub(b))
	assert.Equal(t, F(12.0), a.Mul(b))
	assert.Equal(t, F(0.75), a.Div(b))
	assert.Equal(t, F(-3.0), a.Neg())
	assert.Equal(t, a, a.Clone())
}

func TestIdentities(t *testing.T) {
	var z F
	assert.Equal(t, F(0.0), z.Zero())
	assert.Equal(t, F(1.0), z.One())
	assert.Equal(t, F(2.5), z.FromFloat64(2.5))
}

func TestTranscendentalExtensions(t *testing.T) {
	v := F(2.0)
	assert.InDelta(t, math.Sqrt(2.0), float64(v.Sqrt()), 1e-12)
	assert.InDelta(t, math.Exp(2.0), float64(v.Exp()), 1e-12)
	assert.InDelta(t, math.Log(2.0), float64(v.Log()), 1e-12)
}

func TestSatisfiesScalarContract(t *testing.T) {
	var _ scalar.Scalar[F] = F(0)
	var _ scalar.Sqrter[F] = F(0)
	var _ scalar.Exponentiator[F] = F(0)
	var _ scalar.Logarithmer[F] = F(0)
}

func TestHasExtensionHelpers(t *testing.T) {
	v := F(4.0)

	sq, ok := scalar.HasSqrt[F](v)
	assert.True(t, ok)
	assert.InDelta(t, 2.0, float64(sq.Sqrt()), 1e-12)

	exp, ok := scalar.HasExp[F](v)
	assert.True(t, ok)
	assert.InDelta(t, math.Exp(4.0), float64(exp.Exp()), 1e-12)

	lg, ok := scalar.HasLog[F](v)
	assert.True(t, ok)
	assert.InDelta(t, math.Log(4.0), float64(lg.Log()), 1e-12)
}

func TestStringFormatsAsPlainNumber(t *testing.T) {
	assert.Equal(t, "3.5", F(3.5).String())
	assert.Equal(t, "0", F(0).String())
}
