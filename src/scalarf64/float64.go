// Package scalarf64 provides the IEEE-754 double scalar backend. It is
// the "external" numeric collaborator spec.md §1 keeps out of the
// core's scope: the core only ever sees it through scalar.Scalar.
package scalarf64

import (
	"math"
	"strconv"
)

// Float64 implements scalar.Scalar[Float64] plus the sqrt/exp/log
// extensions. It carries no state beyond the wrapped value, so Zero,
// One and FromFloat64 are safe to call on any receiver including the
// zero value.
type Float64 float64

// Of lifts a plain float64 into the Float64 scalar type.
func Of(v float64) Float64 { return Float64(v) }

func (f Float64) Clone() Float64 { return f }

func (f Float64) Neg() Float64            { return -f }
func (f Float64) Add(rhs Float64) Float64 { return f + rhs }
func (f Float64) Sub(rhs Float64) Float64 { return f - rhs }
func (f Float64) Mul(rhs Float64) Float64 { return f * rhs }
func (f Float64) Div(rhs Float64) Float64 { return f / rhs }

func (f Float64) Zero() Float64                 { return 0 }
func (f Float64) One() Float64                  { return 1 }
func (f Float64) FromFloat64(v float64) Float64 { return Float64(v) }

func (f Float64) Sqrt() Float64 { return Float64(math.Sqrt(float64(f))) }
func (f Float64) Exp() Float64  { return Float64(math.Exp(float64(f))) }
func (f Float64) Log() Float64  { return Float64(math.Log(float64(f))) }

// Float64 unwraps the scalar back to a plain float64, mostly useful
// for reporting/visualization code outside the core.
func (f Float64) Float64() float64 { return float64(f) }

func (f Float64) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}
