package dynamics

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// TwoBody is ẋ = [v; -μr/|r|³ + u], x = [r;v] (6-dim), u a 3-dim
// acceleration (control or disturbance), per spec §4.3.1.
type TwoBody struct {
	Mu float64
}

// F implements ContinuousDynamics.
func (tb TwoBody) F(x, u []float64, t float64) []float64 {
	r := x[0:3]
	v := x[3:6]
	r3 := math.Pow(r[0]*r[0]+r[1]*r[1]+r[2]*r[2], 1.5)
	bodyAcc := -tb.Mu / r3
	return []float64{
		v[0], v[1], v[2],
		bodyAcc*r[0] + u[0],
		bodyAcc*r[1] + u[1],
		bodyAcc*r[2] + u[2],
	}
}

// Dim implements ContinuousDynamics.
func (tb TwoBody) Dim() int { return 6 }

// ControlDim implements ContinuousDynamics.
func (tb TwoBody) ControlDim() int { return 3 }

// JacobianX implements AnalyticJacobian, ported from the teacher's
// OrbitEstimate.Func two-body STM block (estimate.go).
func (tb TwoBody) JacobianX(x, u []float64, t float64) *mat.Dense {
	rx, ry, rz := x[0], x[1], x[2]
	x2, y2, z2 := rx*rx, ry*ry, rz*rz
	r2 := x2 + y2 + z2
	r32 := math.Pow(r2, 1.5)
	r52 := math.Pow(r2, 2.5)

	a := mat.NewDense(6, 6, nil)
	a.Set(0, 3, 1)
	a.Set(1, 4, 1)
	a.Set(2, 5, 1)

	a.Set(3, 0, 3*tb.Mu*x2/r52-tb.Mu/r32)
	a.Set(4, 0, 3*tb.Mu*rx*ry/r52)
	a.Set(5, 0, 3*tb.Mu*rx*rz/r52)

	a.Set(3, 1, 3*tb.Mu*rx*ry/r52)
	a.Set(4, 1, 3*tb.Mu*y2/r52-tb.Mu/r32)
	a.Set(5, 1, 3*tb.Mu*ry*rz/r52)

	a.Set(3, 2, 3*tb.Mu*rx*rz/r52)
	a.Set(4, 2, 3*tb.Mu*ry*rz/r52)
	a.Set(5, 2, 3*tb.Mu*z2/r52-tb.Mu/r32)
	return a
}

// PairedTwoBody stacks two independent TwoBody models (chief, deputy); the
// external control is applied only to the deputy, per spec §4.3.2.
type PairedTwoBody struct {
	Chief, Deputy TwoBody
}

// F implements ContinuousDynamics. x = [xChief(6); xDeputy(6)].
func (p PairedTwoBody) F(x, u []float64, t float64) []float64 {
	chiefDot := p.Chief.F(x[0:6], []float64{0, 0, 0}, t)
	deputyDot := p.Deputy.F(x[6:12], u, t)
	out := make([]float64, 12)
	copy(out[0:6], chiefDot)
	copy(out[6:12], deputyDot)
	return out
}

// Dim implements ContinuousDynamics.
func (p PairedTwoBody) Dim() int { return 12 }

// ControlDim implements ContinuousDynamics.
func (p PairedTwoBody) ControlDim() int { return 3 }

// JacobianX implements AnalyticJacobian as the block-diagonal stack of the
// two independent two-body Jacobians (the chief and deputy do not couple).
func (p PairedTwoBody) JacobianX(x, u []float64, t float64) *mat.Dense {
	jc := p.Chief.JacobianX(x[0:6], []float64{0, 0, 0}, t)
	jd := p.Deputy.JacobianX(x[6:12], u, t)
	out := mat.NewDense(12, 12, nil)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			out.Set(i, j, jc.At(i, j))
			out.Set(i+6, j+6, jd.At(i, j))
		}
	}
	return out
}
