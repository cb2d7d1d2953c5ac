package dynamics

import "gonum.org/v1/gonum/mat"

// HCW is the linearised Clohessy-Wiltshire relative-motion model ẋ = Ax +
// Bu for mean motion n = sqrt(mu/a³), per spec §4.3.3. B selects
// accelerations onto the velocity sub-block.
type HCW struct {
	A, B *mat.Dense
}

// NewHCW builds the standard 6x6 HCW A matrix and a B that places a 3-dim
// control directly onto [vx,vy,vz].
func NewHCW(n float64) HCW {
	a := mat.NewDense(6, 6, nil)
	a.Set(0, 3, 1)
	a.Set(1, 4, 1)
	a.Set(2, 5, 1)
	a.Set(3, 0, 3*n*n)
	a.Set(3, 4, 2*n)
	a.Set(4, 3, -2*n)
	a.Set(5, 2, -n*n)

	b := mat.NewDense(6, 3, nil)
	b.Set(3, 0, 1)
	b.Set(4, 1, 1)
	b.Set(5, 2, 1)
	return HCW{A: a, B: b}
}

// F implements ContinuousDynamics.
func (h HCW) F(x, u []float64, t float64) []float64 {
	xVec := mat.NewVecDense(6, x)
	uVec := mat.NewVecDense(3, u)
	var ax, bu mat.VecDense
	ax.MulVec(h.A, xVec)
	bu.MulVec(h.B, uVec)
	out := make([]float64, 6)
	for i := 0; i < 6; i++ {
		out[i] = ax.AtVec(i) + bu.AtVec(i)
	}
	return out
}

// Dim implements ContinuousDynamics.
func (h HCW) Dim() int { return 6 }

// ControlDim implements ContinuousDynamics.
func (h HCW) ControlDim() int { return 3 }

// JacobianX implements AnalyticJacobian: for a time-invariant linear system
// the Jacobian is simply A, independent of x, u, t.
func (h HCW) JacobianX(x, u []float64, t float64) *mat.Dense {
	return h.A
}
