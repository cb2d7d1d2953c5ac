// Package cost implements the stage/terminal cost abstraction (spec §3,
// §4.2): a Cost knows its running cost ℓ(x,u), its terminal cost Φ(x), and
// the gradient of whichever applies at a given time.
package cost

import "gonum.org/v1/gonum/mat"

// Cost is the abstract stage + terminal cost used by a mode.
type Cost interface {
	// Stage returns ℓ(x,u).
	Stage(x, u []float64) float64
	// Terminal returns Φ(x).
	Terminal(x []float64) float64
	// Grad returns ∇ₓΦ(x) if isTerminal, else ∇ₓℓ(x,u).
	Grad(x, u []float64, isTerminal bool) []float64
}

// Quadratic is ℓ(x,u) = xᵀQx + uᵀRu, Φ(x) = xᵀQfx. Q, R and Qf must be
// symmetric and positive semi-definite; Quadratic does not symmetrise them
// itself — the caller is responsible for supplying symmetric matrices
// (spec §4.2).
type Quadratic struct {
	Q, R, Qf *mat.Dense
}

// NewQuadratic builds a Quadratic cost from the given matrices.
func NewQuadratic(q, r, qf *mat.Dense) Quadratic {
	return Quadratic{Q: q, R: r, Qf: qf}
}

func quadForm(m *mat.Dense, v []float64) float64 {
	vec := mat.NewVecDense(len(v), v)
	var mv mat.VecDense
	mv.MulVec(m, vec)
	return mat.Dot(vec, &mv)
}

// Stage implements Cost.
func (q Quadratic) Stage(x, u []float64) float64 {
	return quadForm(q.Q, x) + quadForm(q.R, u)
}

// Terminal implements Cost.
func (q Quadratic) Terminal(x []float64) float64 {
	return quadForm(q.Qf, x)
}

// Grad implements Cost. It returns Qf·x at the terminal step and Q·x
// otherwise: per spec §4.2 the gradient used by the adjoint sweep is the
// (unscaled) Qx / Qfx form, not the calculus-exact 2Qx, which matches the
// source's convention.
func (q Quadratic) Grad(x, u []float64, isTerminal bool) []float64 {
	m := q.Q
	if isTerminal {
		m = q.Qf
	}
	vec := mat.NewVecDense(len(x), x)
	var g mat.VecDense
	g.MulVec(m, vec)
	out := make([]float64, len(x))
	for i := range out {
		out[i] = g.AtVec(i)
	}
	return out
}
