// Package dynamics implements the continuous-time plant models the core
// optimises over (spec §3, §4.3): ẋ = f(x,u,t) for two-body, paired
// two-body, HCW, and the augmented μ/x̂/P estimator model, plus the
// decorator that bakes a mode's constant control into any of them.
package dynamics

import "gonum.org/v1/gonum/mat"

// ContinuousDynamics computes ẋ = f(x,u,t). Dim reports the state
// dimension n; ControlDim reports the dimension of u.
type ContinuousDynamics interface {
	F(x, u []float64, t float64) []float64
	Dim() int
	ControlDim() int
}

// AnalyticJacobian is implemented by dynamics models that can produce their
// own closed-form ∂f/∂x (spec §4.4). Models without a natural analytic form
// fall back to jacobian.Central.
type AnalyticJacobian interface {
	JacobianX(x, u []float64, t float64) *mat.Dense
}

// WithConstantControl decorates a ContinuousDynamics with a baked-in
// constant control u0, the mechanism by which a mode's fixed thrust enters
// its catalogue dynamics entry (spec §4.3: "the control input of a mode is
// a constant baked into the dynamics instance used for that mode"). The
// external u passed to F is still added on top, so the decorated model
// remains usable both by the optimiser (external u ≡ 0) and by the
// simulator driver (external u ≡ disturbance sum).
type WithConstantControl struct {
	Inner ContinuousDynamics
	U0    []float64
}

// F implements ContinuousDynamics.
func (m WithConstantControl) F(x, u []float64, t float64) []float64 {
	combined := make([]float64, len(u))
	for i := range combined {
		combined[i] = m.U0[i] + u[i]
	}
	return m.Inner.F(x, combined, t)
}

// Dim implements ContinuousDynamics.
func (m WithConstantControl) Dim() int { return m.Inner.Dim() }

// ControlDim implements ContinuousDynamics.
func (m WithConstantControl) ControlDim() int { return m.Inner.ControlDim() }

// JacobianX forwards to the inner model's analytic Jacobian if available.
// The baked control is constant, so it does not affect ∂f/∂x.
func (m WithConstantControl) JacobianX(x, u []float64, t float64) *mat.Dense {
	aj, ok := m.Inner.(AnalyticJacobian)
	if !ok {
		return nil
	}
	combined := make([]float64, len(u))
	for i := range combined {
		combined[i] = m.U0[i] + u[i]
	}
	return aj.JacobianX(x, combined, t)
}
