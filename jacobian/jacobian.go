// Package jacobian implements the Jacobian service (spec §4.4): analytic
// Jacobians are taken directly from a dynamics.AnalyticJacobian when
// available, falling back to a central-difference approximation usable as
// an oracle in tests or as the only option for models (like the augmented
// μ/x̂/P dynamics) with no closed form.
package jacobian

import (
	"gonum.org/v1/gonum/mat"

	"github.com/rcaloras/orbitctl/dynamics"
)

// DefaultEpsilon is the default perturbation size for central differences,
// per spec §4.4.
const DefaultEpsilon = 1e-5

// Of returns the Jacobian ∂f/∂x at (x,u,t): the dynamics' own analytic form
// if it implements dynamics.AnalyticJacobian and returns a non-nil matrix,
// else a central-difference approximation with DefaultEpsilon.
func Of(f dynamics.ContinuousDynamics, x, u []float64, t float64) *mat.Dense {
	if aj, ok := f.(dynamics.AnalyticJacobian); ok {
		if j := aj.JacobianX(x, u, t); j != nil {
			return j
		}
	}
	return Central(func(xi []float64) []float64 { return f.F(xi, u, t) }, x, DefaultEpsilon)
}

// Central computes the Jacobian of g: R^n -> R^m at x by central
// differences: column j is (g(x+εeⱼ) - g(x-εeⱼ)) / (2ε), per spec §4.4.
func Central(g func([]float64) []float64, x []float64, eps float64) *mat.Dense {
	n := len(x)
	base := g(x)
	m := len(base)
	jac := mat.NewDense(m, n, nil)
	perturbed := make([]float64, n)
	for j := 0; j < n; j++ {
		copy(perturbed, x)
		perturbed[j] = x[j] + eps
		fPlus := g(perturbed)
		perturbed[j] = x[j] - eps
		fMinus := g(perturbed)
		for i := 0; i < m; i++ {
			jac.Set(i, j, (fPlus[i]-fMinus[i])/(2*eps))
		}
	}
	return jac
}

// CentralScalar is Central specialised to a scalar-valued g (e.g. a cost
// gradient oracle), returning the gradient as a flat vector.
func CentralScalar(g func([]float64) float64, x []float64, eps float64) []float64 {
	wrapped := func(xi []float64) []float64 { return []float64{g(xi)} }
	jac := Central(wrapped, x, eps)
	n := x[:]
	out := make([]float64, len(n))
	for j := range out {
		out[j] = jac.At(0, j)
	}
	return out
}
