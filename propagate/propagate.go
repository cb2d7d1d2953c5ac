// Package propagate implements the fixed-step ODE propagator (spec §4.1):
// Euler and RK4 over any dynamics.ContinuousDynamics, for a constant input u
// held across the step. The propagator is pure — it holds no state between
// calls and allocates only per-step stage slices plus the new state slice it
// returns — and is polymorphic over
// state/control dimension only, not over any concrete state type.
package propagate

import "github.com/rcaloras/orbitctl/dynamics"

// Method selects the integration scheme.
type Method uint8

const (
	// Euler is the first-order explicit Euler step.
	Euler Method = iota + 1
	// RK4 is the classical four-stage Runge-Kutta step.
	RK4
)

// Step advances x by one step of width h under dynamics f, constant control
// u, starting at time t, using the given method.
func Step(method Method, f dynamics.ContinuousDynamics, x, u []float64, t, h float64) []float64 {
	switch method {
	case Euler:
		return stepEuler(f, x, u, t, h)
	case RK4:
		return stepRK4(f, x, u, t, h)
	default:
		panic("propagate: unknown method")
	}
}

func addScaled(a, b []float64, s float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + s*b[i]
	}
	return out
}

// stepEuler computes xₖ₊₁ = xₖ + h·f(xₖ,u,tₖ).
func stepEuler(f dynamics.ContinuousDynamics, x, u []float64, t, h float64) []float64 {
	return addScaled(x, f.F(x, u, t), h)
}

// stepRK4 computes the standard four-stage Runge-Kutta step, with u held
// constant across all stages.
func stepRK4(f dynamics.ContinuousDynamics, x, u []float64, t, h float64) []float64 {
	k1 := f.F(x, u, t)
	k2 := f.F(addScaled(x, k1, h/2), u, t+h/2)
	k3 := f.F(addScaled(x, k2, h/2), u, t+h/2)
	k4 := f.F(addScaled(x, k3, h), u, t+h)

	out := make([]float64, len(x))
	for i := range x {
		out[i] = x[i] + (h/6)*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return out
}
