package schedule

import (
	"github.com/rcaloras/orbitctl/jacobian"
	"github.com/rcaloras/orbitctl/propagate"
)

// Schedule is the dense mode assignment σ: {0..K-1} -> ModeID (spec §9:
// "a dense array of length K indexed by step is simpler and faster than a
// sparse map").
type Schedule []ModeID

// StateSchedule is the dense forward trajectory X[0..K].
type StateSchedule [][]float64

// AdjointSchedule is the dense costate trajectory p[0..K].
type AdjointSchedule [][]float64

func zeroControl(dim int) []float64 { return make([]float64, dim) }

// ForwardSweep propagates x0 under σ and h, producing X of length K+1, per
// spec §4.5.1. The external control is zero throughout: each mode's
// constant thrust is already baked into its catalogue dynamics.
func ForwardSweep(cat ModeCatalogue, sigma Schedule, x0 []float64, h float64) StateSchedule {
	k := len(sigma)
	x := make(StateSchedule, k+1)
	x[0] = append([]float64{}, x0...)
	for step := 0; step < k; step++ {
		f := cat.Get(sigma[step]).Dynamics
		u := zeroControl(f.ControlDim())
		x[step+1] = propagate.Step(propagate.RK4, f, x[step], u, float64(step)*h, h)
	}
	return x
}

// BackwardSweep computes the adjoint trajectory p[0..K] given the forward
// trajectory X, per spec §4.5.2. Sign convention (Open Question (a),
// resolved in SPEC_FULL.md §9): assemble
// ṗ = -(∂f/∂x)ᵀp[k+1] - ∇ₓℓ(X[k],0), then p[k] = p[k+1] - h·ṗ.
func BackwardSweep(cat ModeCatalogue, sigma Schedule, x StateSchedule, h float64) AdjointSchedule {
	k := len(sigma)
	p := make(AdjointSchedule, k+1)

	lastMode := cat.Get(sigma[k-1])
	p[k] = lastMode.Cost.Grad(x[k], zeroControl(lastMode.Dynamics.ControlDim()), true)

	for step := k - 1; step >= 0; step-- {
		entry := cat.Get(sigma[step])
		u := zeroControl(entry.Dynamics.ControlDim())
		jac := jacobian.Of(entry.Dynamics, x[step], u, float64(step)*h)
		gradL := entry.Cost.Grad(x[step], u, false)

		n, _ := jac.Dims()
		pdot := make([]float64, n)
		for i := 0; i < n; i++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				// (∂f/∂x)ᵀ p: row i of Jᵀ is column i of J.
				sum += jac.At(j, i) * p[step+1][j]
			}
			pdot[i] = -sum - gradL[i]
		}
		pk := make([]float64, n)
		for i := 0; i < n; i++ {
			pk[i] = p[step+1][i] - h*pdot[i]
		}
		p[step] = pk
	}
	return p
}

// TotalCost evaluates J(σ, X) = Σ_{k=0}^{K-2} ℓ_{σ(k)}(X[k],0) +
// Φ_{σ(K-1)}(X[K-1]), per spec §4.5.4. Note the terminal term is evaluated
// at X[K-1], not X[K] — X[K] exists only to seed the adjoint's terminal
// condition (spec's literal formula, preserved verbatim; see DESIGN.md).
func TotalCost(cat ModeCatalogue, sigma Schedule, x StateSchedule) float64 {
	k := len(sigma)
	total := 0.0
	for step := 0; step < k-1; step++ {
		entry := cat.Get(sigma[step])
		u := zeroControl(entry.Dynamics.ControlDim())
		total += entry.Cost.Stage(x[step], u)
	}
	last := cat.Get(sigma[k-1])
	total += last.Cost.Terminal(x[k-1])
	return total
}
