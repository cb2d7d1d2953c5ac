package schedule

import (
	"math"
	"time"
)

// OptimiserStatus reports why the outer loop stopped (spec §7).
type OptimiserStatus int

const (
	// Converged means the loop stopped on its own criteria: the first-order
	// certificate d_min >= -GradientTolerance held, the Armijo search found
	// no accepted step, or an accepted step's cost decrease fell within the
	// configured cost tolerance.
	Converged OptimiserStatus = iota
	// MaxIterationsReached means the iteration cap was hit before convergence.
	MaxIterationsReached
	// DeadlineExceeded means the wall-clock deadline passed before convergence.
	DeadlineExceeded
)

func (s OptimiserStatus) String() string {
	switch s {
	case Converged:
		return "converged"
	case MaxIterationsReached:
		return "max-iterations-reached"
	case DeadlineExceeded:
		return "deadline-exceeded"
	default:
		return "unknown"
	}
}

// Options parameterises the outer optimisation loop (spec §4.5.5).
type Options struct {
	Eta                   float64
	Alpha                 float64
	Beta                  float64
	MaxIterations         int
	CostTolerance         float64 // absolute stop on J_old - J_new after an accepted step, default 0.01
	RelativeCostTolerance float64 // optional, 0 disables; when set it replaces the CostTolerance stop
	GradientTolerance     float64 // first-order certificate: stop when d_min >= -GradientTolerance, default 0.01
	Deadline              time.Time
	OnIteration           func(iteration int, cost, dMin float64) // optional progress callback
}

// DefaultOptions returns the spec's default Armijo/termination parameters.
func DefaultOptions() Options {
	return Options{
		Eta:               0.5,
		Alpha:             1e-4,
		Beta:              0.5,
		MaxIterations:     200,
		CostTolerance:     0.01,
		GradientTolerance: 0.01,
	}
}

// Result is the outcome of Optimise.
type Result struct {
	Schedule   Schedule
	States     StateSchedule
	Cost       float64
	Status     OptimiserStatus
	Iterations int
}

// Optimise runs the forward sweep / backward sweep / insertion gradient /
// Armijo search loop to a first-order optimum, per spec §4.5.5. It starts
// every step at mode 0 (the catalogue's required initial mode); use
// OptimiseFrom to start from a different initial schedule.
func Optimise(cat ModeCatalogue, steps int, x0 []float64, h float64, opt Options) Result {
	sigma := make(Schedule, steps)
	for i := range sigma {
		sigma[i] = 0
	}
	return OptimiseFrom(cat, sigma, x0, h, opt)
}

// OptimiseFrom is Optimise starting from a caller-supplied initial schedule.
func OptimiseFrom(cat ModeCatalogue, sigma Schedule, x0 []float64, h float64, opt Options) Result {
	costTolerance := opt.CostTolerance
	if costTolerance == 0 {
		costTolerance = 0.01
	}
	gradTolerance := opt.GradientTolerance
	if gradTolerance == 0 {
		gradTolerance = 0.01
	}
	maxIter := opt.MaxIterations
	if maxIter <= 0 {
		maxIter = 200
	}

	x := ForwardSweep(cat, sigma, x0, h)
	cost := TotalCost(cat, sigma, x)

	iter := 0
	for ; iter < maxIter; iter++ {
		if !opt.Deadline.IsZero() && !timeNow().Before(opt.Deadline) {
			return Result{Schedule: sigma, States: x, Cost: cost, Status: DeadlineExceeded, Iterations: iter}
		}

		p := BackwardSweep(cat, sigma, x, h)
		grad := ComputeInsertionGradient(cat, sigma, x, p, h)

		if opt.OnIteration != nil {
			opt.OnIteration(iter, cost, grad.DMin)
		}

		if grad.DMin >= -gradTolerance {
			return Result{Schedule: sigma, States: x, Cost: cost, Status: Converged, Iterations: iter}
		}

		res := ArmijoSearch(cat, sigma, x0, h, grad, cost, ArmijoOptions{
			Eta:   opt.Eta,
			Alpha: opt.Alpha,
			Beta:  opt.Beta,
		})
		if !res.Accepted {
			return Result{Schedule: sigma, States: x, Cost: cost, Status: Converged, Iterations: iter}
		}

		sigma = res.Schedule
		x = ForwardSweep(cat, sigma, x0, h)
		newCost := TotalCost(cat, sigma, x)

		// Open Question (b): a configured relative tolerance takes
		// precedence over, and replaces, the absolute cost-decrease stop.
		if opt.RelativeCostTolerance > 0 {
			if cost-newCost <= opt.RelativeCostTolerance*math.Abs(cost) {
				cost = newCost
				return Result{Schedule: sigma, States: x, Cost: cost, Status: Converged, Iterations: iter + 1}
			}
		} else if cost-newCost <= costTolerance {
			// Spec §4.5.5 / §9(b): stop once a step no longer decreases cost
			// by more than CostTolerance, independent of the d_min certificate.
			cost = newCost
			return Result{Schedule: sigma, States: x, Cost: cost, Status: Converged, Iterations: iter + 1}
		}
		cost = newCost
	}
	return Result{Schedule: sigma, States: x, Cost: cost, Status: MaxIterationsReached, Iterations: iter}
}

// timeNow is a var so tests can stub deadline expiry without sleeping.
var timeNow = time.Now
