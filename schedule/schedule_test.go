package schedule

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/rcaloras/orbitctl/cost"
	"github.com/rcaloras/orbitctl/dynamics"
	"github.com/rcaloras/orbitctl/propagate"
)

func diag(values ...float64) *mat.Dense {
	n := len(values)
	d := mat.NewDense(n, n, nil)
	for i, v := range values {
		d.Set(i, i, v)
	}
	return d
}

// freeDriftCatalogue builds a single-mode HCW catalogue with zero control
// (mode 0 only), used to exercise the sweeps on free drift.
func freeDriftCatalogue(t *testing.T) ModeCatalogue {
	t.Helper()
	h := dynamics.NewHCW(0.0011)
	q := diag(1, 1, 1, 0, 0, 0)
	r := diag(1, 1, 1)
	qf := diag(10, 10, 10, 1, 1, 1)
	c := cost.NewQuadratic(q, r, qf)
	cat, err := NewModeCatalogue(map[ModeID]CatalogueEntry{
		0: {Dynamics: h, Cost: c},
	})
	if err != nil {
		t.Fatalf("NewModeCatalogue: %v", err)
	}
	return cat
}

// threeModeCatalogue adds two constant-thrust modes to the free-drift
// catalogue, one braking radially and one braking along-track.
func threeModeCatalogue(t *testing.T) ModeCatalogue {
	t.Helper()
	h := dynamics.NewHCW(0.0011)
	q := diag(1, 1, 1, 0, 0, 0)
	r := diag(1, 1, 1)
	qf := diag(10, 10, 10, 1, 1, 1)
	c := cost.NewQuadratic(q, r, qf)

	modeZero := dynamics.WithConstantControl{Inner: h, U0: []float64{0, 0, 0}}
	modeRadial := dynamics.WithConstantControl{Inner: h, U0: []float64{-0.01, 0, 0}}
	modeAlong := dynamics.WithConstantControl{Inner: h, U0: []float64{0, -0.01, 0}}

	cat, err := NewModeCatalogue(map[ModeID]CatalogueEntry{
		0: {Dynamics: modeZero, Cost: c},
		1: {Dynamics: modeRadial, Cost: c},
		2: {Dynamics: modeAlong, Cost: c},
	})
	if err != nil {
		t.Fatalf("NewModeCatalogue: %v", err)
	}
	return cat
}

func TestForwardSweepFreeDriftMatchesHCW(t *testing.T) {
	cat := freeDriftCatalogue(t)
	sigma := make(Schedule, 10)
	x0 := []float64{100, 0, 0, 0, -0.2, 0}
	h := 1.0

	x := ForwardSweep(cat, sigma, x0, h)
	if len(x) != 11 {
		t.Fatalf("expected 11 states, got %d", len(x))
	}
	if x[0][0] != x0[0] {
		t.Fatalf("x[0] should equal x0, got %v", x[0])
	}
	hcw := dynamics.NewHCW(0.0011)
	for k := 0; k < len(sigma); k++ {
		want := propagate.Step(propagate.RK4, hcw, x[k], []float64{0, 0, 0}, float64(k)*h, h)
		for i := range want {
			if math.Abs(x[k+1][i]-want[i]) > 1e-12 {
				t.Fatalf("x[%d][%d] = %f, want HCW RK4 step %f", k+1, i, x[k+1][i], want[i])
			}
		}
	}
}

func TestTotalCostIsSumOfStagePlusTerminal(t *testing.T) {
	cat := freeDriftCatalogue(t)
	sigma := make(Schedule, 5)
	x0 := []float64{100, 0, 0, 0, -0.2, 0}
	h := 1.0
	x := ForwardSweep(cat, sigma, x0, h)

	want := 0.0
	for k := 0; k < len(sigma)-1; k++ {
		entry := cat.Get(sigma[k])
		want += entry.Cost.Stage(x[k], zeroControl(entry.Dynamics.ControlDim()))
	}
	last := cat.Get(sigma[len(sigma)-1])
	want += last.Cost.Terminal(x[len(sigma)-1])

	got := TotalCost(cat, sigma, x)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("TotalCost = %f, want %f", got, want)
	}
}

func TestInsertionGradientIsZeroForIncumbentMode(t *testing.T) {
	cat := threeModeCatalogue(t)
	sigma := Schedule{0, 1, 2, 0, 1}
	x0 := []float64{100, 0, 0, 0, -0.2, 0}
	h := 1.0

	x := ForwardSweep(cat, sigma, x0, h)
	p := BackwardSweep(cat, sigma, x, h)
	grad := ComputeInsertionGradient(cat, sigma, x, p, h)

	for k, row := range grad.D {
		incumbent := sigma[k]
		modes := cat.Modes()
		for mi, m := range modes {
			if m == incumbent && math.Abs(row[mi]) > 1e-6 {
				t.Fatalf("D[%d][incumbent=%d] = %f, want ~0", k, incumbent, row[mi])
			}
		}
	}
}

func TestOptimiseConvergesOnThreeModeCatalogue(t *testing.T) {
	cat := threeModeCatalogue(t)
	x0 := []float64{100, 50, 0, 0.05, -0.2, 0}
	h := 1.0
	opt := DefaultOptions()
	opt.MaxIterations = 50

	result := Optimise(cat, 20, x0, h, opt)

	if result.Status != Converged && result.Status != MaxIterationsReached {
		t.Fatalf("unexpected status %v", result.Status)
	}
	if len(result.Schedule) != 20 {
		t.Fatalf("expected schedule of length 20, got %d", len(result.Schedule))
	}

	initialSigma := make(Schedule, 20)
	initialX := ForwardSweep(cat, initialSigma, x0, h)
	initialCost := TotalCost(cat, initialSigma, initialX)

	if result.Cost > initialCost+1e-9 {
		t.Fatalf("optimised cost %f should not exceed initial all-drift cost %f", result.Cost, initialCost)
	}
}

func TestEligibleSetEmptyWhenDMinNonNegative(t *testing.T) {
	g := InsertionGradient{D: [][]float64{{1, 2}, {0.5, 3}}, DMin: 0.5, Best: []ModeID{0, 0}}
	if s := EligibleSet(g, 0.5); s != nil {
		t.Fatalf("expected no eligible steps when DMin >= 0, got %v", s)
	}
}

func TestOptimiseCallsOnIterationEachPass(t *testing.T) {
	cat := threeModeCatalogue(t)
	x0 := []float64{100, 50, 0, 0.05, -0.2, 0}
	h := 1.0
	opt := DefaultOptions()
	opt.MaxIterations = 5

	calls := 0
	opt.OnIteration = func(iteration int, cost, dMin float64) { calls++ }

	Optimise(cat, 10, x0, h, opt)
	if calls == 0 {
		t.Fatal("expected OnIteration to be called at least once")
	}
}

func TestOptimiseStopsOnRelativeTolerance(t *testing.T) {
	cat := threeModeCatalogue(t)
	x0 := []float64{100, 50, 0, 0.05, -0.2, 0}
	h := 1.0
	opt := DefaultOptions()
	opt.MaxIterations = 50
	opt.RelativeCostTolerance = 0.5 // deliberately loose, forces an early stop

	result := Optimise(cat, 20, x0, h, opt)
	if result.Status != Converged {
		t.Fatalf("expected convergence under a loose relative tolerance, got %v", result.Status)
	}
}

func TestArmijoSearchRejectsWhenNoDescent(t *testing.T) {
	cat := freeDriftCatalogue(t)
	sigma := Schedule{0, 0, 0}
	x0 := []float64{100, 0, 0, 0, -0.2, 0}
	h := 1.0
	x := ForwardSweep(cat, sigma, x0, h)
	cost0 := TotalCost(cat, sigma, x)

	// A single-mode catalogue has no alternative modes, so the gradient is
	// identically zero and the eligible set must be empty.
	p := BackwardSweep(cat, sigma, x, h)
	grad := ComputeInsertionGradient(cat, sigma, x, p, h)

	res := ArmijoSearch(cat, sigma, x0, h, grad, cost0, ArmijoOptions{Eta: 0.5, Alpha: 1e-4, Beta: 0.5})
	if res.Accepted {
		t.Fatalf("expected no acceptance with a single-mode catalogue")
	}
}

// TestArmijoSearchAcceptedCandidateSatisfiesSufficientDecrease checks that
// whatever ArmijoSearch accepts under a strict alpha actually satisfies the
// sufficient-decrease inequality J(sigma') - J(sigma) <= alpha*lambda*d_min,
// per spec §8 scenario #5.
func TestArmijoSearchAcceptedCandidateSatisfiesSufficientDecrease(t *testing.T) {
	cat := threeModeCatalogue(t)
	sigma := Schedule{0, 0, 0, 0, 0}
	x0 := []float64{100, 50, 0, 0.05, -0.2, 0}
	h := 1.0
	x := ForwardSweep(cat, sigma, x0, h)
	cost0 := TotalCost(cat, sigma, x)

	p := BackwardSweep(cat, sigma, x, h)
	grad := ComputeInsertionGradient(cat, sigma, x, p, h)

	alpha := 0.5
	res := ArmijoSearch(cat, sigma, x0, h, grad, cost0, ArmijoOptions{Eta: 0.5, Alpha: alpha, Beta: 0.5})
	if !res.Accepted {
		t.Fatalf("expected an acceptance with a descending gradient and lenient contraction")
	}

	xCandidate := ForwardSweep(cat, res.Schedule, x0, h)
	candidateCost := TotalCost(cat, res.Schedule, xCandidate)

	lambda := h * float64(len(EligibleSet(grad, 0.5)))
	for i := 1; i < res.Attempts; i++ {
		lambda *= 0.5
	}

	if candidateCost-cost0 > alpha*lambda*grad.DMin+1e-9 {
		t.Fatalf("accepted candidate violates sufficient decrease: deltaJ=%f bound=%f", candidateCost-cost0, alpha*lambda*grad.DMin)
	}
}
