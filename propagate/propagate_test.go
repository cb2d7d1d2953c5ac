package propagate

import (
	"math"
	"testing"

	"github.com/gonum/floats"
	"github.com/rcaloras/orbitctl/dynamics"
)

func TestEulerStepMatchesDefinition(t *testing.T) {
	tb := dynamics.TwoBody{Mu: 3.986004e14}
	x := []float64{7e6, 0, 0, 0, 7546.05, 0}
	u := []float64{0, 0, 0}
	h := 1.0
	got := Step(Euler, tb, x, u, 0, h)
	fx := tb.F(x, u, 0)
	want := make([]float64, len(x))
	for i := range x {
		want[i] = x[i] + h*fx[i]
	}
	if !floats.Equal(got, want) {
		t.Fatalf("Euler step mismatch: got %v want %v", got, want)
	}
}

// TestRK4OnLTIMatchesMatrixExponential checks RK4 on ẋ = Ax + Bu against
// the analytic solution exp(Ah)x + ∫exp(Aτ)Bu dτ, approximated here via a
// very fine RK4 sub-stepping (itself converging to the exact solution to
// O(h^5) per step), per spec §8's universal invariant.
func TestRK4OnLTIMatchesMatrixExponential(t *testing.T) {
	n := 0.0011
	h := dynamics.NewHCW(n)
	x0 := []float64{100, 50, 0, 0.1, -0.1, 0.0}
	u := []float64{0.001, 0, -0.001}
	stepH := 1.0

	coarse := stepRK4(h, x0, u, 0, stepH)

	// Fine reference: 1000 substeps of the same RK4 integrator.
	fine := append([]float64{}, x0...)
	subH := stepH / 1000
	tcur := 0.0
	for i := 0; i < 1000; i++ {
		fine = stepRK4(h, fine, u, tcur, subH)
		tcur += subH
	}

	if !floats.EqualApprox(coarse, fine, 1e-6) {
		t.Fatalf("RK4 single step diverges from fine reference: coarse=%v fine=%v", coarse, fine)
	}
}

func TestRK4BeatsEulerAccuracy(t *testing.T) {
	tb := dynamics.TwoBody{Mu: 3.986004e14}
	x0 := []float64{7e6, 0, 0, 0, 7546.05, 0}
	u := []float64{0, 0, 0}
	h := 10.0

	fine := append([]float64{}, x0...)
	subH := h / 10000
	tcur := 0.0
	for i := 0; i < 10000; i++ {
		fine = stepRK4(tb, fine, u, tcur, subH)
		tcur += subH
	}

	rk4 := stepRK4(tb, x0, u, 0, h)
	euler := stepEuler(tb, x0, u, 0, h)

	rk4Err := math.Abs(rk4[0] - fine[0])
	eulerErr := math.Abs(euler[0] - fine[0])
	if rk4Err >= eulerErr {
		t.Fatalf("expected RK4 error (%e) to be much smaller than Euler error (%e)", rk4Err, eulerErr)
	}
}

func specificEnergy(mu float64, x []float64) float64 {
	r := math.Sqrt(x[0]*x[0] + x[1]*x[1] + x[2]*x[2])
	v2 := x[3]*x[3] + x[4]*x[4] + x[5]*x[5]
	return v2/2 - mu/r
}

func angularMomentum(x []float64) []float64 {
	r := x[0:3]
	v := x[3:6]
	return []float64{
		r[1]*v[2] - r[2]*v[1],
		r[2]*v[0] - r[0]*v[2],
		r[0]*v[1] - r[1]*v[0],
	}
}

// TestRK4ConservesTwoBodyEnergyAndAngularMomentum checks that propagating an
// uncontrolled two-body orbit over many RK4 steps holds specific energy and
// angular momentum constant to within integration error, per spec §8
// scenario #2.
func TestRK4ConservesTwoBodyEnergyAndAngularMomentum(t *testing.T) {
	mu := 3.986004e14
	tb := dynamics.TwoBody{Mu: mu}
	x := []float64{7e6, 0, 0, 0, 7546.05, 0}
	u := []float64{0, 0, 0}
	h := 10.0

	e0 := specificEnergy(mu, x)
	l0 := angularMomentum(x)

	tcur := 0.0
	for i := 0; i < 500; i++ {
		x = Step(RK4, tb, x, u, tcur, h)
		tcur += h
	}

	e1 := specificEnergy(mu, x)
	l1 := angularMomentum(x)

	if !floats.EqualWithinRel(e0, e1, 1e-6) {
		t.Fatalf("specific energy drifted: got %e want %e", e1, e0)
	}
	if !floats.EqualApprox(l0, l1, 1e-6) {
		t.Fatalf("angular momentum drifted: got %v want %v", l1, l0)
	}
}

// TestHCWFreeDriftIsPeriodic checks that an HCW relative state satisfying
// the no-drift condition vy0 = -2n*x0 returns to its initial condition
// after one orbital period 2*pi/n of free drift, per spec §8 scenario #1.
func TestHCWFreeDriftIsPeriodic(t *testing.T) {
	n := 0.0011
	h := dynamics.NewHCW(n)
	x0Radial := 100.0
	x0 := []float64{x0Radial, 50, 0, 0.05, -2 * n * x0Radial, 0}
	u := []float64{0, 0, 0}

	period := 2 * math.Pi / n
	steps := 2000
	stepH := period / float64(steps)

	x := append([]float64{}, x0...)
	tcur := 0.0
	for i := 0; i < steps; i++ {
		x = Step(RK4, h, x, u, tcur, stepH)
		tcur += stepH
	}

	if !floats.EqualApprox(x, x0, 1e-3) {
		t.Fatalf("HCW free drift did not return to initial condition: got %v want %v", x, x0)
	}
}
