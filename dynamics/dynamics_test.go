package dynamics

import (
	"testing"

	"github.com/gonum/floats"
)

func TestTwoBodyZeroControlIsKeplerian(t *testing.T) {
	tb := TwoBody{Mu: 3.986004e14}
	x := []float64{7e6, 0, 0, 0, 7546.05, 0}
	xdot := tb.F(x, []float64{0, 0, 0}, 0)
	if !floats.Equal(xdot[0:3], x[3:6]) {
		t.Fatalf("rdot should equal v: got %v want %v", xdot[0:3], x[3:6])
	}
	if xdot[3] >= 0 {
		t.Fatalf("vxdot should be centripetal (negative) for +x position, got %f", xdot[3])
	}
}

func TestWithConstantControlAddsBakedInput(t *testing.T) {
	base := TwoBody{Mu: 3.986004e14}
	mode := WithConstantControl{Inner: base, U0: []float64{1, 2, 3}}
	x := []float64{7e6, 0, 0, 0, 7546.05, 0}
	withMode := mode.F(x, []float64{0, 0, 0}, 0)
	plain := base.F(x, []float64{1, 2, 3}, 0)
	if !floats.Equal(withMode, plain) {
		t.Fatalf("baked control mismatch: got %v want %v", withMode, plain)
	}
}

func TestHCWLinear(t *testing.T) {
	h := NewHCW(0.0011)
	x := []float64{10, 10, 10, 0, 0, 0}
	xdot := h.F(x, []float64{0, 0, 0}, 0)
	if !floats.Equal(xdot[0:3], []float64{0, 0, 0}) {
		t.Fatalf("rdot should be zero velocity: got %v", xdot[0:3])
	}
	j := h.JacobianX(x, []float64{0, 0, 0}, 0)
	if j != h.A {
		t.Fatal("HCW Jacobian should be the A matrix itself")
	}
}

func TestPairedTwoBodyControlOnDeputyOnly(t *testing.T) {
	p := PairedTwoBody{Chief: TwoBody{Mu: 3.986004e14}, Deputy: TwoBody{Mu: 3.986004e14}}
	x := make([]float64, 12)
	x[0], x[4] = 7e6, 7546.05
	x[6], x[10] = 7e6, 7546.05
	withU := p.F(x, []float64{1, 1, 1}, 0)
	withoutU := p.F(x, []float64{0, 0, 0}, 0)
	if !floats.Equal(withU[3:6], withoutU[3:6]) {
		t.Fatal("chief half should not see the control")
	}
	if floats.Equal(withU[9:12], withoutU[9:12]) {
		t.Fatalf("deputy half should be affected by the control")
	}
}
