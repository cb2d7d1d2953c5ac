package state

import (
	"testing"

	"github.com/gonum/floats"
)

func TestChiefCartesianRoundTrip(t *testing.T) {
	raw := []float64{7000, 0, 0, 0, 7.5, 0}
	c := NewChiefCartesian(raw)
	if !floats.Equal(c.Raw(), raw) {
		t.Fatalf("round trip failed: got %v want %v", c.Raw(), raw)
	}
	if !floats.Equal(c.R(), raw[0:3]) || !floats.Equal(c.V(), raw[3:6]) {
		t.Fatal("R()/V() split incorrect")
	}
}

func TestOrbitalElementsPreconditions(t *testing.T) {
	if _, err := NewOrbitalElements([]float64{7e6, 1.2, 0, 0, 0, 0}); err == nil {
		t.Fatal("expected error for eccentricity >= 1")
	}
	if _, err := NewOrbitalElements([]float64{-1, 0.1, 0, 0, 0, 0}); err == nil {
		t.Fatal("expected error for non-positive semi-major axis")
	}
	if _, err := NewOrbitalElements([]float64{7e6, 0.1, 4, 0, 0, 0}); err == nil {
		t.Fatal("expected error for inclination out of [0,pi]")
	}
	if _, err := NewOrbitalElements([]float64{7e6, 0.1, 1, 0, 0, 0}); err != nil {
		t.Fatalf("unexpected error for valid elements: %s", err)
	}
}

func TestAugmentedPackUnpack(t *testing.T) {
	mu := []float64{1, 2, 3, 4, 5, 6}
	xhat := []float64{6, 5, 4, 3, 2, 1}
	dense := make([]float64, 36)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			dense[i*6+j] = float64(i*6 + j)
		}
	}
	p := NewSym6(dense)
	aug := NewAugmentedFrom(mu, xhat, p)
	if aug.Dim() != AugmentedDim {
		t.Fatalf("Dim() = %d, want %d", aug.Dim(), AugmentedDim)
	}
	if !floats.Equal(aug.Mu(), mu) {
		t.Fatalf("Mu() = %v", aug.Mu())
	}
	if !floats.Equal(aug.XHat(), xhat) {
		t.Fatalf("XHat() = %v", aug.XHat())
	}
	p2 := aug.P()
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			if p2.At(i, j) != p.At(i, j) {
				t.Fatalf("P mismatch at (%d,%d): got %f want %f", i, j, p2.At(i, j), p.At(i, j))
			}
		}
	}
}

func TestSym6Symmetrize(t *testing.T) {
	dense := make([]float64, 36)
	dense[1] = 10  // (0,1)
	dense[6] = -10 // (1,0)
	s := NewSym6(dense)
	if s.At(0, 1) != s.At(1, 0) {
		t.Fatalf("not symmetric after construction: %f != %f", s.At(0, 1), s.At(1, 0))
	}
	if s.At(0, 1) != 0 {
		t.Fatalf("expected average of +10/-10 to be 0, got %f", s.At(0, 1))
	}
}

func TestDimensionMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on wrong-length construction")
		}
	}()
	NewChiefCartesian([]float64{1, 2, 3})
}
