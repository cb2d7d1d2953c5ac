package disturbance

import (
	"math"
	"testing"
)

func TestJ2ZeroOnPoles(t *testing.T) {
	j2 := J2{Mu: 3.986004e14, Radius: 6.3781e6, J2: 1.08263e-3}
	r := []float64{0, 0, 7e6}
	a := j2.Accel(r, []float64{0, 0, 0})
	if math.Abs(a[0]) > 1e-12 || math.Abs(a[1]) > 1e-12 {
		t.Fatalf("expected zero in-plane acceleration on the polar axis, got %v", a)
	}
}

func TestJ2NonZeroOffPoles(t *testing.T) {
	j2 := J2{Mu: 3.986004e14, Radius: 6.3781e6, J2: 1.08263e-3}
	r := []float64{7e6, 0, 0}
	a := j2.Accel(r, []float64{0, 0, 0})
	if a[0] >= 0 {
		t.Fatalf("expected inward (negative x) J2 correction at the equator, got %v", a)
	}
}

func TestDragOpposesRelativeVelocity(t *testing.T) {
	d := Drag{
		Layers:        EarthExponentialAtmosphere,
		CentralRadius: 6.3781e6,
		EarthOmega:    7.292115e-5,
		Cd:            2.2,
		Area:          10,
		Mass:          500,
	}
	r := []float64{6.8781e6, 0, 0}
	v := []float64{0, 7600, 0}
	a := d.Accel(r, v)
	if a[1] >= 0 {
		t.Fatalf("expected drag to decelerate along-track motion, got %v", a)
	}
}

func TestSumAddsComponents(t *testing.T) {
	s := Sum{
		J2{Mu: 3.986004e14, Radius: 6.3781e6, J2: 1.08263e-3},
		Drag{Layers: EarthExponentialAtmosphere, CentralRadius: 6.3781e6, Cd: 2.2, Area: 10, Mass: 500},
	}
	r := []float64{6.8781e6, 0, 0}
	v := []float64{0, 7600, 0}
	total := s.Accel(r, v)
	j2Only := s[0].Accel(r, v)
	dragOnly := s[1].Accel(r, v)
	for i := range total {
		want := j2Only[i] + dragOnly[i]
		if math.Abs(total[i]-want) > 1e-15 {
			t.Fatalf("Sum.Accel[%d] = %f, want %f", i, total[i], want)
		}
	}
}
