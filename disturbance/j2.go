package disturbance

import "math"

// J2 is the Earth oblateness perturbation, ported from the Cartesian
// branch of the teacher's Perturbations.Perturb (perturbations.go): a
// closed-form acceleration correction from the J2 zonal harmonic,
// independent of velocity.
type J2 struct {
	Mu     float64
	Radius float64
	J2     float64
}

// Accel implements Model.
func (p J2) Accel(r, v []float64) []float64 {
	x, y, z := r[0], r[1], r[2]
	rn := math.Sqrt(x*x + y*y + z*z)
	z2 := z * z
	acc := -(3 * p.Mu * p.J2 * p.Radius * p.Radius) / (2 * math.Pow(rn, 5))
	return []float64{
		acc * x * (1 - 5*z2/(rn*rn)),
		acc * y * (1 - 5*z2/(rn*rn)),
		acc * z * (3 - 5*z2/(rn*rn)),
	}
}
