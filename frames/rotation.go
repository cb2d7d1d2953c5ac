package frames

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// R1 is the elementary rotation matrix about the 1st axis.
func R1(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 is the elementary rotation matrix about the 2nd axis.
func R2(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 is the elementary rotation matrix about the 3rd axis.
func R3(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// R3R1R3 performs the 3-1-3 Euler rotation used to carry a PQW-frame vector
// into the inertial frame (Schaub & Junkins convention).
func R3R1R3(theta1, theta2, theta3 float64) *mat.Dense {
	s1, c1 := math.Sincos(theta1)
	s2, c2 := math.Sincos(theta2)
	s3, c3 := math.Sincos(theta3)
	return mat.NewDense(3, 3, []float64{
		c3*c1 - s3*c2*s1, c3*s1 + s3*c2*c1, s3 * s2,
		-s3*c1 - c3*c2*s1, -s3*s1 + c3*c2*c1, c3 * s2,
		s2 * s1, -s2 * c1, c2,
	})
}

// MxV multiplies a 3x3 matrix by a 3-vector. There is no dimension check
// beyond what mat.Dense itself enforces.
func MxV(m *mat.Dense, v []float64) []float64 {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(len(v), v))
	return []float64{out.AtVec(0), out.AtVec(1), out.AtVec(2)}
}

// Rot313Vec rotates a PQW-frame vector into the inertial frame via the 3-1-3
// Euler sequence (-ω, -i, -Ω), matching NewOrbitFromOE's COE2RV step.
func Rot313Vec(theta1, theta2, theta3 float64, v []float64) []float64 {
	return MxV(R3R1R3(theta1, theta2, theta3), v)
}
