package frames

import (
	"math"

	"github.com/gonum/floats"
	"github.com/rcaloras/orbitctl/vector"
)

// Tolerances mirror the teacher's orbit.go epsilons, used to guard the
// classical-elements algorithm's circular/equatorial singularities.
const (
	eccentricityEps = 5e-5
	angleEps        = (5e-3 / 360) * (2 * math.Pi)
)

// ElementsToCartesian converts classical orbital elements (a, e, i, Ω, ω, ν,
// angles in radians) about a primary of gravitational parameter mu into an
// inertial-frame Cartesian state [r; v]. Ported from Vallado's COE2RV
// (4th ed., p.118) as implemented in the teacher's NewOrbitFromOE.
func ElementsToCartesian(a, e, i, raan, argp, nu, mu float64) (r, v []float64) {
	p := a * (1 - e*e)
	muOverP := math.Sqrt(mu / p)
	sinNu, cosNu := math.Sincos(nu)
	rPQW := []float64{p * cosNu / (1 + e*cosNu), p * sinNu / (1 + e*cosNu), 0}
	vPQW := []float64{-muOverP * sinNu, muOverP * (e + cosNu), 0}
	r = Rot313Vec(-argp, -i, -raan, rPQW)
	v = Rot313Vec(-argp, -i, -raan, vPQW)
	return
}

// CartesianToElements converts an inertial-frame Cartesian state [r; v] about
// a primary of gravitational parameter mu into classical orbital elements
// (a, e, i, Ω, ω, ν), angles in radians. Ported from Vallado's RV2COE
// (4th ed., p.113) as implemented in the teacher's Orbit.Elements.
func CartesianToElements(r, v []float64, mu float64) (a, e, i, raan, argp, nu float64) {
	hVec := vector.Cross(r, v)
	n := vector.Cross([]float64{0, 0, 1}, hVec)
	vNorm := vector.Norm(v)
	rNorm := vector.Norm(r)
	xi := (vNorm*vNorm)/2 - mu/rNorm
	a = -mu / (2 * xi)

	eVec := make([]float64, 3)
	for k := 0; k < 3; k++ {
		eVec[k] = ((vNorm*vNorm-mu/rNorm)*r[k] - vector.Dot3(r, v)*v[k]) / mu
	}
	e = vector.Norm(eVec)
	if e < eccentricityEps {
		e = eccentricityEps
	}

	i = math.Acos(hVec[2] / vector.Norm(hVec))
	if i < angleEps {
		i = angleEps
	}

	argp = math.Acos(vector.Dot3(n, eVec) / (vector.Norm(n) * e))
	if math.IsNaN(argp) {
		argp = 0
	}
	if eVec[2] < 0 {
		argp = 2*math.Pi - argp
	}

	raan = math.Acos(n[0] / vector.Norm(n))
	if math.IsNaN(raan) {
		raan = angleEps
	}
	if n[1] < 0 {
		raan = 2*math.Pi - raan
	}

	cosNu := vector.Dot3(eVec, r) / (e * rNorm)
	if absCosNu := math.Abs(cosNu); absCosNu > 1 && floats.EqualWithinAbs(absCosNu, 1, 1e-12) {
		cosNu = vector.Sign(cosNu)
	}
	nu = math.Acos(cosNu)
	if math.IsNaN(nu) {
		nu = 0
	}
	if vector.Dot3(r, v) < 0 {
		nu = 2*math.Pi - nu
	}

	i = math.Mod(i, 2*math.Pi)
	raan = math.Mod(raan, 2*math.Pi)
	argp = math.Mod(argp, 2*math.Pi)
	nu = math.Mod(nu, 2*math.Pi)
	return
}

// OrbitalPeriod returns the Keplerian period 2π√(a³/mu).
func OrbitalPeriod(a, mu float64) float64 {
	return 2 * math.Pi * math.Sqrt(a*a*a/mu)
}
