// Package frames implements the pure, stateless conversions between state
// representations the core consumes as external collaborators (spec §1,
// §6): orbital elements ⇄ Cartesian, and ECI ⇄ LVLH. It also carries the
// handful of celestial/physical constants the rest of the module needs.
package frames

import "math"

const (
	deg2rad = math.Pi / 180
	rad2deg = 1 / deg2rad
)

// Physical constants, per spec §6.
const (
	// EarthMu is Earth's gravitational parameter, in m^3/s^2.
	EarthMu = 3.986004e14
	// EarthRadius is Earth's mean equatorial radius, in meters.
	EarthRadius = 6.3781e6
	// Boltzmann is the Boltzmann constant, in J/K.
	Boltzmann = 1.380649e-23
	// EarthJ2 is Earth's second zonal harmonic coefficient.
	EarthJ2 = 1.08263e-3
)

// Deg2rad converts degrees to radians.
func Deg2rad(d float64) float64 { return d * deg2rad }

// Rad2deg converts radians to degrees.
func Rad2deg(r float64) float64 { return r * rad2deg }

// MeanMotion returns n = sqrt(mu/a^3) for the given semi-major axis.
func MeanMotion(a float64) float64 {
	return math.Sqrt(EarthMu / (a * a * a))
}
