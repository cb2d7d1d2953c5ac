package disturbance

import "math"

// AtmosphereLayer is one band of the piecewise-exponential density model
// (spec §6): valid for altitudes >= MinAltitude, density falls off as
// RefDensity * exp(-(h-RefAltitude)/ScaleHeight).
type AtmosphereLayer struct {
	MinAltitude float64
	RefAltitude float64
	RefDensity  float64
	ScaleHeight float64
}

// EarthExponentialAtmosphere is a coarse low-Earth-orbit piecewise-
// exponential density table (US Standard Atmosphere bands, altitudes in
// metres, density in kg/m^3), sufficient for the relative-motion regime
// this simulator targets.
var EarthExponentialAtmosphere = []AtmosphereLayer{
	{MinAltitude: 0, RefAltitude: 0, RefDensity: 1.225, ScaleHeight: 8500},
	{MinAltitude: 150000, RefAltitude: 150000, RefDensity: 2.070e-9, ScaleHeight: 22523},
	{MinAltitude: 300000, RefAltitude: 300000, RefDensity: 1.916e-11, ScaleHeight: 53628},
	{MinAltitude: 500000, RefAltitude: 500000, RefDensity: 6.967e-13, ScaleHeight: 63822},
	{MinAltitude: 750000, RefAltitude: 750000, RefDensity: 2.076e-14, ScaleHeight: 71835},
	{MinAltitude: 1000000, RefAltitude: 1000000, RefDensity: 3.561e-15, ScaleHeight: 124950},
}

func density(layers []AtmosphereLayer, altitude float64) float64 {
	layer := layers[0]
	for _, l := range layers {
		if altitude >= l.MinAltitude {
			layer = l
		}
	}
	return layer.RefDensity * math.Exp(-(altitude-layer.RefAltitude)/layer.ScaleHeight)
}

// Drag is a ballistic-coefficient drag model: acceleration opposes the
// relative velocity of the body through a co-rotating atmosphere, with
// magnitude 0.5*rho*|v_rel|^2 scaled by Cd*A/m. The body is a single flat
// Cd*A term; there is no per-surface integration and no Schaaf-Chambre
// accommodation-coefficient model.
type Drag struct {
	Layers        []AtmosphereLayer
	CentralRadius float64 // body radius, to convert |r| into altitude
	EarthOmega    float64 // atmosphere co-rotation rate, rad/s
	Cd            float64
	Area          float64
	Mass          float64
}

// Accel implements Model. v is the inertial velocity; the atmosphere's
// co-rotation is subtracted to get the relative velocity the spacecraft
// actually experiences drag against.
func (d Drag) Accel(r, v []float64) []float64 {
	x, y, z := r[0], r[1], r[2]
	rn := math.Sqrt(x*x + y*y + z*z)
	altitude := rn - d.CentralRadius
	if altitude < 0 {
		altitude = 0
	}
	rho := density(d.Layers, altitude)

	atmV := []float64{-d.EarthOmega * y, d.EarthOmega * x, 0}
	relV := make([]float64, 3)
	for i := range relV {
		relV[i] = v[i] - atmV[i]
	}
	speed := math.Sqrt(relV[0]*relV[0] + relV[1]*relV[1] + relV[2]*relV[2])
	if speed < 1e-9 || d.Mass == 0 {
		return []float64{0, 0, 0}
	}

	coeff := -0.5 * d.Cd * d.Area / d.Mass * rho * speed
	out := make([]float64, 3)
	for i := range out {
		out[i] = coeff * relV[i]
	}
	return out
}
