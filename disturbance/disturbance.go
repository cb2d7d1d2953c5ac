// Package disturbance implements the environmental force models the
// simulator driver adds on top of a mode's nominal dynamics (spec §6):
// J2 oblateness and atmospheric drag, both expressed as an acceleration
// contribution in the same Cartesian frame as the plant state.
package disturbance

// Model computes an additive acceleration disturbance d(r, v) in m/s^2,
// given the chief's (or deputy's) Cartesian position and velocity. Models
// compose by summation (spec §6: "the driver sums every configured
// disturbance onto the external control input before propagating").
type Model interface {
	Accel(r, v []float64) []float64
}

// Sum combines any number of disturbance models into one.
type Sum []Model

// Accel implements Model by adding every component model's contribution.
func (s Sum) Accel(r, v []float64) []float64 {
	out := make([]float64, 3)
	for _, m := range s {
		a := m.Accel(r, v)
		for i := range out {
			out[i] += a[i]
		}
	}
	return out
}
