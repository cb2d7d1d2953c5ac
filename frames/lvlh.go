package frames

import "github.com/rcaloras/orbitctl/vector"

// LVLHBasis returns the three orthonormal LVLH (local-vertical/local-
// horizontal) basis vectors of a chief at inertial position/velocity
// (rChief, vChief), expressed in the inertial frame: x̂ points radially
// outward, ẑ is along the orbit angular momentum, ŷ completes the right-
// handed triad (along-track for a circular orbit).
func LVLHBasis(rChief, vChief []float64) (xhat, yhat, zhat []float64) {
	xhat = vector.Unit(rChief)
	h := vector.Cross(rChief, vChief)
	zhat = vector.Unit(h)
	yhat = vector.Cross(zhat, xhat)
	return
}

// ECIToLVLH expresses the inertial-frame relative state (rRel, vRel) of a
// deputy with respect to a chief at (rChief, vChief) in the chief's LVLH
// frame. vRel must already be the inertial-frame relative velocity (deputy
// minus chief); this function does not itself subtract the chief's
// rotation rate contribution beyond projecting onto the rotating basis the
// way the teacher's station-frame rotations (R2/R3 in rotation.go) project
// ECEF vectors into topocentric SEZ.
func ECIToLVLH(rChief, vChief, rRel, vRel []float64) (rLVLH, vLVLH []float64) {
	x, y, z := LVLHBasis(rChief, vChief)
	rLVLH = []float64{vector.Dot3(x, rRel), vector.Dot3(y, rRel), vector.Dot3(z, rRel)}
	vLVLH = []float64{vector.Dot3(x, vRel), vector.Dot3(y, vRel), vector.Dot3(z, vRel)}
	return
}

// LVLHToECI is the inverse of ECIToLVLH: it expresses an LVLH-frame relative
// state back in the inertial frame given the chief's inertial state.
func LVLHToECI(rChief, vChief, rLVLH, vLVLH []float64) (rRel, vRel []float64) {
	x, y, z := LVLHBasis(rChief, vChief)
	rRel = make([]float64, 3)
	vRel = make([]float64, 3)
	for k := 0; k < 3; k++ {
		rRel[k] = x[k]*rLVLH[0] + y[k]*rLVLH[1] + z[k]*rLVLH[2]
		vRel[k] = x[k]*vLVLH[0] + y[k]*vLVLH[1] + z[k]*vLVLH[2]
	}
	return
}
