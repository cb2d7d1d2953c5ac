// Package state defines the semantic, fixed-dimension vectors the rest of
// orbitctl operates on: spacecraft states (StateVector) and control/
// disturbance inputs (Force). Each concrete type is a small value wrapping
// vector.Fixed with a declared dimension and frame identity, following the
// "no deep inheritance hierarchy" guidance — arithmetic lives on Fixed,
// concrete types just tag it.
package state

import (
	"fmt"

	"github.com/rcaloras/orbitctl/vector"
)

// Vector is satisfied by every concrete state/force type: it can be built
// from and flattened back to a raw array, and it knows its own dimension.
type Vector interface {
	Dim() int
	Raw() []float64
}

// ChiefCartesian is an inertial-frame Cartesian state: [r; v], 6 components.
type ChiefCartesian struct{ vector.Fixed }

// NewChiefCartesian builds a ChiefCartesian from [rx,ry,rz,vx,vy,vz].
func NewChiefCartesian(raw []float64) ChiefCartesian {
	mustLen("ChiefCartesian", raw, 6)
	return ChiefCartesian{vector.NewFixed(raw)}
}

// R returns the position sub-vector.
func (c ChiefCartesian) R() []float64 { return c.Raw()[0:3] }

// V returns the velocity sub-vector.
func (c ChiefCartesian) V() []float64 { return c.Raw()[3:6] }

// RelativeCartesian is a deputy-relative LVLH state: [r; v], 6 components.
type RelativeCartesian struct{ vector.Fixed }

// NewRelativeCartesian builds a RelativeCartesian from [rx,ry,rz,vx,vy,vz].
func NewRelativeCartesian(raw []float64) RelativeCartesian {
	mustLen("RelativeCartesian", raw, 6)
	return RelativeCartesian{vector.NewFixed(raw)}
}

// R returns the relative position sub-vector.
func (c RelativeCartesian) R() []float64 { return c.Raw()[0:3] }

// V returns the relative velocity sub-vector.
func (c RelativeCartesian) V() []float64 { return c.Raw()[3:6] }

// OrbitalElements is the classical element set [a,e,i,Ω,ω,ν], 6 components,
// angles in radians.
type OrbitalElements struct{ vector.Fixed }

// NewOrbitalElements builds an OrbitalElements from [a,e,i,Ω,ω,ν].
// Domain preconditions are enforced here (per spec §7): eccentricity must be
// sub-parabolic and inclination must lie in [0,π].
func NewOrbitalElements(raw []float64) (OrbitalElements, error) {
	mustLen("OrbitalElements", raw, 6)
	a, e, i := raw[0], raw[1], raw[2]
	if e >= 1 {
		return OrbitalElements{}, fmt.Errorf("state: eccentricity %.6f >= 1 not supported", e)
	}
	if a <= 0 {
		return OrbitalElements{}, fmt.Errorf("state: semi-major axis %.6f must be positive", a)
	}
	if i < 0 || i > 3.14159265358979324 {
		return OrbitalElements{}, fmt.Errorf("state: inclination %.6f rad out of [0,pi]", i)
	}
	return OrbitalElements{vector.NewFixed(raw)}, nil
}

// AugmentedDim is the dimension of the augmented estimator state: a 6-dim
// nominal trajectory μ, a 6-dim estimate x̂, and the 21 entries of the upper
// triangle of a 6×6 covariance P.
const AugmentedDim = 6 + 6 + 21

// Augmented packs the controller's internal planning state: nominal
// trajectory μ, estimate x̂, and covariance P (upper triangle only, per
// spec §4.3.4 / §9).
type Augmented struct{ vector.Fixed }

// NewAugmented builds an Augmented state from a flat 33-vector.
func NewAugmented(raw []float64) Augmented {
	mustLen("Augmented", raw, AugmentedDim)
	return Augmented{vector.NewFixed(raw)}
}

// NewAugmentedFrom packs μ (len 6), xhat (len 6), and a symmetric 6×6 P into
// the 33-dim flat representation, symmetrising P first (P ← (P+Pᵀ)/2) to
// guard against drift, per spec §9.
func NewAugmentedFrom(mu, xhat []float64, p *Sym6) Augmented {
	if len(mu) != 6 || len(xhat) != 6 {
		panic("state: mu and xhat must have length 6")
	}
	p.Symmetrize()
	raw := make([]float64, AugmentedDim)
	copy(raw[0:6], mu)
	copy(raw[6:12], xhat)
	copy(raw[12:33], p.UpperTriangle())
	return Augmented{vector.NewFixed(raw)}
}

// Mu returns the nominal-trajectory sub-vector.
func (a Augmented) Mu() []float64 { return a.Raw()[0:6] }

// XHat returns the estimate sub-vector.
func (a Augmented) XHat() []float64 { return a.Raw()[6:12] }

// P returns the covariance, reconstructed from its upper triangle.
func (a Augmented) P() *Sym6 {
	return NewSym6FromUpperTriangle(a.Raw()[12:33])
}

// Sym6 is a symmetric 6×6 matrix stored densely; UpperTriangle extracts the
// 21 independent entries (row-major over the upper triangle including the
// diagonal) used by the augmented state's packed representation.
type Sym6 struct {
	m [6][6]float64
}

// NewSym6 wraps a dense 6x6 row-major slice (36 entries) into a Sym6,
// symmetrising on construction.
func NewSym6(dense []float64) *Sym6 {
	if len(dense) != 36 {
		panic("state: Sym6 requires 36 entries")
	}
	s := &Sym6{}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			s.m[i][j] = dense[i*6+j]
		}
	}
	s.Symmetrize()
	return s
}

// NewSym6FromUpperTriangle rebuilds a Sym6 from its 21 packed entries.
func NewSym6FromUpperTriangle(ut []float64) *Sym6 {
	if len(ut) != 21 {
		panic("state: upper triangle requires 21 entries")
	}
	s := &Sym6{}
	k := 0
	for i := 0; i < 6; i++ {
		for j := i; j < 6; j++ {
			s.m[i][j] = ut[k]
			s.m[j][i] = ut[k]
			k++
		}
	}
	return s
}

// UpperTriangle returns the 21 packed entries, row-major over i<=j.
func (s *Sym6) UpperTriangle() []float64 {
	out := make([]float64, 21)
	k := 0
	for i := 0; i < 6; i++ {
		for j := i; j < 6; j++ {
			out[k] = s.m[i][j]
			k++
		}
	}
	return out
}

// Dense returns the full 6x6 row-major representation.
func (s *Sym6) Dense() []float64 {
	out := make([]float64, 36)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			out[i*6+j] = s.m[i][j]
		}
	}
	return out
}

// At returns P[i][j].
func (s *Sym6) At(i, j int) float64 { return s.m[i][j] }

// Set sets both P[i][j] and P[j][i].
func (s *Sym6) Set(i, j int, v float64) {
	s.m[i][j] = v
	s.m[j][i] = v
}

// Symmetrize enforces P ← (P + Pᵀ)/2 in place.
func (s *Sym6) Symmetrize() {
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			avg := (s.m[i][j] + s.m[j][i]) / 2
			s.m[i][j] = avg
			s.m[j][i] = avg
		}
	}
}

// Force types. Same shape as the corresponding StateVector, but with the
// semantic of a control input or disturbance.

// ThrustForce is a 3-dim Cartesian acceleration/force input.
type ThrustForce struct{ vector.Fixed }

// NewThrustForce builds a ThrustForce from [fx,fy,fz].
func NewThrustForce(raw []float64) ThrustForce {
	mustLen("ThrustForce", raw, 3)
	return ThrustForce{vector.NewFixed(raw)}
}

// ZeroThrust is the zero element of ThrustForce.
func ZeroThrust() ThrustForce {
	return ThrustForce{vector.Zeros(3)}
}

// ChiefCartesianForce is a 6-dim disturbance applied to a ChiefCartesian
// state (first 3 components are typically zero; the model is free to use
// all 6 for generality).
type ChiefCartesianForce struct{ vector.Fixed }

// NewChiefCartesianForce builds a ChiefCartesianForce from a 6-vector.
func NewChiefCartesianForce(raw []float64) ChiefCartesianForce {
	mustLen("ChiefCartesianForce", raw, 6)
	return ChiefCartesianForce{vector.NewFixed(raw)}
}

// ZeroChiefCartesianForce is the zero element of ChiefCartesianForce.
func ZeroChiefCartesianForce() ChiefCartesianForce {
	return ChiefCartesianForce{vector.Zeros(6)}
}

func mustLen(typ string, raw []float64, want int) {
	if len(raw) != want {
		panic(fmt.Sprintf("state: %s requires %d components, got %d", typ, want, len(raw)))
	}
}
