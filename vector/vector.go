// Package vector provides the dense vector/matrix façade used throughout
// orbitctl: fixed-size real vectors with typed arithmetic, and the small set
// of matrix operations (product, inverse, elementwise) the rest of the
// module needs. It is a thin, BLAS-backed layer over gonum/mat, mirroring
// the role github.com/gonum/matrix/mat64 plays in the teacher codebase this
// was adapted from.
package vector

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Fixed is a dense, fixed-dimension real vector. It is the common storage
// embedded by every concrete StateVector/Force type.
type Fixed struct {
	v []float64
}

// NewFixed builds a Fixed vector from a flat slice. The slice is copied, so
// the caller may reuse or mutate the original afterwards.
func NewFixed(data []float64) Fixed {
	cp := make([]float64, len(data))
	copy(cp, data)
	return Fixed{v: cp}
}

// Zeros returns a Fixed vector of the given dimension, all zero.
func Zeros(n int) Fixed {
	return Fixed{v: make([]float64, n)}
}

// Dim returns the vector's dimension.
func (f Fixed) Dim() int {
	return len(f.v)
}

// Raw returns the underlying flat array. Construction from this array via
// NewFixed followed by Raw is the identity.
func (f Fixed) Raw() []float64 {
	cp := make([]float64, len(f.v))
	copy(cp, f.v)
	return cp
}

// At returns the i-th component.
func (f Fixed) At(i int) float64 {
	return f.v[i]
}

func (f Fixed) mustMatch(g Fixed) {
	if f.Dim() != g.Dim() {
		panic(fmt.Sprintf("vector: dimension mismatch %d != %d", f.Dim(), g.Dim()))
	}
}

// Add returns f + g, element-wise. Panics if dimensions differ.
func (f Fixed) Add(g Fixed) Fixed {
	f.mustMatch(g)
	out := make([]float64, f.Dim())
	for i := range out {
		out[i] = f.v[i] + g.v[i]
	}
	return Fixed{v: out}
}

// Sub returns f - g, element-wise. Panics if dimensions differ.
func (f Fixed) Sub(g Fixed) Fixed {
	f.mustMatch(g)
	out := make([]float64, f.Dim())
	for i := range out {
		out[i] = f.v[i] - g.v[i]
	}
	return Fixed{v: out}
}

// Scale returns s·f.
func (f Fixed) Scale(s float64) Fixed {
	out := make([]float64, f.Dim())
	for i := range out {
		out[i] = s * f.v[i]
	}
	return Fixed{v: out}
}

// Div returns f/s. Panics if s is zero.
func (f Fixed) Div(s float64) Fixed {
	if s == 0 {
		panic("vector: division by zero")
	}
	return f.Scale(1 / s)
}

// Dot returns the inner product of f and g.
func (f Fixed) Dot(g Fixed) float64 {
	f.mustMatch(g)
	return mat.NewVecDense(f.Dim(), f.v).Dot(mat.NewVecDense(g.Dim(), g.v))
}

// MatVec returns M·f as a Fixed vector, where M is n×f.Dim().
func (f Fixed) MatVec(m *mat.Dense) Fixed {
	r, c := m.Dims()
	if c != f.Dim() {
		panic(fmt.Sprintf("vector: matrix has %d columns, vector has dim %d", c, f.Dim()))
	}
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(f.Dim(), f.v))
	raw := make([]float64, r)
	for i := 0; i < r; i++ {
		raw[i] = out.AtVec(i)
	}
	return Fixed{v: raw}
}

// IsZero reports whether every component is exactly zero.
func (f Fixed) IsZero() bool {
	for _, x := range f.v {
		if x != 0 {
			return false
		}
	}
	return true
}

// Identity returns an n×n identity matrix, mirroring the teacher's
// DenseIdentity helper (math.go).
func Identity(n int) *mat.Dense {
	return ScaledIdentity(n, 1)
}

// ScaledIdentity returns an n×n matrix equal to s·I.
func ScaledIdentity(n int, s float64) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, s)
	}
	return d
}

// Inverse returns the inverse of m, or an error if m is singular. The
// augmented dynamics' Kalman gain does not go through Inverse: it inverts
// D·Dᵀ itself and panics if that matrix is singular.
func Inverse(m *mat.Dense) (*mat.Dense, error) {
	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return nil, fmt.Errorf("vector: singular matrix: %w", err)
	}
	return &inv, nil
}

// Norm returns the Euclidean norm of v.
func Norm(v []float64) float64 {
	return mat.Norm(mat.NewVecDense(len(v), v), 2)
}

// Unit returns the unit vector of v, or the zero vector if v is
// (numerically) zero.
func Unit(v []float64) []float64 {
	n := Norm(v)
	if n < 1e-12 {
		return make([]float64, len(v))
	}
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / n
	}
	return out
}

// Dot3 is the plain inner product of two slices (no BLAS indirection),
// mirroring the teacher's unexported `dot` helper used on the hot path of
// the element-extraction routines.
func Dot3(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// Cross is the 3-vector cross product a × b.
func Cross(a, b []float64) []float64 {
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Sign returns the sign of v, treating values within 1e-12 of zero as
// positive (mirrors teacher's Sign in math.go, used to dodge NaN from
// math.Acos at the edge of its domain).
func Sign(v float64) float64 {
	if v > -1e-12 && v < 1e-12 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 1
}
