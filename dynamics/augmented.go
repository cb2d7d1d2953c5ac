package dynamics

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Augmented implements the controller's internal planning model over the
// 33-dim augmented state (μ: 6, x̂: 6, P upper-triangle: 21), per spec
// §4.3.4:
//
//	μ̇ = Aμ + Bu
//	x̂̇ = Ax̂ + Bu + KC(μ - x̂),  K = P Cᵀ (D Dᵀ)⁻¹
//	Ṗ  = AP + PAᵀ - K C P + F1 P F1ᵀ + (F1 x̂ + F2 u)(F1 x̂ + F2 u)ᵀ
type Augmented struct {
	A, B, C, D, F1, F2 *mat.Dense
}

func sym6Upper(p *mat.Dense) []float64 {
	out := make([]float64, 21)
	k := 0
	for i := 0; i < 6; i++ {
		for j := i; j < 6; j++ {
			out[k] = p.At(i, j)
			k++
		}
	}
	return out
}

func sym6FromUpper(ut []float64) *mat.Dense {
	p := mat.NewDense(6, 6, nil)
	k := 0
	for i := 0; i < 6; i++ {
		for j := i; j < 6; j++ {
			p.Set(i, j, ut[k])
			p.Set(j, i, ut[k])
			k++
		}
	}
	return p
}

// kalmanGain computes K = P Cᵀ (D Dᵀ)⁻¹, panicking (per spec §7: "Kalman
// gain / matrix inversion failure ... Fatal; configuration is invalid") if
// D Dᵀ is singular.
func (a Augmented) kalmanGain(p *mat.Dense) *mat.Dense {
	var ddt mat.Dense
	ddt.Mul(a.D, a.D.T())
	var inv mat.Dense
	if err := inv.Inverse(&ddt); err != nil {
		panic(fmt.Errorf("dynamics: augmented Kalman gain: D*D^T is singular: %w", err))
	}
	var pct mat.Dense
	pct.Mul(p, a.C.T())
	var k mat.Dense
	k.Mul(&pct, &inv)
	return &k
}

// F implements ContinuousDynamics. u is the external 3-dim (or
// config-sized) control applied to both the nominal trajectory and the
// estimate.
func (a Augmented) F(x, u []float64, t float64) []float64 {
	mu := x[0:6]
	xhat := x[6:12]
	p := sym6FromUpper(x[12:33])

	muVec := mat.NewVecDense(6, mu)
	xhatVec := mat.NewVecDense(6, xhat)
	uVec := mat.NewVecDense(len(u), u)

	var aMu, bU mat.VecDense
	aMu.MulVec(a.A, muVec)
	bU.MulVec(a.B, uVec)
	muDot := make([]float64, 6)
	for i := 0; i < 6; i++ {
		muDot[i] = aMu.AtVec(i) + bU.AtVec(i)
	}

	k := a.kalmanGain(p)

	var aXhat mat.VecDense
	aXhat.MulVec(a.A, xhatVec)
	innovation := mat.NewVecDense(6, nil)
	var cInnov mat.VecDense
	var diff mat.VecDense
	diff.SubVec(muVec, xhatVec)
	cInnov.MulVec(a.C, &diff)
	innovation.MulVec(k, &cInnov)
	xhatDot := make([]float64, 6)
	for i := 0; i < 6; i++ {
		xhatDot[i] = aXhat.AtVec(i) + bU.AtVec(i) + innovation.AtVec(i)
	}

	// Ṗ = AP + PAᵀ - KCP + F1 P F1ᵀ + (F1 x̂ + F2 u)(F1 x̂ + F2 u)ᵀ
	var ap, pat, kc, kcp mat.Dense
	ap.Mul(a.A, p)
	pat.Mul(p, a.A.T())
	kc.Mul(k, a.C)
	kcp.Mul(&kc, p)

	var f1P, f1Pf1t mat.Dense
	f1P.Mul(a.F1, p)
	f1Pf1t.Mul(&f1P, a.F1.T())

	var f1Xhat, f2U mat.VecDense
	f1Xhat.MulVec(a.F1, xhatVec)
	f2U.MulVec(a.F2, uVec)
	w := mat.NewVecDense(6, nil)
	for i := 0; i < 6; i++ {
		w.SetVec(i, f1Xhat.AtVec(i)+f2U.AtVec(i))
	}
	var wwt mat.Dense
	wwt.Mul(w, w.T())

	pDot := mat.NewDense(6, 6, nil)
	pDot.Add(&ap, &pat)
	pDot.Sub(pDot, &kcp)
	pDot.Add(pDot, &f1Pf1t)
	pDot.Add(pDot, &wwt)

	out := make([]float64, AugmentedDim)
	copy(out[0:6], muDot)
	copy(out[6:12], xhatDot)
	copy(out[12:33], sym6Upper(pDot))
	return out
}

// AugmentedDim is the dimension of the augmented state (μ:6, x̂:6, upper
// triangle of P: 21).
const AugmentedDim = 33

// Dim implements ContinuousDynamics.
func (a Augmented) Dim() int { return AugmentedDim }

// ControlDim implements ContinuousDynamics.
func (a Augmented) ControlDim() int {
	_, c := a.B.Dims()
	return c
}
