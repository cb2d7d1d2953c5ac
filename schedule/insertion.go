package schedule

import "github.com/rcaloras/orbitctl/vector"

// InsertionGradient is the matrix D described in spec §4.5.3: D[k][m] is the
// directional derivative of the terminal cost from substituting mode m at
// step k, with columns in the order of cat.Modes(). DMin is min(D); Best[k]
// is the mode that minimises row k.
type InsertionGradient struct {
	D     [][]float64
	DMin  float64
	Best  []ModeID
	modes []ModeID
}

// ComputeInsertionGradient builds D, DMin and Best for the given trajectory
// and adjoint schedule, per spec §4.5.3.
func ComputeInsertionGradient(cat ModeCatalogue, sigma Schedule, x StateSchedule, p AdjointSchedule, h float64) InsertionGradient {
	modes := cat.Modes()
	k := len(sigma)
	d := make([][]float64, k)
	best := make([]ModeID, k)
	dMin := 0.0
	first := true

	for step := 0; step < k; step++ {
		current := cat.Get(sigma[step])
		u := make([]float64, current.Dynamics.ControlDim())
		currentDot := current.Dynamics.F(x[step], u, float64(step)*h)

		row := make([]float64, len(modes))
		bestVal := 0.0
		bestMode := sigma[step]
		bestSet := false
		for mi, m := range modes {
			entry := cat.Get(m)
			um := make([]float64, entry.Dynamics.ControlDim())
			mDot := entry.Dynamics.F(x[step], um, float64(step)*h)
			delta := make([]float64, len(mDot))
			for i := range delta {
				delta[i] = mDot[i] - currentDot[i]
			}
			val := vector.Dot3(p[step], delta)
			row[mi] = val
			if !bestSet || val < bestVal {
				bestVal = val
				bestMode = m
				bestSet = true
			}
			if first || val < dMin {
				dMin = val
				first = false
			}
		}
		d[step] = row
		best[step] = bestMode
	}

	return InsertionGradient{D: d, DMin: dMin, Best: best, modes: modes}
}

// MinAt returns minₘ D[k][m].
func (g InsertionGradient) MinAt(k int) float64 {
	m := g.D[k][0]
	for _, v := range g.D[k] {
		if v < m {
			m = v
		}
	}
	return m
}
