// Package control implements the control surface (spec §4.6): given a
// completed schedule and a query time, it resolves the active mode and
// returns the constant control input baked into that mode's dynamics.
package control

import (
	"math"

	"github.com/rcaloras/orbitctl/dynamics"
	"github.com/rcaloras/orbitctl/schedule"
)

// Status reports whether a query time fell inside the schedule's declared
// window (spec §7).
type Status int

const (
	// InWindow means t fell within [0, len(sigma)*h).
	InWindow Status = iota
	// ClampedToEnd means t was past the schedule's end and was clamped to
	// the last step.
	ClampedToEnd
	// ClampedToStart means t was negative and was clamped to step 0.
	ClampedToStart
)

// Surface resolves a time query against a fixed schedule and catalogue.
type Surface struct {
	Catalogue ModeLookup
	Schedule  schedule.Schedule
	StepSize  float64
}

// ModeLookup is the subset of schedule.ModeCatalogue that Surface needs.
type ModeLookup interface {
	Get(id schedule.ModeID) schedule.CatalogueEntry
}

// At returns the control input active at time t, along with the resolved
// step index, the mode, and whether t had to be clamped into the window.
func (s Surface) At(t float64) (u []float64, step int, mode schedule.ModeID, status Status) {
	k := len(s.Schedule)
	idx := int(math.Floor(t / s.StepSize))
	switch {
	case idx < 0:
		idx = 0
		status = ClampedToStart
	case idx >= k:
		idx = k - 1
		status = ClampedToEnd
	default:
		status = InWindow
	}

	mode = s.Schedule[idx]
	entry := s.Catalogue.Get(mode)
	if wc, ok := entry.Dynamics.(dynamics.WithConstantControl); ok {
		return append([]float64{}, wc.U0...), idx, mode, status
	}
	return make([]float64, entry.Dynamics.ControlDim()), idx, mode, status
}
