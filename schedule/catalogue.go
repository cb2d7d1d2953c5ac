// Package schedule implements the switched-mode schedule optimiser (spec
// §4.5): the forward state sweep, the backward adjoint sweep, the insertion
// gradient, the Armijo subset line search, and the outer iteration that
// ties them together. This is the core of orbitctl.
package schedule

import (
	"fmt"
	"sort"

	"github.com/rcaloras/orbitctl/cost"
	"github.com/rcaloras/orbitctl/dynamics"
)

// ModeID is an opaque index into a ModeCatalogue.
type ModeID int

// CatalogueEntry pairs the dynamics and cost active for one mode.
type CatalogueEntry struct {
	Dynamics dynamics.ContinuousDynamics
	Cost     cost.Cost
}

// ModeCatalogue is the fixed, construction-time mapping ModeID ->
// (dynamics, cost). Lookup is total over its keys (spec §3).
type ModeCatalogue struct {
	entries map[ModeID]CatalogueEntry
	ordered []ModeID // stable iteration order, for reproducible sweeps
}

// NewModeCatalogue builds a ModeCatalogue from a complete set of entries. It
// rejects an empty catalogue and requires ModeID 0 to be present, since the
// outer loop (spec §4.5.5) initialises every schedule to mode 0.
func NewModeCatalogue(entries map[ModeID]CatalogueEntry) (ModeCatalogue, error) {
	if len(entries) == 0 {
		return ModeCatalogue{}, fmt.Errorf("schedule: catalogue must have at least one mode")
	}
	if _, ok := entries[0]; !ok {
		return ModeCatalogue{}, fmt.Errorf("schedule: catalogue must define mode 0 as the initial mode")
	}
	var dim int
	first := true
	ordered := make([]ModeID, 0, len(entries))
	for id, e := range entries {
		if first {
			dim = e.Dynamics.Dim()
			first = false
		} else if e.Dynamics.Dim() != dim {
			return ModeCatalogue{}, fmt.Errorf("schedule: mode %d has dimension %d, catalogue is %d-dimensional", id, e.Dynamics.Dim(), dim)
		}
		ordered = append(ordered, id)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })
	cp := make(map[ModeID]CatalogueEntry, len(entries))
	for k, v := range entries {
		cp[k] = v
	}
	return ModeCatalogue{entries: cp, ordered: ordered}, nil
}

// Get returns the catalogue entry for id. Missing keys are a programming
// error (spec §7: "Missing schedule key inside declared window") and panic.
func (c ModeCatalogue) Get(id ModeID) CatalogueEntry {
	e, ok := c.entries[id]
	if !ok {
		panic(fmt.Sprintf("schedule: mode %d not in catalogue", id))
	}
	return e
}

// Modes returns the catalogue's keys in a stable, ascending order.
func (c ModeCatalogue) Modes() []ModeID {
	out := make([]ModeID, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Len returns the number of modes in the catalogue.
func (c ModeCatalogue) Len() int { return len(c.ordered) }
