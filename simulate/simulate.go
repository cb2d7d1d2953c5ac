// Package simulate drives a schedule through the plant dynamics and
// optional environmental disturbances, streaming telemetry as it goes.
// The loop structure is adapted from the teacher's Mission.Propagate /
// SetState / GetState / Func pattern (mission.go): a channel-fed
// goroutine consumes samples while the main loop advances the state.
package simulate

import (
	"sync"
	"time"

	kitlog "github.com/go-kit/kit/log"

	"github.com/rcaloras/orbitctl/disturbance"
	"github.com/rcaloras/orbitctl/propagate"
	"github.com/rcaloras/orbitctl/schedule"
	"github.com/rcaloras/orbitctl/telemetry"
)

// Driver ties a fixed schedule, a mode catalogue, an optional disturbance
// model and a propagation method together into a runnable simulation
// (spec §4.6, "the simulator driver").
type Driver struct {
	Catalogue   schedule.ModeCatalogue
	Schedule    schedule.Schedule
	Disturbance disturbance.Model
	Method      propagate.Method
	StepSeconds float64
	Logger      kitlog.Logger
}

// Result is the outcome of a completed Run.
type Result struct {
	States StateHistory
	Final  []float64
}

// StateHistory is the dense forward trajectory produced by Run, X[0..K].
type StateHistory [][]float64

// Run propagates x0 through the schedule, streaming one telemetry.Sample
// per step to conf (if conf is not IsUseless), and returns the full state
// history. It mirrors the teacher's wg.Add/defer wg.Done/wg.Wait pattern
// for waiting on the export goroutine to finish flushing.
func (d Driver) Run(x0 []float64, conf telemetry.ExportConfig) (Result, error) {
	var wg sync.WaitGroup
	var sampleChan chan telemetry.Sample
	var streamErr error

	if !conf.IsUseless() {
		sampleChan = make(chan telemetry.Sample, 1000)
		wg.Add(1)
		go func() {
			defer wg.Done()
			streamErr = telemetry.StreamSamples(conf, sampleChan)
		}()
	}

	k := len(d.Schedule)
	history := make(StateHistory, k+1)
	history[0] = append([]float64{}, x0...)

	if d.Logger != nil {
		d.Logger.Log("level", "info", "subsys", "simulate", "message", "starting run", "steps", k)
	}

	start := time.Now()
	x := history[0]
	for step := 0; step < k; step++ {
		mode := d.Schedule[step]
		entry := d.Catalogue.Get(mode)
		u := make([]float64, entry.Dynamics.ControlDim())
		if d.Disturbance != nil {
			a := d.Disturbance.Accel(x[0:3], x[3:6])
			for i := range u {
				if i < len(a) {
					u[i] += a[i]
				}
			}
		}

		next := propagate.Step(d.Method, entry.Dynamics, x, u, float64(step)*d.StepSeconds, d.StepSeconds)
		history[step+1] = next

		if sampleChan != nil {
			sampleChan <- telemetry.Sample{
				Step:  step,
				Time:  float64(step) * d.StepSeconds,
				State: append([]float64{}, x...),
				Mode:  int(mode),
				U:     append([]float64{}, u...),
			}
		}
		x = next
	}

	if sampleChan != nil {
		close(sampleChan)
	}
	wg.Wait()

	if d.Logger != nil {
		d.Logger.Log("level", "notice", "subsys", "simulate", "message", "run complete", "duration", time.Since(start).String())
	}

	if streamErr != nil {
		return Result{}, streamErr
	}
	return Result{States: history, Final: x}, nil
}
