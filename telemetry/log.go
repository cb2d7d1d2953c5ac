package telemetry

import (
	"os"

	kitlog "github.com/go-kit/kit/log"
)

// NewLogger builds a logfmt logger tagged with the run's scenario name,
// the same pattern as the teacher's SCLogInit (spacecraft.go).
func NewLogger(scenario string) kitlog.Logger {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "scenario", scenario)
	return klog
}

// LogIteration logs one outer-loop iteration of the schedule optimiser.
func LogIteration(logger kitlog.Logger, iteration int, cost, dMin float64) {
	logger.Log("level", "info", "subsys", "schedule", "iteration", iteration, "cost", cost, "d_min", dMin)
}

// LogResult logs the optimiser's terminal status.
func LogResult(logger kitlog.Logger, status string, iterations int, cost float64) {
	logger.Log("level", "notice", "subsys", "schedule", "status", status, "iterations", iterations, "cost", cost)
}
