// Command orbitctl loads a scenario TOML file, optimises a switched-mode
// schedule against it, and runs the simulator driver over the result,
// streaming telemetry to CSV. The flag/scenario-loading shape is adapted
// from the teacher's cmd/mission/main.go.
package main

import (
	"flag"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"time"

	"github.com/rcaloras/orbitctl/config"
	"github.com/rcaloras/orbitctl/cost"
	"github.com/rcaloras/orbitctl/disturbance"
	"github.com/rcaloras/orbitctl/dynamics"
	"github.com/rcaloras/orbitctl/frames"
	"github.com/rcaloras/orbitctl/propagate"
	"github.com/rcaloras/orbitctl/schedule"
	"github.com/rcaloras/orbitctl/simulate"
	"github.com/rcaloras/orbitctl/state"
	"github.com/rcaloras/orbitctl/telemetry"
	"gonum.org/v1/gonum/mat"
)

const defaultScenario = "~~unset~~"

var (
	scenario   string
	verbose    bool
	plotScript string
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "log every optimiser iteration")
	flag.StringVar(&plotScript, "plot", "", "optional script to exec after the run completes, given the CSV path as its only argument")
}

func diag(values ...float64) *mat.Dense {
	n := len(values)
	d := mat.NewDense(n, n, nil)
	for i, v := range values {
		d.Set(i, i, v)
	}
	return d
}

func buildCatalogue(cfg config.SimulationConfig, n float64) (schedule.ModeCatalogue, error) {
	h := dynamics.NewHCW(n)
	q := diag(1, 1, 1, 0, 0, 0)
	r := diag(1, 1, 1)
	qf := diag(100, 100, 100, 10, 10, 10)
	c := cost.NewQuadratic(q, r, qf)

	thrust := 0.01
	entries := map[schedule.ModeID]schedule.CatalogueEntry{
		0: {Dynamics: h, Cost: c},
		1: {Dynamics: dynamics.WithConstantControl{Inner: h, U0: []float64{thrust, 0, 0}}, Cost: c},
		2: {Dynamics: dynamics.WithConstantControl{Inner: h, U0: []float64{-thrust, 0, 0}}, Cost: c},
		3: {Dynamics: dynamics.WithConstantControl{Inner: h, U0: []float64{0, thrust, 0}}, Cost: c},
		4: {Dynamics: dynamics.WithConstantControl{Inner: h, U0: []float64{0, -thrust, 0}}, Cost: c},
	}
	return schedule.NewModeCatalogue(entries)
}

func buildDisturbance(cfg config.DisturbanceConfig) disturbance.Model {
	var models disturbance.Sum
	if cfg.J2 {
		models = append(models, disturbance.J2{Mu: frames.EarthMu, Radius: frames.EarthRadius, J2: frames.EarthJ2})
	}
	if cfg.Drag.Enabled {
		models = append(models, disturbance.Drag{
			Layers:        disturbance.EarthExponentialAtmosphere,
			CentralRadius: frames.EarthRadius,
			Cd:            cfg.Drag.Cd,
			Area:          cfg.Drag.Area,
			Mass:          cfg.Drag.Mass,
		})
	}
	if len(models) == 0 {
		return nil
	}
	return models
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		log.Fatal("no scenario provided, pass -scenario path/to/scenario.toml")
	}
	cfg, err := config.Load(scenario)
	if err != nil {
		log.Fatalf("%s", err)
	}

	logger := telemetry.NewLogger(strings.TrimSuffix(scenario, ".toml"))

	elements, err := state.NewOrbitalElements([]float64{
		cfg.Chief.SemiMajorAxis,
		cfg.Chief.Eccentricity,
		frames.Deg2rad(cfg.Chief.Inclination),
		frames.Deg2rad(cfg.Chief.RAAN),
		frames.Deg2rad(cfg.Chief.ArgPerigee),
		frames.Deg2rad(cfg.Chief.TrueAnomaly),
	})
	if err != nil {
		log.Fatalf("invalid chief orbital elements: %s", err)
	}
	raw := elements.Raw()
	n := frames.MeanMotion(raw[0])

	cat, err := buildCatalogue(cfg, n)
	if err != nil {
		log.Fatalf("building mode catalogue: %s", err)
	}

	relative := state.NewRelativeCartesian(append(append([]float64{}, cfg.Relative.Position...), cfg.Relative.Velocity...))
	x0 := relative.Raw()

	opt := schedule.DefaultOptions()
	if cfg.Scheduler.Eta > 0 {
		opt.Eta = cfg.Scheduler.Eta
	}
	if cfg.Scheduler.Alpha > 0 {
		opt.Alpha = cfg.Scheduler.Alpha
	}
	if cfg.Scheduler.Beta > 0 {
		opt.Beta = cfg.Scheduler.Beta
	}
	if cfg.Scheduler.MaxIterations > 0 {
		opt.MaxIterations = cfg.Scheduler.MaxIterations
	}
	if cfg.Scheduler.CostTolerance > 0 {
		opt.CostTolerance = cfg.Scheduler.CostTolerance
	}
	if cfg.Scheduler.RelativeCostTolerance > 0 {
		opt.RelativeCostTolerance = cfg.Scheduler.RelativeCostTolerance
	}
	if cfg.Scheduler.GradientTolerance > 0 {
		opt.GradientTolerance = cfg.Scheduler.GradientTolerance
	}
	opt.Deadline = cfg.Scheduler.Deadline(time.Now())
	if verbose {
		opt.OnIteration = func(iteration int, cost, dMin float64) {
			telemetry.LogIteration(logger, iteration, cost, dMin)
		}
	}

	h := cfg.Horizon.StepSeconds
	steps := cfg.Horizon.Steps

	result := schedule.Optimise(cat, steps, x0, h, opt)
	telemetry.LogResult(logger, result.Status.String(), result.Iterations, result.Cost)

	method := propagate.RK4
	if cfg.Horizon.Method == "euler" {
		method = propagate.Euler
	}

	driver := simulate.Driver{
		Catalogue:   cat,
		Schedule:    result.Schedule,
		Disturbance: buildDisturbance(cfg.Disturbance),
		Method:      method,
		StepSeconds: h,
		Logger:      logger,
	}

	runResult, err := driver.Run(x0, telemetry.ExportConfig{Path: cfg.Output.CSVPath})
	if err != nil {
		log.Fatalf("running simulation: %s", err)
	}
	fmt.Printf("final state: %v\n", runResult.Final)

	if plotScript != "" && cfg.Output.CSVPath != "" {
		cmd := exec.Command(plotScript, cfg.Output.CSVPath)
		if out, err := cmd.CombinedOutput(); err != nil {
			log.Printf("plot script failed: %s\n%s", err, out)
		}
	}
}
