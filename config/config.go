// Package config loads orbitctl scenario files: the chief's orbital
// elements, the initial relative state, step size, horizon, disturbance
// toggles and the scheduler's optimisation parameters. It is ported from
// the teacher's smdConfig/viper idiom (config.go), trimmed of the
// SPICE/Horizons/Meeus ephemeris machinery that scope has no use for
// (spec §4 Non-goals: no multi-body ephemeris).
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// SimulationConfig is the top-level scenario description (spec §6).
type SimulationConfig struct {
	Chief       ChiefConfig       `mapstructure:"chief"`
	Relative    RelativeConfig    `mapstructure:"relative"`
	Horizon     HorizonConfig     `mapstructure:"horizon"`
	Scheduler   SchedulerConfig   `mapstructure:"scheduler"`
	Disturbance DisturbanceConfig `mapstructure:"disturbance"`
	Output      OutputConfig      `mapstructure:"output"`
}

// ChiefConfig describes the chief's initial orbital elements.
type ChiefConfig struct {
	SemiMajorAxis float64 `mapstructure:"semi_major_axis"`
	Eccentricity  float64 `mapstructure:"eccentricity"`
	Inclination   float64 `mapstructure:"inclination_deg"`
	RAAN          float64 `mapstructure:"raan_deg"`
	ArgPerigee    float64 `mapstructure:"arg_perigee_deg"`
	TrueAnomaly   float64 `mapstructure:"true_anomaly_deg"`
}

// RelativeConfig describes the deputy's initial LVLH relative state.
type RelativeConfig struct {
	Position []float64 `mapstructure:"position"`
	Velocity []float64 `mapstructure:"velocity"`
}

// HorizonConfig describes the propagation horizon.
type HorizonConfig struct {
	StepSeconds float64 `mapstructure:"step_seconds"`
	Steps       int     `mapstructure:"steps"`
	Method      string  `mapstructure:"method"` // "euler" or "rk4"
}

// SchedulerConfig mirrors schedule.Options (spec §4.5.5).
type SchedulerConfig struct {
	Eta                   float64 `mapstructure:"eta"`
	Alpha                 float64 `mapstructure:"alpha"`
	Beta                  float64 `mapstructure:"beta"`
	MaxIterations         int     `mapstructure:"max_iterations"`
	CostTolerance         float64 `mapstructure:"cost_tolerance"`
	RelativeCostTolerance float64 `mapstructure:"relative_cost_tolerance"`
	GradientTolerance     float64 `mapstructure:"gradient_tolerance"`
	DeadlineSeconds       float64 `mapstructure:"deadline_seconds"`
}

// DisturbanceConfig toggles the environmental force models (spec §6).
type DisturbanceConfig struct {
	J2   bool       `mapstructure:"j2"`
	Drag DragConfig `mapstructure:"drag"`
}

// DragConfig parameterises the ballistic-coefficient drag model.
type DragConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Cd      float64 `mapstructure:"cd"`
	Area    float64 `mapstructure:"area"`
	Mass    float64 `mapstructure:"mass"`
}

// OutputConfig controls telemetry export.
type OutputConfig struct {
	CSVPath string `mapstructure:"csv_path"`
}

// Deadline resolves SchedulerConfig's deadline into an absolute time.Time,
// or the zero value if no deadline is configured.
func (s SchedulerConfig) Deadline(from time.Time) time.Time {
	if s.DeadlineSeconds <= 0 {
		return time.Time{}
	}
	return from.Add(time.Duration(s.DeadlineSeconds * float64(time.Second)))
}

// Load reads a TOML scenario file at path into a SimulationConfig, using
// viper exactly as the teacher's smdConfig does (config.go), but scoped to
// a single explicit file rather than an environment-variable search path.
func Load(path string) (SimulationConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return SimulationConfig{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg SimulationConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return SimulationConfig{}, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return cfg, nil
}
