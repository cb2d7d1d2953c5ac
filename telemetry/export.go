// Package telemetry streams simulation output: a CSV writer driven off a
// channel, in the same streaming idiom as the teacher's StreamStates
// (export.go), trimmed of the Cosmographia/JSON catalogue export this
// scope has no use for, plus a go-kit log helper for structured run
// logging.
package telemetry

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Sample is one row of simulation output: the time index, the relative
// state, the active mode, and the applied control.
type Sample struct {
	Step  int
	Time  float64
	State []float64
	Mode  int
	U     []float64
}

// ExportConfig configures CSV export (spec §6).
type ExportConfig struct {
	Path string
}

// IsUseless reports whether this config does not actually write anything.
func (c ExportConfig) IsUseless() bool {
	return c.Path == ""
}

// StreamSamples drains sampleChan and writes each Sample as a CSV row to
// conf.Path, one header plus one row per step, mirroring the teacher's
// StreamStates channel-consumer pattern.
func StreamSamples(conf ExportConfig, sampleChan <-chan Sample) error {
	if conf.IsUseless() {
		for range sampleChan {
		}
		return nil
	}

	f, err := os.Create(conf.Path)
	if err != nil {
		return fmt.Errorf("telemetry: creating %s: %w", conf.Path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	headerWritten := false
	for sample := range sampleChan {
		if !headerWritten {
			header := []string{"step", "time", "mode"}
			for i := range sample.State {
				header = append(header, fmt.Sprintf("x%d", i))
			}
			for i := range sample.U {
				header = append(header, fmt.Sprintf("u%d", i))
			}
			if err := w.Write(header); err != nil {
				return fmt.Errorf("telemetry: writing header: %w", err)
			}
			headerWritten = true
		}

		row := []string{fmt.Sprintf("%d", sample.Step), fmt.Sprintf("%f", sample.Time), fmt.Sprintf("%d", sample.Mode)}
		for _, v := range sample.State {
			row = append(row, fmt.Sprintf("%f", v))
		}
		for _, v := range sample.U {
			row = append(row, fmt.Sprintf("%f", v))
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("telemetry: writing row: %w", err)
		}
	}
	return nil
}
