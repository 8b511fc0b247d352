package telemetry

import (
	"fmt"
	"io"
	"os"

	"github.com/rileyhilliard/sidebar/internal/errors"
	"github.com/rileyhilliard/sidebar/internal/logger"
	"gopkg.in/yaml.v3"
)

// Recording is a captured sequence of bus cycles, stored as YAML:
//
//	frames:
//	  - deviceState: {networkType: wifi, networkStrength: 3, batteryPercent: 80}
//	    pandaState: {present: true, kind: valid}
//	    repeat: 20
//	  - liveLocationKalman: {gpsOk: true, satelliteCount: 9}
//
// Each step publishes its messages on its first cycle and is then held for
// Repeat-1 quiet cycles in which no channel publishes.
type Recording struct {
	Frames []Step `yaml:"frames"`
}

// Step is one entry of a recording.
type Step struct {
	Update `yaml:",inline"`
	Repeat int `yaml:"repeat,omitempty"`
}

// cycles returns how many frames the step spans.
func (s Step) cycles() int {
	if s.Repeat < 1 {
		return 1
	}
	return s.Repeat
}

// LoadRecording reads and validates a recording file.
func LoadRecording(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrTelemetry,
			"Failed to read recording "+path,
			"Check the path passed to --replay or telemetry.replay")
	}
	return ParseRecording(data)
}

// ParseRecording decodes and validates recording YAML.
func ParseRecording(data []byte) (*Recording, error) {
	var rec Recording
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrTelemetry,
			"Invalid recording format",
			"A recording is a YAML document with a top-level 'frames' list")
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Validate enforces the ranges the panel relies on. The panel itself does not
// re-check them.
func (r *Recording) Validate() error {
	if len(r.Frames) == 0 {
		return errors.New(errors.ErrTelemetry,
			"Recording has no frames",
			"Add at least one entry under 'frames'")
	}
	for i, step := range r.Frames {
		if step.Repeat < 0 {
			return errors.New(errors.ErrTelemetry,
				fmt.Sprintf("frames[%d]: repeat must not be negative", i), "")
		}
		if ds := step.DeviceState; ds != nil {
			if ds.NetworkStrength < 0 || ds.NetworkStrength > 4 {
				return errors.New(errors.ErrTelemetry,
					fmt.Sprintf("frames[%d]: networkStrength %d out of range", i, ds.NetworkStrength),
					"Signal strength is reported in bars, 0 to 4")
			}
			if ds.BatteryPercent < 0 || ds.BatteryPercent > 100 {
				return errors.New(errors.ErrTelemetry,
					fmt.Sprintf("frames[%d]: batteryPercent %d out of range", i, ds.BatteryPercent),
					"Battery level is a percentage, 0 to 100")
			}
		}
		if ll := step.LiveLocation; ll != nil && ll.SatelliteCount < 0 {
			return errors.New(errors.ErrTelemetry,
				fmt.Sprintf("frames[%d]: satelliteCount must not be negative", i), "")
		}
	}
	return nil
}

// TotalCycles returns the number of frames one pass over the recording yields.
func (r *Recording) TotalCycles() int {
	total := 0
	for _, s := range r.Frames {
		total += s.cycles()
	}
	return total
}

// Replay is a Source that plays back a Recording.
type Replay struct {
	rec     *Recording
	loop    bool
	merger  *Merger
	step    int
	emitted int
	log     logger.Logger
}

// NewReplay plays rec once, or forever when loop is set.
func NewReplay(rec *Recording, loop bool, log logger.Logger) *Replay {
	if log == nil {
		log = logger.Noop()
	}
	return &Replay{
		rec:    rec,
		loop:   loop,
		merger: NewMerger(),
		log:    log,
	}
}

// Next returns the next frame, or io.EOF once a non-looping replay is done.
func (r *Replay) Next() (Frame, error) {
	if r.step >= len(r.rec.Frames) {
		if !r.loop {
			return Frame{}, io.EOF
		}
		r.log.Debug("recording wrapped after %d cycles", r.merger.Cycles())
		r.step = 0
	}

	s := r.rec.Frames[r.step]
	var u Update
	if r.emitted == 0 {
		u = s.Update
	}
	r.emitted++
	if r.emitted >= s.cycles() {
		r.step++
		r.emitted = 0
	}
	return r.merger.Merge(u), nil
}
