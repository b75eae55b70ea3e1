// Package fitfile exports plan workouts as Garmin FIT workout files.
package fitfile

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/tormoder/fit"

	"github.com/stretchletics/stretchletics/internal/id"
	"github.com/stretchletics/stretchletics/internal/workout"
)

// bpmOffset is added to custom heart rate targets; values up to 100 are
// read by devices as percent of max.
const bpmOffset = 100

type Options struct {
	// Sport is the plan sport name, e.g. "running"; empty means running.
	Sport string
	// Now stamps the file id; zero uses time.Now.
	Now time.Time
}

// SportFor maps a sport name to a FIT sport.
func SportFor(name string) fit.Sport {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "running", "run", "triathlon":
		return fit.SportRunning
	case "cycling", "bike", "biking":
		return fit.SportCycling
	case "swimming", "swim":
		return fit.SportSwimming
	}
	return fit.SportGeneric
}

// NewWorkoutFile builds a single-step workout file for w. The step ends on
// distance or time when either is set, and targets the heart rate range or
// pace when either is set.
func NewWorkoutFile(w workout.Workout, opts Options) (*fit.File, error) {
	h := fit.NewHeader(fit.V20, true)
	f, err := fit.NewFile(fit.FileTypeWorkout, h)
	if err != nil {
		return nil, err
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	f.FileId.Manufacturer = fit.ManufacturerDevelopment
	f.FileId.TimeCreated = now.UTC()

	wf, err := f.Workout()
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(w.Name)
	if name == "" {
		name = "Workout"
	}
	msg := fit.NewWorkoutMsg()
	msg.WktName = name
	msg.Sport = SportFor(opts.Sport)
	msg.NumValidSteps = 1
	wf.Workout = msg

	step := fit.NewWorkoutStepMsg()
	step.MessageIndex = 0
	step.WktStepName = name
	step.Intensity = fit.IntensityActive
	if w.IsRest() {
		step.Intensity = fit.IntensityRest
	}

	switch {
	case w.Distance != nil && *w.Distance > 0:
		step.DurationType = fit.WktStepDurationDistance
		// centimetres
		step.DurationValue = uint32(math.Round(*w.Distance * 100000))
	case w.Duration != nil && *w.Duration > 0:
		step.DurationType = fit.WktStepDurationTime
		// milliseconds
		step.DurationValue = uint32(math.Round(*w.Duration * 60000))
	default:
		step.DurationType = fit.WktStepDurationOpen
	}

	switch {
	case w.MinHeartRate != nil && w.MaxHeartRate != nil:
		step.TargetType = fit.WktStepTargetHeartRate
		step.TargetValue = 0
		step.CustomTargetValueLow = uint32(*w.MinHeartRate + bpmOffset)
		step.CustomTargetValueHigh = uint32(*w.MaxHeartRate + bpmOffset)
	case w.Pace != nil && *w.Pace > 0:
		step.TargetType = fit.WktStepTargetSpeed
		step.TargetValue = 0
		// mm/s, with a 5% band around the prescribed pace
		speed := 1e6 / (*w.Pace * 60)
		step.CustomTargetValueLow = uint32(math.Round(speed * 0.95))
		step.CustomTargetValueHigh = uint32(math.Round(speed * 1.05))
	default:
		step.TargetType = fit.WktStepTargetOpen
	}
	wf.WorkoutSteps = []*fit.WorkoutStepMsg{step}
	return f, nil
}

// EncodeWorkout writes w as a FIT workout file.
func EncodeWorkout(dst io.Writer, w workout.Workout, opts Options) error {
	f, err := NewWorkoutFile(w, opts)
	if err != nil {
		return err
	}
	return fit.Encode(dst, f, binary.LittleEndian)
}

// FileName is the archive entry name for the i-th workout of a plan.
func FileName(i int, w workout.Workout) string {
	name := id.Slug(w.Name)
	if name == "" {
		name = "workout"
	}
	day := id.Slug(w.DayOfWeek)
	if day == "" {
		day = "day"
	}
	return fmt.Sprintf("%03d-w%d-%s-%s.fit", i+1, w.WeekNumber, day, name)
}

// WriteArchive writes a zip with one FIT workout file per workout of p,
// skipping rest days, and returns how many files it wrote.
func WriteArchive(dst io.Writer, p workout.Plan, opts Options) (int, error) {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	zw := zip.NewWriter(dst)
	n := 0
	for i, w := range p.Workouts {
		if w.IsRest() {
			continue
		}
		var buf bytes.Buffer
		if err := EncodeWorkout(&buf, w, opts); err != nil {
			return n, fmt.Errorf("workout %d: %w", i, err)
		}
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: FileName(i, w), Method: zip.Deflate, Modified: opts.Now})
		if err != nil {
			return n, err
		}
		if _, err := fw.Write(buf.Bytes()); err != nil {
			return n, err
		}
		n++
	}
	return n, zw.Close()
}
