package fitfile

import (
	"archive/zip"
	"bytes"
	"testing"
	"time"

	"github.com/tormoder/fit"

	"github.com/stretchletics/stretchletics/internal/workout"
)

func f64(v float64) *float64 { return &v }
func intp(v int) *int        { return &v }

var now = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

func decodeWorkout(t *testing.T, data []byte) *fit.WorkoutFile {
	t.Helper()
	f, err := fit.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if f.Type() != fit.FileTypeWorkout {
		t.Fatalf("unexpected file type %v", f.Type())
	}
	wf, err := f.Workout()
	if err != nil {
		t.Fatalf("workout: %v", err)
	}
	return wf
}

func TestEncodeWorkout_DistanceAndHeartRate(t *testing.T) {
	w := workout.Workout{
		WeekNumber: 1, DayOfWeek: "Monday", Name: "Easy Run",
		Distance: f64(6), MinHeartRate: intp(130), MaxHeartRate: intp(145),
		Detail: "easy", Difficulty: workout.Easy,
	}
	var buf bytes.Buffer
	if err := EncodeWorkout(&buf, w, Options{Sport: "running", Now: now}); err != nil {
		t.Fatalf("encode: %v", err)
	}

	wf := decodeWorkout(t, buf.Bytes())
	if wf.Workout.WktName != "Easy Run" || wf.Workout.Sport != fit.SportRunning {
		t.Fatalf("unexpected workout msg %+v", wf.Workout)
	}
	if len(wf.WorkoutSteps) != 1 {
		t.Fatalf("expected one step, got %d", len(wf.WorkoutSteps))
	}
	step := wf.WorkoutSteps[0]
	if step.DurationType != fit.WktStepDurationDistance || step.DurationValue != 600000 {
		t.Fatalf("unexpected duration %v %d", step.DurationType, step.DurationValue)
	}
	if step.TargetType != fit.WktStepTargetHeartRate || step.CustomTargetValueLow != 230 || step.CustomTargetValueHigh != 245 {
		t.Fatalf("unexpected target %v %d-%d", step.TargetType, step.CustomTargetValueLow, step.CustomTargetValueHigh)
	}
}

func TestNewWorkoutFile_TimeAndPace(t *testing.T) {
	w := workout.Workout{WeekNumber: 1, DayOfWeek: "Wednesday", Name: "Tempo Run", Duration: f64(40), Pace: f64(5), Difficulty: workout.Hard}
	f, err := NewWorkoutFile(w, Options{Sport: "cycling", Now: now})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	wf, _ := f.Workout()
	if wf.Workout.Sport != fit.SportCycling {
		t.Fatalf("unexpected sport %v", wf.Workout.Sport)
	}
	step := wf.WorkoutSteps[0]
	if step.DurationType != fit.WktStepDurationTime || step.DurationValue != 2400000 {
		t.Fatalf("unexpected duration %v %d", step.DurationType, step.DurationValue)
	}
	// 5 min/km is 3333 mm/s
	if step.TargetType != fit.WktStepTargetSpeed || step.CustomTargetValueLow != 3167 || step.CustomTargetValueHigh != 3500 {
		t.Fatalf("unexpected target %v %d-%d", step.TargetType, step.CustomTargetValueLow, step.CustomTargetValueHigh)
	}
}

func TestNewWorkoutFile_Open(t *testing.T) {
	f, err := NewWorkoutFile(workout.Workout{Name: "  "}, Options{Sport: "yoga", Now: now})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	wf, _ := f.Workout()
	step := wf.WorkoutSteps[0]
	if wf.Workout.WktName != "Workout" || wf.Workout.Sport != fit.SportGeneric {
		t.Fatalf("unexpected workout msg %+v", wf.Workout)
	}
	if step.DurationType != fit.WktStepDurationOpen || step.TargetType != fit.WktStepTargetOpen {
		t.Fatalf("unmeasured workout must be open, got %v %v", step.DurationType, step.TargetType)
	}
}

func TestSportFor(t *testing.T) {
	cases := map[string]fit.Sport{
		"":          fit.SportRunning,
		"Triathlon": fit.SportRunning,
		" Swim ":    fit.SportSwimming,
		"biking":    fit.SportCycling,
		"rowing":    fit.SportGeneric,
	}
	for in, want := range cases {
		if got := SportFor(in); got != want {
			t.Fatalf("SportFor(%q) = %v; want %v", in, got, want)
		}
	}
}

func TestWriteArchive_SkipsRestDays(t *testing.T) {
	plan := workout.Plan{Workouts: []workout.Workout{
		{WeekNumber: 1, DayOfWeek: "Monday", Name: "Easy Run", Distance: f64(5), Difficulty: workout.Easy},
		{WeekNumber: 1, DayOfWeek: "Tuesday", Name: "Rest Day", Difficulty: workout.Easy},
		{WeekNumber: 2, DayOfWeek: "", Name: "Long Run", Duration: f64(90), Difficulty: workout.Moderate},
	}}

	var buf bytes.Buffer
	n, err := WriteArchive(&buf, plan, Options{Now: now})
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 files, got %d", n)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip: %v", err)
	}
	want := []string{"001-w1-monday-easy-run.fit", "003-w2-day-long-run.fit"}
	if len(zr.File) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(zr.File))
	}
	for idx, zf := range zr.File {
		if zf.Name != want[idx] {
			t.Fatalf("entry %d = %q; want %q", idx, zf.Name, want[idx])
		}
		rc, err := zf.Open()
		if err != nil {
			t.Fatalf("open %s: %v", zf.Name, err)
		}
		var data bytes.Buffer
		if _, err := data.ReadFrom(rc); err != nil {
			t.Fatalf("read %s: %v", zf.Name, err)
		}
		rc.Close()
		decodeWorkout(t, data.Bytes())
	}
}

func TestWriteArchive_Empty(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteArchive(&buf, workout.Plan{}, Options{Now: now})
	if err != nil || n != 0 {
		t.Fatalf("expected empty archive, got %d %v", n, err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil || len(zr.File) != 0 {
		t.Fatalf("expected readable empty zip, got %v", err)
	}
}
