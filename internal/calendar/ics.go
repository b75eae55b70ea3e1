// Package calendar exports structured training plans as iCalendar files.
package calendar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/stretchletics/stretchletics/internal/id"
	"github.com/stretchletics/stretchletics/internal/workout"
)

const (
	prodID      = "-//Stretchletics//Training Plan//EN"
	defaultName = "Training Plan"
	defaultHour = 7
)

// Options control how a plan is laid out on the calendar.
type Options struct {
	// Name is the calendar name; empty uses "Training Plan".
	Name string
	// Start is the first day of week 1. Only the date part is used.
	Start time.Time
	// StartHour is the UTC hour timed workouts begin at; 0 uses 7.
	StartHour int
	// Now stamps every event; zero uses time.Now.
	Now time.Time
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// WorkoutDate places a workout of the given week and day on the calendar.
// Week 1 begins on start; day is a weekday name or "Day N" (1-7).
func WorkoutDate(start time.Time, week int, day string) (time.Time, error) {
	if week < 1 {
		return time.Time{}, fmt.Errorf("week_number %d out of range", week)
	}
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	d := strings.ToLower(strings.TrimSpace(day))
	var offset int
	if wd, ok := weekdays[d]; ok {
		offset = (int(wd) - int(start.Weekday()) + 7) % 7
	} else if n, ok := strings.CutPrefix(d, "day"); ok {
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil || i < 1 || i > 7 {
			return time.Time{}, fmt.Errorf("unknown day_of_week %q", day)
		}
		offset = i - 1
	} else {
		return time.Time{}, fmt.Errorf("unknown day_of_week %q", day)
	}
	return start.AddDate(0, 0, (week-1)*7+offset), nil
}

// Marshal renders p as an iCalendar document.
func Marshal(p workout.Plan, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, p, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes p to w as an iCalendar document with one VEVENT per workout.
// Rest days become all-day events; other workouts start at opts.StartHour
// and last workout.EstimateMinutes.
func Encode(w io.Writer, p workout.Plan, opts Options) error {
	if opts.Start.IsZero() {
		return fmt.Errorf("calendar start date is required")
	}
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		name = defaultName
	}
	hour := opts.StartHour
	if hour <= 0 || hour > 23 {
		hour = defaultHour
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	seed, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	planID := id.PlanID(opts.Start.Format("2006-01-02"), name, seed)

	cal := ics.NewCalendar()
	cal.SetProductId(prodID)
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodPublish)
	cal.SetXWRCalName(name)
	cal.SetXWRTimezone("UTC")

	for i, wo := range p.Workouts {
		day, err := WorkoutDate(opts.Start, wo.WeekNumber, wo.DayOfWeek)
		if err != nil {
			return fmt.Errorf("workout %d: %w", i, err)
		}
		ev := cal.AddEvent(id.EventUID(planID, wo.WeekNumber, i, wo.Name))
		ev.SetDtStampTime(now.UTC())
		if wo.IsRest() {
			ev.SetAllDayStartAt(day)
			ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
		} else {
			begin := day.Add(time.Duration(hour) * time.Hour)
			ev.SetStartAt(begin)
			ev.SetEndAt(begin.Add(time.Duration(math.Round(workout.EstimateMinutes(wo))) * time.Minute))
		}
		ev.SetSummary(summary(wo))
		ev.SetDescription(description(wo))
		if wo.Difficulty != "" {
			ev.AddProperty(ics.ComponentPropertyCategories, string(wo.Difficulty))
		}
		ev.SetStatus(ics.ObjectStatusConfirmed)
	}
	return cal.SerializeTo(w)
}

func summary(w workout.Workout) string {
	name := strings.TrimSpace(w.Name)
	if name == "" {
		name = "Workout"
	}
	switch {
	case w.Distance != nil:
		return fmt.Sprintf("%s (%s km)", name, formatNumber(*w.Distance))
	case w.Duration != nil:
		return fmt.Sprintf("%s (%s min)", name, formatNumber(*w.Duration))
	}
	return name
}

func description(w workout.Workout) string {
	var lines []string
	if d := strings.TrimSpace(w.Detail); d != "" {
		lines = append(lines, d)
	}
	if w.Distance != nil {
		lines = append(lines, "Distance: "+formatNumber(*w.Distance)+" km")
	}
	if w.Duration != nil {
		lines = append(lines, "Duration: "+formatNumber(*w.Duration)+" min")
	}
	if w.MinHeartRate != nil && w.MaxHeartRate != nil {
		lines = append(lines, fmt.Sprintf("Heart rate: %d-%d bpm", *w.MinHeartRate, *w.MaxHeartRate))
	}
	if w.Pace != nil {
		lines = append(lines, "Pace: "+FormatPace(*w.Pace)+" min/km")
	}
	if w.Difficulty != "" {
		lines = append(lines, "Difficulty: "+string(w.Difficulty))
	}
	return strings.Join(lines, "\n")
}

// FormatPace renders a decimal min/km pace as m:ss.
func FormatPace(p float64) string {
	total := int(math.Round(p * 60))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
