package workout

import (
	"fmt"
	"regexp"
)

// PolicyViolation describes a workout that breaks one of the "exactly one of"
// conventions the structured plan prompt asks the model to follow.
type PolicyViolation struct {
	Index  int    `json:"index"`
	Week   int    `json:"week_number"`
	Day    string `json:"day_of_week"`
	Reason string `json:"reason"`
}

func (v PolicyViolation) String() string {
	return fmt.Sprintf("workout %d (week %d %s): %s", v.Index, v.Week, v.Day, v.Reason)
}

// CheckPolicy reports workouts that set both or neither of distance and
// duration, or both or neither of a heart rate range and pace. Rest days are
// skipped.
func CheckPolicy(p Plan) []PolicyViolation {
	var out []PolicyViolation
	for i, w := range p.Workouts {
		if w.IsRest() {
			continue
		}
		add := func(reason string) {
			out = append(out, PolicyViolation{Index: i, Week: w.WeekNumber, Day: w.DayOfWeek, Reason: reason})
		}

		hasDistance, hasDuration := w.Distance != nil, w.Duration != nil
		switch {
		case hasDistance && hasDuration:
			add("both distance and duration set")
		case !hasDistance && !hasDuration:
			add("neither distance nor duration set")
		}

		hasHR := w.MinHeartRate != nil || w.MaxHeartRate != nil
		hasPace := w.Pace != nil
		switch {
		case hasHR && hasPace:
			add("both heart rate and pace set")
		case !hasHR && !hasPace:
			add("neither heart rate nor pace set")
		case hasHR && (w.MinHeartRate == nil || w.MaxHeartRate == nil):
			add("heart rate range incomplete")
		case hasHR && *w.MinHeartRate > *w.MaxHeartRate:
			add("min heart rate above max heart rate")
		}
	}
	return out
}

var restRx = regexp.MustCompile(`(?i)\b(rest|day off|off day)\b`)

// IsRest reports whether w is named as a rest day ("Rest Day", "Day Off").
// A workout without measurements that is not named as rest is not a rest day.
func (w Workout) IsRest() bool {
	return restRx.MatchString(w.Name)
}
