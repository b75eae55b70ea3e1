package workout

import "sort"

// DefaultPaceMinPerKm is used to estimate the length of a distance-only
// workout that carries no pace.
const DefaultPaceMinPerKm = 6.0

// DefaultSessionMinutes is the estimate for a workout with no measurements.
const DefaultSessionMinutes = 60.0

// EstimateMinutes returns the expected length of w in minutes.
func EstimateMinutes(w Workout) float64 {
	switch {
	case w.Duration != nil && *w.Duration > 0:
		return *w.Duration
	case w.Distance != nil && *w.Distance > 0:
		pace := DefaultPaceMinPerKm
		if w.Pace != nil && *w.Pace > 0 {
			pace = *w.Pace
		}
		return *w.Distance * pace
	}
	return DefaultSessionMinutes
}

// WeekSummary aggregates the workouts of one plan week.
type WeekSummary struct {
	Week            int        `json:"week_number"`
	Sessions        int        `json:"sessions"`
	DistanceKm      float64    `json:"distance_km"`
	DurationMinutes float64    `json:"duration_minutes"`
	HardestEffort   Difficulty `json:"hardest_effort"`
}

// Summarize returns one summary per week present in p, ordered by week.
// Rest days are not counted as sessions and add no time.
func Summarize(p Plan) []WeekSummary {
	byWeek := map[int]*WeekSummary{}
	for _, w := range p.Workouts {
		s, ok := byWeek[w.WeekNumber]
		if !ok {
			s = &WeekSummary{Week: w.WeekNumber}
			byWeek[w.WeekNumber] = s
		}
		if w.IsRest() {
			continue
		}
		s.Sessions++
		if w.Distance != nil {
			s.DistanceKm += *w.Distance
		}
		s.DurationMinutes += EstimateMinutes(w)
		if w.Difficulty.rank() > s.HardestEffort.rank() {
			s.HardestEffort = w.Difficulty
		}
	}

	out := make([]WeekSummary, 0, len(byWeek))
	for _, s := range byWeek {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Week < out[j].Week })
	return out
}
