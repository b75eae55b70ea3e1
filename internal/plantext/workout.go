package plantext

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/stretchletics/stretchletics/internal/workout"
)

const kmPerMile = 1.609344

var (
	leadRx     = regexp.MustCompile(`^(?:\d+[.)]\s*|[-–—•*]+\s*)+`)
	distanceRx = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(km|kilometers?|kilometres?|k|miles?|mi)\b`)
	durationRx = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(minutes?|mins?|hours?|hrs?|h)\b`)
	hrRx       = regexp.MustCompile(`(?i)(\d{2,3})\s*[-–]\s*(\d{2,3})\s*bpm|(?:HR|heart\s*rate)[:\s]+(\d{2,3})\s*[-–]\s*(\d{2,3})`)
	paceRx     = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(?:min\s*)?(?:/|per\s*)(km|mi|mile)\b`)
	statRx     = regexp.MustCompile(`(?i)^\d|\b(km|mi|bpm|zone|hr|pace)\b`)

	easyRx     = regexp.MustCompile(`(?i)easy|recovery|light|warm.*up|cool.*down`)
	hardRx     = regexp.MustCompile(`(?i)hard|intense|max|threshold|vo2`)
	moderateRx = regexp.MustCompile(`(?i)moderate|tempo|steady`)
	restWordRx = regexp.MustCompile(`(?i)\brest\b`)
)

// DetectIntensity guesses a difficulty from workout text. Rest and
// recovery read as Easy; text with no cue reads as Moderate.
func DetectIntensity(text string) workout.Difficulty {
	switch {
	case easyRx.MatchString(text):
		return workout.Easy
	case hardRx.MatchString(text):
		return workout.Hard
	case moderateRx.MatchString(text):
		return workout.Moderate
	case restWordRx.MatchString(text):
		return workout.Easy
	}
	return workout.Moderate
}

// Details reads one workout text into a Workout. Week and day are left
// for the caller. The first distance, duration, heart rate range and pace
// found are used; miles are converted to km.
func Details(text string) workout.Workout {
	clean := leadRx.ReplaceAllString(strings.ReplaceAll(strings.TrimSpace(text), "**", ""), "")
	clean = strings.TrimSpace(clean)

	w := workout.Workout{
		Name:       workoutName(clean),
		Detail:     clean,
		Difficulty: DetectIntensity(clean),
	}

	if m := distanceRx.FindStringSubmatch(clean); m != nil {
		d, _ := strconv.ParseFloat(m[1], 64)
		if strings.HasPrefix(strings.ToLower(m[2]), "mi") {
			d *= kmPerMile
		}
		w.Distance = &d
	}
	if m := durationMatch(clean); m != nil {
		d, _ := strconv.ParseFloat(m[1], 64)
		if strings.HasPrefix(strings.ToLower(m[2]), "h") {
			d *= 60
		}
		w.Duration = &d
	}
	if m := hrRx.FindStringSubmatch(clean); m != nil {
		lo, hi := m[1], m[2]
		if lo == "" {
			lo, hi = m[3], m[4]
		}
		minHR, _ := strconv.Atoi(lo)
		maxHR, _ := strconv.Atoi(hi)
		w.MinHeartRate, w.MaxHeartRate = &minHR, &maxHR
	}
	if m := paceRx.FindStringSubmatch(clean); m != nil {
		mins, _ := strconv.Atoi(m[1])
		secs, _ := strconv.Atoi(m[2])
		p := float64(mins) + float64(secs)/60
		if !strings.EqualFold(m[3], "km") {
			p /= kmPerMile
		}
		w.Pace = &p
	}
	return w
}

// durationMatch skips the seconds and unit of a pace such as "5:30 min/km".
func durationMatch(text string) []string {
	for _, idx := range durationRx.FindAllStringSubmatchIndex(text, -1) {
		start, end := idx[0], idx[1]
		if start > 0 && text[start-1] == ':' {
			continue
		}
		if end < len(text) && text[end] == '/' {
			continue
		}
		return []string{text[idx[0]:idx[1]], text[idx[2]:idx[3]], text[idx[4]:idx[5]]}
	}
	return nil
}

// workoutName takes the label before ":" or a dash, else the words before
// the first number or stat.
func workoutName(text string) string {
	for _, sep := range []string{":", " - ", " – ", " — "} {
		if before, _, ok := strings.Cut(text, sep); ok {
			if name := strings.TrimSpace(before); plausibleName(name) {
				return name
			}
		}
	}

	var words []string
	for _, word := range strings.Fields(text) {
		if len(words) == 5 || statRx.MatchString(word) || len(word) > 20 {
			break
		}
		words = append(words, word)
	}
	if name := strings.Trim(strings.Join(words, " "), " ,.;"); name != "" {
		return name
	}
	return "Workout"
}

func plausibleName(s string) bool {
	return len(s) >= 3 && len(s) <= 50 && !strings.ContainsAny(s, "0123456789") && !statRx.MatchString(s)
}

// ToPlan flattens p into workouts. A week without a number takes its
// position; a day without a weekday or number becomes "Day N" by position.
func ToPlan(p Plan) workout.Plan {
	var out workout.Plan
	for wi, week := range p.Weeks {
		num := week.Number
		if num < 1 {
			num = wi + 1
		}
		for di, day := range week.Days {
			label := day.Label
			if label == "" {
				label = fmt.Sprintf("Day %d", di+1)
			}
			for _, text := range day.Workouts {
				w := Details(text)
				w.WeekNumber = num
				w.DayOfWeek = label
				out.Workouts = append(out.Workouts, w)
			}
		}
	}
	return out
}
