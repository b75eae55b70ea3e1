// Package plantext reads free-text training plans labelled with "**Week N**"
// and "**Monday:**" headers into weeks, days and workouts.
package plantext

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Plan is the outline of a text plan. Text outside any week goes to Intro
// before the first week and to Tips after a tips header.
type Plan struct {
	Intro string `json:"intro"`
	Weeks []Week `json:"weeks"`
	Tips  string `json:"tips"`
}

type Week struct {
	Number      int    `json:"number"`
	Description string `json:"description"`
	Days        []Day  `json:"days"`
}

// Day holds the raw workout texts under one day header. Label is a weekday
// name, "Day N", or empty when the header carried no number.
type Day struct {
	Label    string   `json:"label"`
	Workouts []string `json:"workouts"`
}

var (
	weekRx     = regexp.MustCompile(`(?i)^(?:#{1,6}\s*)?(?:\*\*)?\s*week\s+(\d+)\b`)
	dayRx      = regexp.MustCompile(`(?i)^(?:[-*•]\s*)?(?:#{1,6}\s*)?\*\*\s*(monday|tuesday|wednesday|thursday|friday|saturday|sunday|day\s*\d*)\b([^*]*)\*\*(.*)$`)
	// "Monday: Easy run" without markdown
	dayPlainRx = regexp.MustCompile(`(?i)^(?:[-*•]\s*)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday|day\s*\d+)\s*[:–—-]\s*(.*)$`)
	tipsRx     = regexp.MustCompile(`(?i)^(?:#{1,6}\s*)?\*\*\s*(tips|advice|notes|important)|^#{1,6}\s*(tips|advice|notes|important)\b`)
	// a line that starts a new workout inside a day
	itemRx     = regexp.MustCompile(`(?i)^(?:[-•*]\s+|\d+[.)]\s+|\*\*[A-Z]|(?:rest|easy|recovery|tempo|interval|long|speed|hill|fartlek|threshold)\b)`)
)

var titleCase = cases.Title(language.English)

// Parse splits text into weeks and days. Lines before the first week header
// form the intro; week and day headers may carry content on the same line.
func Parse(text string) Plan {
	var (
		plan    Plan
		week    *Week
		day     *Day
		inTips  bool
		pending []string
		intro   []string
		tips    []string
		weekTxt []string
	)

	flushWorkout := func() {
		if day != nil && len(pending) > 0 {
			day.Workouts = append(day.Workouts, strings.Join(pending, " "))
		}
		pending = nil
	}
	flushDay := func() {
		flushWorkout()
		if week != nil && day != nil {
			week.Days = append(week.Days, *day)
		}
		day = nil
	}
	flushWeek := func() {
		flushDay()
		if week != nil {
			week.Description = strings.Join(weekTxt, " ")
			plan.Weeks = append(plan.Weeks, *week)
		}
		week, weekTxt = nil, nil
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := weekRx.FindStringSubmatch(line); m != nil {
			flushWeek()
			n, _ := strconv.Atoi(m[1])
			week = &Week{Number: n}
			inTips = false
			continue
		}
		if m := dayRx.FindStringSubmatch(line); m != nil && week != nil {
			flushDay()
			day = &Day{Label: dayLabel(m[1])}
			if inline := joinNonEmpty(trimSep(m[2]), trimSep(m[3])); inline != "" {
				pending = []string{inline}
			}
			continue
		}
		if m := dayPlainRx.FindStringSubmatch(line); m != nil && week != nil {
			flushDay()
			day = &Day{Label: dayLabel(m[1])}
			if inline := trimSep(m[2]); inline != "" {
				pending = []string{inline}
			}
			continue
		}
		if tipsRx.MatchString(line) {
			flushWeek()
			inTips = true
			continue
		}

		switch {
		case inTips:
			tips = append(tips, line)
		case day != nil:
			if itemRx.MatchString(line) {
				flushWorkout()
			}
			pending = append(pending, line)
		case week != nil:
			weekTxt = append(weekTxt, line)
		default:
			intro = append(intro, line)
		}
	}
	flushWeek()

	plan.Intro = strings.Join(intro, " ")
	plan.Tips = strings.Join(tips, " ")
	return plan
}

func dayLabel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if rest, ok := strings.CutPrefix(s, "day"); ok {
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return ""
		}
		return "Day " + rest
	}
	return titleCase.String(s)
}

// trimSep drops header punctuation such as ":" and " - " around s.
func trimSep(s string) string {
	return strings.Trim(s, " \t:-–—*")
}

func joinNonEmpty(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
