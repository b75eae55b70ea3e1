package id

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
)

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)
var multiDash = regexp.MustCompile(`-+`)

// UIDDomain is the right-hand side of every calendar event UID.
const UIDDomain = "stretchletics.app"

// Slug converts a workout name to a lowercase kebab slug, max 24 chars,
// never ending in a dash.
func Slug(name string) string {
	s := strings.ToLower(name)
	s = nonAlnum.ReplaceAllString(s, "-")
	s = multiDash.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > 24 {
		s = strings.TrimRight(s[:24], "-")
	}
	return s
}

// PlanID builds <YYYY-MM-DD>-<kebab-name>-NNNN where NNNN is
// xxhash(seed)%10000, so the same plan exported twice gets the same id.
func PlanID(startISO, planName string, seed []byte) string {
	h := xxhash.Sum64(seed) % 10000
	name := Slug(planName)
	if name == "" {
		name = "plan"
	}
	return fmt.Sprintf("%s-%s-%04d", startISO, name, h)
}

// EventUID builds W<week>-D<index>-<slug>-<planID>@<domain>.
func EventUID(planID string, week, index int, workoutName string) string {
	slug := Slug(workoutName)
	if slug == "" {
		slug = "workout"
	}
	return fmt.Sprintf("W%d-D%d-%s-%s@%s", week, index, slug, planID, UIDDomain)
}
