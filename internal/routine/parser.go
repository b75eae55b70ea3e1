// Package routine turns routine text in the canonical "N. Name - Duration"
// format into exercise records.
package routine

import (
	"regexp"
	"strconv"
	"strings"
)

// Exercise is one numbered entry of a routine.
type Exercise struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// headerRx matches "3. Name - Duration". The separator may be a hyphen,
// en dash or em dash surrounded by spaces so names like "Sit-Up" survive.
var headerRx = regexp.MustCompile(`^(\d+)[.)]\s+(.+?)\s+[-–—]\s+(.+)$`)

// Parse extracts exercises from text. Lines before the first header are
// ignored; lines after a header are joined into its description. Markdown
// bold markers are stripped.
func Parse(text string) []Exercise {
	var out []Exercise
	var cur *Exercise
	var desc []string

	flush := func() {
		if cur == nil {
			return
		}
		cur.Description = strings.Join(desc, " ")
		out = append(out, *cur)
		cur, desc = nil, nil
	}

	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(strings.ReplaceAll(ln, "**", ""))
		if ln == "" {
			continue
		}
		if m := headerRx.FindStringSubmatch(ln); m != nil {
			flush()
			n, _ := strconv.Atoi(m[1])
			cur = &Exercise{Number: n, Name: strings.TrimSpace(m[2]), Duration: strings.TrimSpace(m[3])}
			continue
		}
		if cur != nil {
			desc = append(desc, ln)
		}
	}
	flush()
	return out
}
