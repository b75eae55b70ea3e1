package prompts

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrBlankSport = errors.New("sport is required")

// TrainingPlanRequest carries the athlete details interpolated into the
// training plan user prompt.
type TrainingPlanRequest struct {
	Sport              string `json:"sport"`
	CurrentPerformance string `json:"current_performance"`
	Goal               string `json:"goal"`
	SessionsPerWeek    int    `json:"sessions_per_week"`
	AvailableTime      string `json:"available_time"`
	// PlanLengthWeeks of 0 lets the model pick 6-12 weeks.
	PlanLengthWeeks int    `json:"plan_length_weeks,omitempty"`
	AdditionalInfo  string `json:"additional_info,omitempty"`
}

const planRequestFooter = `

Please provide:
1. %s
2. Week-by-week breakdown with specific workouts
3. Each workout should include: Type, Duration, Intensity, and brief description
4. Include rest and recovery days
5. Progressive structure that builds toward the goal
6. Tips for successful training

Format the plan clearly with headers for each week and day.`

// BuildTrainingPlanPrompt renders req into the user message sent alongside a
// training plan system prompt. The output depends only on req.
func BuildTrainingPlanPrompt(req TrainingPlanRequest) (string, error) {
	sport := strings.TrimSpace(req.Sport)
	if sport == "" {
		return "", ErrBlankSport
	}

	var b strings.Builder
	b.WriteString("Please create a personalized training plan with the following details:\n\n")
	fmt.Fprintf(&b, "**Sport:** %s\n", cases.Title(language.English).String(sport))
	fmt.Fprintf(&b, "**Current Performance:** %s\n", req.CurrentPerformance)
	fmt.Fprintf(&b, "**Goal:** %s\n", req.Goal)
	fmt.Fprintf(&b, "**Training Frequency:** %d sessions per week\n", req.SessionsPerWeek)
	fmt.Fprintf(&b, "**Available Training Time:** %s per week", req.AvailableTime)
	if req.PlanLengthWeeks > 0 {
		fmt.Fprintf(&b, "\n**Plan Length:** %d weeks", req.PlanLengthWeeks)
	}
	if info := strings.TrimSpace(req.AdditionalInfo); info != "" {
		fmt.Fprintf(&b, "\n**Additional Information:** %s", info)
	}

	first := "A structured training plan (recommend appropriate duration: 6-12 weeks based on the goal)"
	if req.PlanLengthWeeks > 0 {
		first = fmt.Sprintf("A structured training plan lasting exactly %d weeks", req.PlanLengthWeeks)
	}
	fmt.Fprintf(&b, planRequestFooter, first)
	return b.String(), nil
}
