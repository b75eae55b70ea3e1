package prompts

import "fmt"

// Prompt is a system prompt for one use case. Version is bumped whenever the
// text changes in a way that affects how callers parse the model output.
type Prompt struct {
	Name    string
	Version int
	Text    string
}

func (p Prompt) String() string { return fmt.Sprintf("%s@v%d", p.Name, p.Version) }

var (
	// GeneralRoutine asks for a stretching routine in the canonical
	// "N. Name - Duration" format.
	GeneralRoutine = Prompt{Name: "general", Version: 2, Text: generalRoutineText}
	// WarmUpCoolDown asks for a warm-up and cool-down around a session.
	WarmUpCoolDown = Prompt{Name: "warmup-cooldown", Version: 1, Text: warmUpCoolDownText}
	// CoolDownAfterWorkout asks for a cool-down after a finished workout.
	CoolDownAfterWorkout = Prompt{Name: "cooldown", Version: 1, Text: coolDownAfterWorkoutText}
	// TrainingPlanText asks for a free-text week-by-week plan.
	TrainingPlanText = Prompt{Name: "training-plan-text", Version: 1, Text: trainingPlanText}
	// TrainingPlanStructured asks for a plan matching workout.Plan.
	TrainingPlanStructured = Prompt{Name: "training-plan-structured", Version: 2, Text: trainingPlanStructuredText}
)

// Routines are the prompts that produce routine text, keyed by name.
var Routines = map[string]Prompt{
	GeneralRoutine.Name:       GeneralRoutine,
	WarmUpCoolDown.Name:       WarmUpCoolDown,
	CoolDownAfterWorkout.Name: CoolDownAfterWorkout,
}

// LookupRoutine returns the routine prompt for kind. An empty kind selects
// GeneralRoutine.
func LookupRoutine(kind string) (Prompt, bool) {
	if kind == "" {
		return GeneralRoutine, true
	}
	p, ok := Routines[kind]
	return p, ok
}
