package prompts

import _ "embed"

// Embeds for the system prompts.

//go:embed templates/general-routine.txt
var generalRoutineText string

//go:embed templates/warmup-cooldown.txt
var warmUpCoolDownText string

//go:embed templates/cooldown-after-workout.txt
var coolDownAfterWorkoutText string

//go:embed templates/training-plan-text.txt
var trainingPlanText string

//go:embed templates/training-plan-structured.txt
var trainingPlanStructuredText string
