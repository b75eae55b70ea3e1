package workout

// Difficulty is the perceived effort of a workout.
type Difficulty string

const (
	Easy     Difficulty = "Easy"
	Moderate Difficulty = "Moderate"
	Hard     Difficulty = "Hard"
)

// rank orders difficulties for week summaries; unknown values rank lowest.
func (d Difficulty) rank() int {
	switch d {
	case Easy:
		return 1
	case Moderate:
		return 2
	case Hard:
		return 3
	}
	return 0
}

// Workout is one session of a training plan. Optional measurements are
// pointers so absence is distinguishable from zero; they encode as null.
type Workout struct {
	WeekNumber   int        `json:"week_number" yaml:"week_number" jsonschema:"minimum=1" jsonschema_description:"Which week of the plan (1, 2, 3, ...)"`
	DayOfWeek    string     `json:"day_of_week" yaml:"day_of_week" jsonschema_description:"Day name (Monday, Tuesday, ...)"`
	Name         string     `json:"name" yaml:"name" jsonschema_description:"Workout name, e.g. Easy Run, Tempo Run, Rest Day"`
	Distance     *float64   `json:"distance" yaml:"distance" jsonschema_description:"Distance in km; set this OR duration"`
	Duration     *float64   `json:"duration" yaml:"duration" jsonschema_description:"Duration in minutes; set this OR distance"`
	MinHeartRate *int       `json:"min_heart_rate" yaml:"min_heart_rate" jsonschema_description:"Minimum heart rate in bpm; set heart rate OR pace"`
	MaxHeartRate *int       `json:"max_heart_rate" yaml:"max_heart_rate" jsonschema_description:"Maximum heart rate in bpm"`
	Pace         *float64   `json:"pace" yaml:"pace" jsonschema_description:"Pace in min/km; set this OR heart rate"`
	Detail       string     `json:"detail" yaml:"detail" jsonschema_description:"Detailed workout description"`
	Difficulty   Difficulty `json:"difficulty" yaml:"difficulty" jsonschema:"enum=Easy,enum=Moderate,enum=Hard" jsonschema_description:"Easy, Moderate or Hard"`
}

// Plan is an ordered list of workouts, by week then by day.
type Plan struct {
	Workouts []Workout `json:"workouts" yaml:"workouts" jsonschema_description:"Workouts in chronological order"`
}
