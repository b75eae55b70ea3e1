package workout

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

const (
	SchemaName        = "workout_plan"
	SchemaDescription = "Training plan as an ordered list of workouts"
)

// nullable lists the Workout properties that may be null or absent.
var nullable = map[string]bool{
	"distance":       true,
	"duration":       true,
	"min_heart_rate": true,
	"max_heart_rate": true,
	"pace":           true,
}

// ResponseSchema is the form of the plan schema accepted by strict
// structured outputs: every property required, optional ones typed as
// anyOf [T, null], no additional properties. It is sent to the model only.
var ResponseSchema = generatePlanSchema(true)

// ResponseSchemaJSON is ResponseSchema encoded as JSON.
var ResponseSchemaJSON = mustMarshal(ResponseSchema)

// PlanSchema is what model output is checked against. Only week_number,
// day_of_week, name, detail and difficulty are required; the measurement
// fields may be null or left out.
var PlanSchema = generatePlanSchema(false)

// PlanSchemaJSON is PlanSchema encoded as JSON.
var PlanSchemaJSON = mustMarshal(PlanSchema)

func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Anonymous:                 true,
	}
	var v T
	schema := reflector.Reflect(v)
	schema.Version = ""
	return schema
}

func generatePlanSchema(strict bool) *jsonschema.Schema {
	s := GenerateSchema[Plan]()
	workouts, ok := s.Properties.Get("workouts")
	if !ok || workouts.Items == nil {
		return s
	}
	item := workouts.Items
	for pair := item.Properties.Oldest(); pair != nil; pair = pair.Next() {
		if !nullable[pair.Key] {
			continue
		}
		prop := pair.Value
		desc := prop.Description
		prop.Description = ""
		pair.Value = &jsonschema.Schema{
			AnyOf:       []*jsonschema.Schema{prop, {Type: "null"}},
			Description: desc,
		}
	}
	if !strict {
		required := item.Required[:0]
		for _, name := range item.Required {
			if !nullable[name] {
				required = append(required, name)
			}
		}
		item.Required = required
	}
	return s
}

func mustMarshal(s *jsonschema.Schema) string {
	b, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	return string(b)
}
