package workout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidPlan is returned when model output does not match the plan schema.
var ErrInvalidPlan = errors.New("invalid workout plan")

var planSchemaLoader = gojsonschema.NewStringLoader(PlanSchemaJSON)

// ValidatePlanJSON checks b against PlanSchema.
func ValidatePlanJSON(b []byte) error {
	result, err := gojsonschema.Validate(planSchemaLoader, gojsonschema.NewBytesLoader(b))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	if !result.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidPlan, collect(result.Errors()))
	}
	return nil
}

// ParsePlan validates b against the plan schema and decodes it.
func ParsePlan(b []byte) (Plan, error) {
	if err := ValidatePlanJSON(b); err != nil {
		return Plan{}, err
	}
	var p Plan
	if err := json.Unmarshal(b, &p); err != nil {
		return Plan{}, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	return p, nil
}

func collect(errs []gojsonschema.ResultError) string {
	var buf bytes.Buffer
	for i, e := range errs {
		if i > 0 {
			buf.WriteString("; ")
		}
		buf.WriteString(e.String())
	}
	return buf.String()
}
