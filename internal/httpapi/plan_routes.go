package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/atombender/go-jsonschema/pkg/types"
	"github.com/gofiber/fiber/v2"

	"github.com/stretchletics/stretchletics/internal/calendar"
	"github.com/stretchletics/stretchletics/internal/fitfile"
	"github.com/stretchletics/stretchletics/internal/id"
	"github.com/stretchletics/stretchletics/internal/llm"
	"github.com/stretchletics/stretchletics/internal/plantext"
	"github.com/stretchletics/stretchletics/internal/prompts"
	"github.com/stretchletics/stretchletics/internal/workout"
)

type trainingPlanRequest struct {
	prompts.TrainingPlanRequest
	Mode string `json:"mode"`
}

// exportRequest carries either a structured plan or the text of a text-mode
// plan; plan wins when both are set.
type exportRequest struct {
	Name      string                  `json:"name"`
	Sport     string                  `json:"sport"`
	StartDate *types.SerializableDate `json:"start_date"`
	Plan      json.RawMessage         `json:"plan"`
	Text      string                  `json:"text"`
}

var errNoPlan = errors.New("plan or text is required")

// resolvePlan validates a structured plan against the plan schema, or
// parses text into one.
func (r exportRequest) resolvePlan() (workout.Plan, error) {
	var p workout.Plan
	switch raw := bytes.TrimSpace(r.Plan); {
	case len(raw) > 0 && !bytes.Equal(raw, []byte("null")):
		parsed, err := workout.ParsePlan(raw)
		if err != nil {
			return workout.Plan{}, err
		}
		p = parsed
	case strings.TrimSpace(r.Text) != "":
		p = plantext.ToPlan(plantext.Parse(r.Text))
	default:
		return workout.Plan{}, errNoPlan
	}
	if len(p.Workouts) == 0 {
		return workout.Plan{}, errors.New("plan has no workouts")
	}
	return p, nil
}

func exportName(name string) string {
	if s := id.Slug(name); s != "" {
		return s
	}
	return "training-plan"
}

func registerTrainingPlan(api fiber.Router, h *handlers) {
	api.Post("/training-plan", func(c *fiber.Ctx) error {
		var in trainingPlanRequest
		if err := decodeBody(c, &in); err != nil {
			return badRequest(c, "invalid json: "+err.Error())
		}
		mode, err := llm.ParseMode(in.Mode)
		if err != nil {
			return badRequest(c, err.Error())
		}
		prompt, err := prompts.BuildTrainingPlanPrompt(in.TrainingPlanRequest)
		if errors.Is(err, prompts.ErrBlankSport) {
			return badRequest(c, err.Error())
		}
		if err != nil {
			return h.serverError(c, err)
		}

		res, err := h.gen.Generate(c.UserContext(), prompt, mode)
		if err != nil {
			return h.serverError(c, err)
		}
		switch r := res.(type) {
		case llm.TextResult:
			plan := plantext.ToPlan(plantext.Parse(r.Text))
			return c.JSON(fiber.Map{
				"response": r.Text,
				"plan":     plan,
				"summary":  workout.Summarize(plan),
			})
		case llm.StructuredResult:
			warnings := r.Violations
			if warnings == nil {
				warnings = []workout.PolicyViolation{}
			}
			return c.JSON(fiber.Map{
				"plan":     r.Plan,
				"summary":  workout.Summarize(r.Plan),
				"warnings": warnings,
			})
		}
		return h.serverError(c, fmt.Errorf("unexpected result type %T", res))
	})

	api.Post("/training-plan/ics", func(c *fiber.Ctx) error {
		var in exportRequest
		if err := decodeBody(c, &in); err != nil {
			return badRequest(c, "invalid json: "+err.Error())
		}
		if in.StartDate == nil {
			return badRequest(c, "start_date is required")
		}
		plan, err := in.resolvePlan()
		if err != nil {
			return badRequest(c, err.Error())
		}

		body, err := calendar.Marshal(plan, calendar.Options{Name: in.Name, Start: in.StartDate.Time})
		if err != nil {
			return badRequest(c, err.Error())
		}
		c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", exportName(in.Name)+".ics"))
		return c.Status(http.StatusOK).Send(body)
	})

	api.Post("/training-plan/fit", func(c *fiber.Ctx) error {
		var in exportRequest
		if err := decodeBody(c, &in); err != nil {
			return badRequest(c, "invalid json: "+err.Error())
		}
		plan, err := in.resolvePlan()
		if err != nil {
			return badRequest(c, err.Error())
		}

		var buf bytes.Buffer
		n, err := fitfile.WriteArchive(&buf, plan, fitfile.Options{Sport: in.Sport, Now: time.Now()})
		if err != nil {
			return h.serverError(c, err)
		}
		if n == 0 {
			return badRequest(c, "plan has only rest days")
		}
		h.log(c).Info("fit export", "files", n)
		c.Set(fiber.HeaderContentType, "application/zip")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", exportName(in.Name)+"-fit.zip"))
		return c.Status(http.StatusOK).Send(buf.Bytes())
	})
}
