// Package cli holds the stretchletics-plan command.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stretchletics/stretchletics/internal/calendar"
	"github.com/stretchletics/stretchletics/internal/fitfile"
	"github.com/stretchletics/stretchletics/internal/llm"
	"github.com/stretchletics/stretchletics/internal/plantext"
	"github.com/stretchletics/stretchletics/internal/prompts"
	"github.com/stretchletics/stretchletics/internal/workout"
)

// PlanGenerator produces a training plan from a built prompt.
type PlanGenerator interface {
	Generate(ctx context.Context, message string, mode llm.Mode) (llm.Result, error)
}

// NotesLoader reads extra athlete notes from a path or URL.
type NotesLoader interface {
	Load(ctx context.Context, src string) (string, error)
}

// Deps are built after flag validation so a missing API key does not block
// --help.
type Deps struct {
	Generator PlanGenerator
	Notes     NotesLoader
}

type planFlags struct {
	sport          string
	currentTime    string
	goalTime       string
	sessions       int
	availableTime  string
	planLength     int
	additionalInfo string
	notesURL       string
	text           bool
	format         string
	startDate      string
	name           string
}

func NewPlanCommand(newDeps func() (Deps, error)) *cobra.Command {
	var f planFlags
	cmd := &cobra.Command{
		Use:           "stretchletics-plan",
		Short:         "Generate a personalized training plan",
		Long:          "Generate a training plan for a sport and goal and print it as text, JSON, YAML, an iCalendar file or a zip of FIT workouts.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), f, newDeps)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.sport, "sport", "running", "sport to train for")
	fl.StringVar(&f.currentTime, "current-time", "50:00 for 10K", "current performance")
	fl.StringVar(&f.goalTime, "goal-time", "45:00 for 10K", "goal performance")
	fl.IntVar(&f.sessions, "sessions", 4, "training sessions per week")
	fl.StringVar(&f.availableTime, "available-time", "5 hours", "training time available per week")
	fl.IntVar(&f.planLength, "plan-length", 8, "plan length in weeks")
	fl.StringVar(&f.additionalInfo, "additional-info", "", "injuries, preferences or constraints")
	fl.StringVar(&f.notesURL, "additional-info-url", "", "file path or URL with more athlete notes")
	fl.BoolVar(&f.text, "text", false, "generate a free text plan; printed as is unless --format is ics or fit")
	fl.StringVar(&f.format, "format", "json", "output format: json, yaml, ics or fit")
	fl.StringVar(&f.startDate, "start-date", "", "first day of week 1 (YYYY-MM-DD), required for ics")
	fl.StringVar(&f.name, "name", "", "calendar name for ics output")
	return cmd
}

func runPlan(ctx context.Context, stdout, stderr io.Writer, f planFlags, newDeps func() (Deps, error)) error {
	if ctx == nil {
		ctx = context.Background()
	}
	format := strings.ToLower(strings.TrimSpace(f.format))
	switch format {
	case "json", "yaml", "ics", "fit":
	default:
		return fmt.Errorf("unknown format %q", f.format)
	}
	var start time.Time
	if format == "ics" {
		if f.startDate == "" {
			return fmt.Errorf("--start-date is required for ics output")
		}
		var err error
		if start, err = time.Parse(time.DateOnly, f.startDate); err != nil {
			return fmt.Errorf("invalid --start-date: %w", err)
		}
	}

	deps, err := newDeps()
	if err != nil {
		return err
	}

	info := f.additionalInfo
	if f.notesURL != "" && deps.Notes != nil {
		notes, err := deps.Notes.Load(ctx, f.notesURL)
		if err != nil {
			return fmt.Errorf("load additional info: %w", err)
		}
		info = strings.TrimSpace(strings.Join([]string{info, notes}, "\n"))
	}

	prompt, err := prompts.BuildTrainingPlanPrompt(prompts.TrainingPlanRequest{
		Sport:              f.sport,
		CurrentPerformance: f.currentTime,
		Goal:               f.goalTime,
		SessionsPerWeek:    f.sessions,
		AvailableTime:      f.availableTime,
		PlanLengthWeeks:    f.planLength,
		AdditionalInfo:     info,
	})
	if err != nil {
		return err
	}

	mode := llm.ModeStructured
	if f.text {
		mode = llm.ModeText
	}
	res, err := deps.Generator.Generate(ctx, prompt, mode)
	if err != nil {
		return err
	}

	opts := exportOptions{
		calendar: calendar.Options{Name: f.name, Start: start},
		fit:      fitfile.Options{Sport: f.sport},
	}
	switch r := res.(type) {
	case llm.TextResult:
		if format != "ics" && format != "fit" {
			_, err = fmt.Fprintln(stdout, r.Text)
			return err
		}
		plan := plantext.ToPlan(plantext.Parse(r.Text))
		if len(plan.Workouts) == 0 {
			return fmt.Errorf("no workouts found in the text plan")
		}
		return writePlan(stdout, plan, format, opts)
	case llm.StructuredResult:
		for _, v := range r.Violations {
			fmt.Fprintln(stderr, "warning:", v) //nolint:errcheck
		}
		return writePlan(stdout, r.Plan, format, opts)
	}
	return fmt.Errorf("unexpected result type %T", res)
}

type exportOptions struct {
	calendar calendar.Options
	fit      fitfile.Options
}

func writePlan(w io.Writer, p workout.Plan, format string, opts exportOptions) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return err
		}
		return enc.Close()
	case "ics":
		return calendar.Encode(w, p, opts.calendar)
	case "fit":
		_, err := fitfile.WriteArchive(w, p, opts.fit)
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
