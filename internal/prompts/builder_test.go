package prompts

import (
	"errors"
	"strings"
	"testing"
)

func sampleRequest() TrainingPlanRequest {
	return TrainingPlanRequest{
		Sport:              "running",
		CurrentPerformance: "50:00 for 10K",
		Goal:               "45:00 for 10K",
		SessionsPerWeek:    4,
		AvailableTime:      "5 hours",
	}
}

func TestBuildTrainingPlanPrompt_Deterministic(t *testing.T) {
	req := sampleRequest()
	req.AdditionalInfo = "Knee felt sore last month"
	a, err := BuildTrainingPlanPrompt(req)
	if err != nil {
		t.Fatalf("BuildTrainingPlanPrompt: %v", err)
	}
	b, err := BuildTrainingPlanPrompt(req)
	if err != nil {
		t.Fatalf("BuildTrainingPlanPrompt: %v", err)
	}
	if a != b {
		t.Fatalf("outputs differ:\n%s\n---\n%s", a, b)
	}
}

func TestBuildTrainingPlanPrompt_ContainsFields(t *testing.T) {
	req := sampleRequest()
	req.AdditionalInfo = "Hilly routes only"
	got, err := BuildTrainingPlanPrompt(req)
	if err != nil {
		t.Fatalf("BuildTrainingPlanPrompt: %v", err)
	}
	for _, want := range []string{
		"**Sport:** Running\n",
		"**Current Performance:** 50:00 for 10K\n",
		"**Goal:** 45:00 for 10K\n",
		"**Training Frequency:** 4 sessions per week\n",
		"**Available Training Time:** 5 hours per week",
		"**Additional Information:** Hilly routes only",
		"6. Tips for successful training",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("prompt missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "running") {
		t.Fatalf("expected sport to be title-cased:\n%s", got)
	}
}

func TestBuildTrainingPlanPrompt_SectionOrder(t *testing.T) {
	req := sampleRequest()
	req.PlanLengthWeeks = 10
	req.AdditionalInfo = "Treadmill only"
	got, err := BuildTrainingPlanPrompt(req)
	if err != nil {
		t.Fatalf("BuildTrainingPlanPrompt: %v", err)
	}
	order := []string{
		"**Sport:**",
		"**Current Performance:**",
		"**Goal:**",
		"**Training Frequency:**",
		"**Available Training Time:**",
		"**Plan Length:** 10 weeks",
		"**Additional Information:**",
		"Please provide:",
		"1. A structured training plan lasting exactly 10 weeks",
		"Format the plan clearly",
	}
	last := -1
	for _, s := range order {
		i := strings.Index(got, s)
		if i < 0 {
			t.Fatalf("prompt missing %q:\n%s", s, got)
		}
		if i <= last {
			t.Fatalf("%q out of order:\n%s", s, got)
		}
		last = i
	}
}

func TestBuildTrainingPlanPrompt_OmitsEmptyOptionalLines(t *testing.T) {
	for _, info := range []string{"", "   "} {
		req := sampleRequest()
		req.AdditionalInfo = info
		got, err := BuildTrainingPlanPrompt(req)
		if err != nil {
			t.Fatalf("BuildTrainingPlanPrompt: %v", err)
		}
		if strings.Contains(got, "Additional Information") {
			t.Fatalf("expected no additional information line for %q:\n%s", info, got)
		}
		if strings.Contains(got, "Plan Length") {
			t.Fatalf("expected no plan length line:\n%s", got)
		}
		if !strings.Contains(got, "recommend appropriate duration: 6-12 weeks") {
			t.Fatalf("expected default duration guidance:\n%s", got)
		}
	}
}

func TestBuildTrainingPlanPrompt_TitleCasesSport(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"running", "Running"},
		{"TRAIL running", "Trail Running"},
		{"  triathlon ", "Triathlon"},
	}
	for _, tc := range cases {
		req := sampleRequest()
		req.Sport = tc.in
		got, err := BuildTrainingPlanPrompt(req)
		if err != nil {
			t.Fatalf("BuildTrainingPlanPrompt(%q): %v", tc.in, err)
		}
		if !strings.Contains(got, "**Sport:** "+tc.want+"\n") {
			t.Fatalf("sport %q: expected %q in:\n%s", tc.in, tc.want, got)
		}
	}
}

func TestBuildTrainingPlanPrompt_BlankSport(t *testing.T) {
	for _, sport := range []string{"", "  \t"} {
		req := sampleRequest()
		req.Sport = sport
		_, err := BuildTrainingPlanPrompt(req)
		if !errors.Is(err, ErrBlankSport) {
			t.Fatalf("sport %q: expected ErrBlankSport, got %v", sport, err)
		}
	}
}

func TestLookupRoutine(t *testing.T) {
	p, ok := LookupRoutine("")
	if !ok || p.Name != GeneralRoutine.Name {
		t.Fatalf("empty kind: got %v %v", p, ok)
	}
	p, ok = LookupRoutine("cooldown")
	if !ok || p.Text != CoolDownAfterWorkout.Text {
		t.Fatalf("cooldown: got %v %v", p, ok)
	}
	if _, ok := LookupRoutine("yoga"); ok {
		t.Fatal("expected unknown kind to be rejected")
	}
}

func TestCatalog_TextsEmbedded(t *testing.T) {
	for _, p := range []Prompt{GeneralRoutine, WarmUpCoolDown, CoolDownAfterWorkout, TrainingPlanText, TrainingPlanStructured} {
		if strings.TrimSpace(p.Text) == "" {
			t.Fatalf("%s has no text", p)
		}
	}
	if !strings.Contains(GeneralRoutine.Text, "1. Exercise Name - Duration") {
		t.Fatal("general routine prompt must document the canonical format")
	}
	if !strings.Contains(TrainingPlanStructured.Text, "difficulty") {
		t.Fatal("structured plan prompt must describe the workout fields")
	}
}
