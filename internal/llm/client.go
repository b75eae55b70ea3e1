package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/stretchletics/stretchletics/internal/config"
	"github.com/stretchletics/stretchletics/internal/llm/provider"
	"github.com/stretchletics/stretchletics/internal/prompts"
	"github.com/stretchletics/stretchletics/internal/workout"
)

// ErrPolicyViolation is returned in strict mode when a structured plan breaks
// the distance/duration or heart rate/pace conventions.
var ErrPolicyViolation = errors.New("workout plan violates plan policy")

// ErrUnknownRoutine is returned for a routine kind with no prompt.
var ErrUnknownRoutine = errors.New("unknown routine kind")

// Mode selects free text or a parsed workout.Plan.
type Mode int

const (
	ModeText Mode = iota
	ModeStructured
)

func (m Mode) String() string {
	if m == ModeStructured {
		return "structured"
	}
	return "text"
}

// ParseMode maps "text" and "structured" to a Mode; empty means text.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return ModeText, nil
	case "structured":
		return ModeStructured, nil
	}
	return ModeText, fmt.Errorf("unknown mode %q", s)
}

// Result is either a TextResult or a StructuredResult.
type Result interface {
	isResult()
}

type TextResult struct {
	Text string
}

type StructuredResult struct {
	Plan workout.Plan
	// Violations are advisory policy findings; empty in strict mode.
	Violations []workout.PolicyViolation
}

func (TextResult) isResult()       {}
func (StructuredResult) isResult() {}

type Client struct {
	provider provider.Provider
	logger   *slog.Logger
	strict   bool
}

type LLMClientOption func(*Client)

func WithProvider(p provider.Provider) LLMClientOption {
	return func(c *Client) {
		c.provider = p
	}
}

func WithLogger(logger *slog.Logger) LLMClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithStrictPolicy makes structured results that fail workout.CheckPolicy
// an error instead of a warning.
func WithStrictPolicy(strict bool) LLMClientOption {
	return func(c *Client) {
		c.strict = strict
	}
}

func New(opts ...LLMClientOption) (*Client, error) {
	c := &Client{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}

	if c.provider == nil {
		return nil, errors.New("llm provider not configured")
	}
	if err := c.provider.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewDefault wires an OpenAI provider from cfg.
func NewDefault(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	p, err := provider.NewOpenAIProvider(
		provider.WithAPIKey(cfg.OpenaiKey),
		provider.WithModel(cfg.LlmModel),
		provider.WithBaseURL(cfg.OpenaiBaseURL),
		provider.WithMaxRetries(cfg.LlmRetries),
	)
	if err != nil {
		return nil, err
	}
	opts := []LLMClientOption{WithProvider(p), WithStrictPolicy(cfg.StrictPlanPolicy)}
	if logger != nil {
		opts = append(opts, WithLogger(logger))
	}
	return New(opts...)
}

// GetResponse sends prompt as the system message and userMessage as the user
// message in a single completion call. In ModeStructured the model is
// given workout.ResponseSchema and the reply must match workout.PlanSchema.
// Provider errors are returned unchanged.
func (c *Client) GetResponse(ctx context.Context, prompt prompts.Prompt, userMessage string, mode Mode) (Result, error) {
	req := provider.ProviderResponseFormat{
		SystemPrompt: prompt.Text,
		UserPrompt:   userMessage,
	}
	if mode == ModeStructured {
		req.Name = workout.SchemaName
		req.Description = workout.SchemaDescription
		req.Schema = workout.ResponseSchemaJSON
	}

	start := time.Now()
	out, err := c.provider.Complete(ctx, req)
	log := c.logger.With("prompt", prompt.String(), "mode", mode.String(), "elapsed", time.Since(start))
	if err != nil {
		log.Error("completion failed", "error", err)
		return nil, err
	}
	log.Debug("completion ok", "chars", len(out))

	if mode == ModeText {
		return TextResult{Text: out}, nil
	}

	plan, err := workout.ParsePlan([]byte(out))
	if err != nil {
		log.Warn("structured output rejected", "error", err)
		return nil, err
	}
	violations := workout.CheckPolicy(plan)
	if len(violations) > 0 {
		if c.strict {
			return nil, fmt.Errorf("%w: %s", ErrPolicyViolation, violations[0])
		}
		log.Warn("plan policy violations", "count", len(violations), "first", violations[0].String())
	}
	return StructuredResult{Plan: plan, Violations: violations}, nil
}

// Chat answers a free-form routine request with the general routine prompt.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	return c.text(ctx, prompts.GeneralRoutine, message)
}

// Routine answers a routine request of the given kind (see prompts.Routines).
func (c *Client) Routine(ctx context.Context, kind, message string) (string, error) {
	p, ok := prompts.LookupRoutine(kind)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoutine, kind)
	}
	return c.text(ctx, p, message)
}

// Generate produces a training plan for message, as text or as a parsed plan.
func (c *Client) Generate(ctx context.Context, message string, mode Mode) (Result, error) {
	p := prompts.TrainingPlanText
	if mode == ModeStructured {
		p = prompts.TrainingPlanStructured
	}
	return c.GetResponse(ctx, p, message, mode)
}

func (c *Client) text(ctx context.Context, p prompts.Prompt, message string) (string, error) {
	res, err := c.GetResponse(ctx, p, message, ModeText)
	if err != nil {
		return "", err
	}
	return res.(TextResult).Text, nil
}
