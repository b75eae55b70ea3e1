package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/stretchletics/stretchletics/internal/config"
	"github.com/stretchletics/stretchletics/internal/llm"
)

// Generator is the part of llm.Client the handlers depend on.
type Generator interface {
	Chat(ctx context.Context, message string) (string, error)
	Routine(ctx context.Context, kind, message string) (string, error)
	Generate(ctx context.Context, message string, mode llm.Mode) (llm.Result, error)
}

func NewServer(cfg *config.Config, logger *slog.Logger, gen Generator) *fiber.App {
	if logger == nil {
		logger = slog.Default()
	}
	app := fiber.New(fiber.Config{DisableStartupMessage: true, ReadTimeout: 30 * time.Second, WriteTimeout: 60 * time.Second})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(requestLogger(logger))

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	api := app.Group("/api", cors.New(cors.Config{AllowOrigins: strings.Join(cfg.CORSOrigins, ",")}))
	h := &handlers{gen: gen, logger: logger}
	registerChat(api, h)
	registerTrainingPlan(api, h)

	// Browser chat page
	app.Static("/", cfg.StaticDir)
	return app
}

type handlers struct {
	gen    Generator
	logger *slog.Logger
}

func (h *handlers) log(c *fiber.Ctx) *slog.Logger {
	return h.logger.With("request_id", requestID(c), "route", c.Path())
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
		return id
	}
	return ""
}

func requestLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Debug("request",
			"request_id", requestID(c),
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"elapsed", time.Since(start),
		)
		return err
	}
}

// decodeBody reads a JSON body into v. An empty body decodes as {}.
func decodeBody(c *fiber.Ctx, v any) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	return json.Unmarshal(body, v)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func (h *handlers) serverError(c *fiber.Ctx, err error) error {
	h.log(c).Error("request failed", "error", err)
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
