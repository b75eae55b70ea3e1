package httpapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/stretchletics/stretchletics/internal/llm"
	"github.com/stretchletics/stretchletics/internal/routine"
)

type chatRequest struct {
	Message string `json:"message"`
}

type routineRequest struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

func registerChat(api fiber.Router, h *handlers) {
	api.Post("/chat", func(c *fiber.Ctx) error {
		var in chatRequest
		if err := decodeBody(c, &in); err != nil {
			return badRequest(c, "invalid json: "+err.Error())
		}
		msg := strings.TrimSpace(in.Message)
		if msg == "" {
			return badRequest(c, "No message provided")
		}

		out, err := h.gen.Chat(c.UserContext(), msg)
		if err != nil {
			return h.serverError(c, err)
		}
		return c.JSON(fiber.Map{"response": out})
	})

	api.Post("/routine", func(c *fiber.Ctx) error {
		var in routineRequest
		if err := decodeBody(c, &in); err != nil {
			return badRequest(c, "invalid json: "+err.Error())
		}
		msg := strings.TrimSpace(in.Message)
		if msg == "" {
			return badRequest(c, "No message provided")
		}

		out, err := h.gen.Routine(c.UserContext(), in.Kind, msg)
		if errors.Is(err, llm.ErrUnknownRoutine) {
			return badRequest(c, err.Error())
		}
		if err != nil {
			return h.serverError(c, err)
		}
		exercises := routine.Parse(out)
		if exercises == nil {
			exercises = []routine.Exercise{}
		}
		return c.JSON(fiber.Map{"response": out, "exercises": exercises})
	})
}
