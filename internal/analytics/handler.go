package analytics

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bilmem-net/ai-hediye/internal/validation"
)

type Handler struct {
	tracker *Tracker
}

func NewHandler(tracker *Tracker) *Handler {
	return &Handler{tracker: tracker}
}

type eventRequest struct {
	Name   EventName `json:"name" validate:"required"`
	Params *Params   `json:"params"`
}

type pageViewRequest struct {
	Page string `json:"page" validate:"required"`
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Post("/api/v1/events", h.track)
	app.Post("/api/v1/events/page-view", h.pageView)
}

func (h *Handler) track(c *fiber.Ctx) error {
	payload := new(eventRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if errs := validation.Struct(payload, nil); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "errors": errs})
	}
	recorded, err := h.tracker.Track(payload.Name, payload.Params)
	if errors.Is(err, ErrUnknownEvent) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"recorded": recorded})
}

func (h *Handler) pageView(c *fiber.Ctx) error {
	payload := new(pageViewRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"recorded": h.tracker.TrackPageView(payload.Page)})
}
