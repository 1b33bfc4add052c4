package feedback

import (
	"errors"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"

	"github.com/bilmem-net/ai-hediye/internal/logging"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Post("/api/feedback", h.submit)
}

func (h *Handler) submit(c *fiber.Ctx) error {
	var payload request
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		logging.Ctx(c.UserContext()).Warn().Err(err).Msg("unreadable feedback payload")
		recordOutcome("error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgGenericError})
	}

	if payload.trapped() {
		recordOutcome(string(OutcomeTrapped))
		return c.JSON(fiber.Map{"success": true, "message": "Received"})
	}

	f := payload.feedback()
	if msg := f.Validate(); msg != "" {
		recordOutcome("invalid")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	outcome, err := h.service.Submit(c.UserContext(), f, clientKey(c))
	switch {
	case errors.Is(err, ErrRateLimited):
		recordOutcome("rate_limited")
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": msgRateLimited})
	case errors.Is(err, ErrMailerNotConfigured):
		recordOutcome("not_configured")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgConfigError})
	case err != nil:
		recordOutcome("error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgGenericError})
	}

	recordOutcome(string(outcome))
	if outcome == OutcomeDevLog {
		return c.JSON(fiber.Map{"success": true, "mode": "dev_log"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Email sent"})
}

// clientKey identifies the submitter for rate limiting.
func clientKey(c *fiber.Ctx) string {
	if v := c.Get(fiber.HeaderXForwardedFor); v != "" {
		return v
	}
	return "unknown"
}
