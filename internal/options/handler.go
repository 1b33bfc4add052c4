package options

import "github.com/gofiber/fiber/v2"

type Handler struct {
	options Options
}

func NewHandler() *Handler {
	return &Handler{options: All()}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Get("/api/v1/options", h.getOptions)
}

func (h *Handler) getOptions(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	return c.JSON(h.options)
}
