package site

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	baseURL string
	now     func() time.Time
}

func NewHandler(baseURL string) *Handler {
	return &Handler{baseURL: baseURL, now: time.Now}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Get("/robots.txt", h.robots)
	app.Get("/sitemap.xml", h.sitemap)
}

func (h *Handler) robots(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(Robots(h.baseURL))
}

func (h *Handler) sitemap(c *fiber.Ctx) error {
	body, err := MarshalSitemap(Sitemap(h.baseURL, h.now()))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to build sitemap"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(body)
}
