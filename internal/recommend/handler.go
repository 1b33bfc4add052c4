package recommend

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bilmem-net/ai-hediye/internal/logging"
	"github.com/bilmem-net/ai-hediye/internal/wizard"
)

type Handler struct {
	service *Service
	wizards *wizard.Service
}

func NewHandler(service *Service, wizards *wizard.Service) *Handler {
	return &Handler{service: service, wizards: wizards}
}

// RegisterPublicRoutes mounts the stateless recommendation endpoint. Extra
// handlers (a rate guard for example) run before it.
func (h *Handler) RegisterPublicRoutes(app fiber.Router, guards ...fiber.Handler) {
	app.Post(RecommendPath, append(guards, h.recommend)...)
}

// RegisterProtectedRoutes mounts the session-scoped result routes on the
// wizard group.
func (h *Handler) RegisterProtectedRoutes(r fiber.Router) {
	r.Get("/fallback", h.fallback)
	r.Post("/results", h.results)
}

func (h *Handler) recommend(c *fiber.Ctx) error {
	payload := new(recommendRequest)
	if err := c.BodyParser(payload); err != nil || payload.State == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid state provided"})
	}
	return h.generate(c, *payload.State)
}

func (h *Handler) generate(c *fiber.Ctx, state wizard.State) error {
	recs, err := h.service.Recommend(c.UserContext(), state)
	if err != nil {
		ue := Classify(err)
		logging.Ctx(c.UserContext()).Error().Err(err).Str("category", string(ue.Category)).Msg("ai recommendation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": ue.Message})
	}
	return c.JSON(recommendResponse{Recommendations: recs})
}

func (h *Handler) fallback(c *fiber.Ctx) error {
	state, err := h.sessionState(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"recommendations": h.service.Fallback(state)})
}

func (h *Handler) results(c *fiber.Ctx) error {
	state, err := h.sessionState(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	if !state.Complete() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid state provided"})
	}
	return h.generate(c, state)
}

func (h *Handler) sessionState(c *fiber.Ctx) (wizard.State, error) {
	sid, err := wizard.SessionIDFromCtx(c)
	if err != nil {
		return wizard.State{}, err
	}
	return h.wizards.State(c.UserContext(), sid), nil
}
