package wizard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bilmem-net/ai-hediye/internal/logging"
	"github.com/bilmem-net/ai-hediye/internal/validation"
)

type Handler struct {
	service  *Service
	sessions *Sessions
}

type valueRequest[T any] struct {
	Value T `json:"value"`
}

type budgetRequest struct {
	Value *float64 `json:"value" validate:"required,gt=0"`
}

type interestRequest struct {
	Value string `json:"value" validate:"required,max=64"`
}

type stateResponse struct {
	State      State `json:"state"`
	CanProceed bool  `json:"canProceed"`
}

func NewHandler(service *Service, sessions *Sessions) *Handler {
	return &Handler{service: service, sessions: sessions}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Post(SessionPath, h.createSession)
}

// RegisterProtectedRoutes mounts the wizard routes on a router that already
// runs the session middleware, typically app.Group("/api/v1/wizard", ...).
func (h *Handler) RegisterProtectedRoutes(r fiber.Router) {
	r.Get("/", h.getState)
	r.Put("/recipient", h.setRecipient)
	r.Put("/closeness", h.setCloseness)
	r.Put("/budget", h.setBudget)
	r.Put("/occasion", h.setOccasion)
	r.Post("/interests/toggle", h.toggleInterest)
	r.Post("/next", h.next)
	r.Post("/prev", h.prev)
	r.Post("/reset", h.reset)
}

func (h *Handler) createSession(c *fiber.Ctx) error {
	token, sid, err := h.sessions.Issue()
	if err != nil {
		logging.Ctx(c.UserContext()).Error().Err(err).Msg("failed to sign session token")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate token"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token":     token,
		"sessionId": sid,
		"state":     DefaultState(),
	})
}

// open resolves the caller's session and hydrates its wizard.
func (h *Handler) open(c *fiber.Ctx) (*Wizard, error) {
	sid, err := SessionIDFromCtx(c)
	if err != nil {
		return nil, c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	return h.service.Open(c.UserContext(), sid), nil
}

func (h *Handler) respond(c *fiber.Ctx, w *Wizard, err error) error {
	if err != nil {
		logging.Ctx(c.UserContext()).Error().Err(err).Msg("wizard mutation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save wizard state"})
	}
	return c.JSON(stateResponse{State: w.State(), CanProceed: w.CanProceed()})
}

func (h *Handler) getState(c *fiber.Ctx) error {
	w, err := h.open(c)
	if w == nil {
		return err
	}
	return h.respond(c, w, nil)
}

func (h *Handler) setRecipient(c *fiber.Ctx) error {
	payload := new(valueRequest[Recipient])
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !payload.Value.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown recipient"})
	}
	w, err := h.open(c)
	if w == nil {
		return err
	}
	return h.respond(c, w, w.SetRecipient(c.UserContext(), payload.Value))
}

func (h *Handler) setCloseness(c *fiber.Ctx) error {
	payload := new(valueRequest[Closeness])
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !payload.Value.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown closeness"})
	}
	w, err := h.open(c)
	if w == nil {
		return err
	}
	return h.respond(c, w, w.SetCloseness(c.UserContext(), payload.Value))
}

func (h *Handler) setBudget(c *fiber.Ctx) error {
	payload := new(budgetRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if errs := validation.Struct(payload, nil); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "budget must be a positive number", "errors": errs})
	}
	w, err := h.open(c)
	if w == nil {
		return err
	}
	return h.respond(c, w, w.SetBudget(c.UserContext(), *payload.Value))
}

func (h *Handler) setOccasion(c *fiber.Ctx) error {
	payload := new(valueRequest[*Occasion])
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if payload.Value != nil && !payload.Value.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown occasion"})
	}
	w, err := h.open(c)
	if w == nil {
		return err
	}
	return h.respond(c, w, w.SetOccasion(c.UserContext(), payload.Value))
}

func (h *Handler) toggleInterest(c *fiber.Ctx) error {
	payload := new(interestRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if errs := validation.Struct(payload, nil); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "errors": errs})
	}
	w, err := h.open(c)
	if w == nil {
		return err
	}
	return h.respond(c, w, w.ToggleInterest(c.UserContext(), payload.Value))
}

func (h *Handler) next(c *fiber.Ctx) error {
	w, err := h.open(c)
	if w == nil {
		return err
	}
	return h.respond(c, w, w.Next(c.UserContext()))
}

func (h *Handler) prev(c *fiber.Ctx) error {
	w, err := h.open(c)
	if w == nil {
		return err
	}
	return h.respond(c, w, w.Prev(c.UserContext()))
}

func (h *Handler) reset(c *fiber.Ctx) error {
	w, err := h.open(c)
	if w == nil {
		return err
	}
	return h.respond(c, w, w.Reset(c.UserContext()))
}
