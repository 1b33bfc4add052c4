package main

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bilmem-net/ai-hediye/internal/analytics"
	"github.com/bilmem-net/ai-hediye/internal/catalog"
	"github.com/bilmem-net/ai-hediye/internal/feedback"
	"github.com/bilmem-net/ai-hediye/internal/logging"
	"github.com/bilmem-net/ai-hediye/internal/middleware"
	"github.com/bilmem-net/ai-hediye/internal/options"
	"github.com/bilmem-net/ai-hediye/internal/recommend"
	"github.com/bilmem-net/ai-hediye/internal/site"
	"github.com/bilmem-net/ai-hediye/internal/wizard"
)

// services is everything the HTTP layer needs, built by main from config.
type services struct {
	SiteURL            string
	RecommendPerMinute int

	Sessions  *wizard.Sessions
	Wizards   *wizard.Service
	Catalog   *catalog.Service
	Recommend *recommend.Service
	Feedback  *feedback.Service
	Tracker   *analytics.Tracker
}

func newApp(s services) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "ai-hediye",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestContext())
	app.Use(middleware.AccessLog())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	site.NewHandler(s.SiteURL).RegisterPublicRoutes(app)
	options.NewHandler().RegisterPublicRoutes(app)
	catalog.NewHandler(s.Catalog).RegisterPublicRoutes(app)
	feedback.NewHandler(s.Feedback).RegisterPublicRoutes(app)
	analytics.NewHandler(s.Tracker).RegisterPublicRoutes(app)

	recommendHandler := recommend.NewHandler(s.Recommend, s.Wizards)
	recommendHandler.RegisterPublicRoutes(app, recommendGuard(s.RecommendPerMinute)...)

	wizardHandler := wizard.NewHandler(s.Wizards, s.Sessions)
	wizardHandler.RegisterPublicRoutes(app)

	protected := app.Group("/api/v1/wizard", s.Sessions.Middleware())
	wizardHandler.RegisterProtectedRoutes(protected)
	recommendHandler.RegisterProtectedRoutes(protected)

	return app
}

// recommendGuard limits AI calls per client. Zero disables the guard.
func recommendGuard(perMinute int) []fiber.Handler {
	if perMinute <= 0 {
		return nil
	}
	return []fiber.Handler{limiter.New(limiter.Config{
		Max:          perMinute,
		Expiration:   time.Minute,
		KeyGenerator: middleware.ClientKey,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": recommend.CategoryRateLimit.Message()})
		},
	})}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if fe, ok := err.(*fiber.Error); ok {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		logging.Ctx(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		return c.Status(code).JSON(fiber.Map{"error": "Bir sorun oluştu"})
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
