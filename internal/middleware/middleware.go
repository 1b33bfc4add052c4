// Package middleware holds the fiber handlers shared by every route.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/bilmem-net/ai-hediye/internal/logging"
)

// RequestContext copies the id set by the requestid middleware into the
// request's user context so logging.Ctx can tag log lines with it.
func RequestContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		if id == "" {
			id = c.GetRespHeader(fiber.HeaderXRequestID)
		}
		if id != "" {
			c.SetUserContext(logging.ContextWithRequestID(c.UserContext(), id))
		}
		return c.Next()
	}
}

// AccessLog writes one line per request once the handler chain returns.
func AccessLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		event := logging.Ctx(c.UserContext()).Info()
		if status >= fiber.StatusInternalServerError {
			event = logging.Ctx(c.UserContext()).Error()
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("request")
		return err
	}
}

// ClientKey identifies the caller for per-client limits: the first
// X-Forwarded-For hop when present, the peer address otherwise.
func ClientKey(c *fiber.Ctx) string {
	if ips := c.IPs(); len(ips) > 0 && ips[0] != "" {
		return ips[0]
	}
	return c.IP()
}
