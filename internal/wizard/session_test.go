package wizard

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	sessions := NewSessions("secret", time.Hour)
	token, sid, err := sessions.Issue()
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	app := fiber.New()
	app.Use(sessions.Middleware())
	app.Get("/whoami", func(c *fiber.Ctx) error {
		got, err := SessionIDFromCtx(c)
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendString(got)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	buf, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(buf) != sid {
		t.Fatalf("expected sid %q, got %q", sid, buf)
	}
}

func TestExpiredSessionIsRejected(t *testing.T) {
	sessions := NewSessions("secret", time.Hour)
	sessions.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := sessions.Issue()
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	app := fiber.New()
	app.Use(sessions.Middleware())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}
}

func TestForeignSignatureIsRejected(t *testing.T) {
	token, _, _ := NewSessions("other", time.Hour).Issue()
	app := fiber.New()
	app.Use(NewSessions("secret", time.Hour).Middleware())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}
}
