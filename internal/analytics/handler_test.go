package analytics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestEventRoutes(t *testing.T) {
	tr, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	app := fiber.New()
	NewHandler(tr).RegisterPublicRoutes(app)

	cases := []struct {
		path, body string
		want       int
	}{
		{"/api/v1/events", `{"name":"share_action","params":{"share_type":"whatsapp"}}`, 202},
		{"/api/v1/events", `{"name":"share_action","params":{"share_type":"telegram"}}`, 400},
		{"/api/v1/events", `{"name":"nope"}`, 400},
		{"/api/v1/events", `{"params":{}}`, 400},
		{"/api/v1/events/page-view", `{"page":"home"}`, 202},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("POST", tc.path, strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: %v", tc.body, err)
		}
		if res.StatusCode != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.body, tc.want, res.StatusCode)
		}
	}
	if got := len(tr.Events()); got != 2 {
		t.Fatalf("expected 2 recorded events, got %d", got)
	}
}
