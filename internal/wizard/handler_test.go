package wizard

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/goccy/go-json"
)

func newTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	sessions := NewSessions("test-secret", time.Hour)
	h := NewHandler(NewService(NewInMemoryStore()), sessions)
	app := fiber.New()
	h.RegisterProtectedRoutes(app.Group("/api/v1/wizard", sessions.Middleware()))
	h.RegisterPublicRoutes(app)

	res, err := app.Test(httptest.NewRequest(http.MethodPost, SessionPath, nil))
	if err != nil {
		t.Fatalf("session request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	return app, body.Token
}

func call(t *testing.T, app *fiber.App, token, method, path, body string) (int, stateResponse) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	var out stateResponse
	_ = json.NewDecoder(res.Body).Decode(&out)
	return res.StatusCode, out
}

func TestWizardRoutesRequireSession(t *testing.T) {
	app, _ := newTestApp(t)
	code, _ := call(t, app, "", http.MethodGet, "/api/v1/wizard", "")
	if code != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", code)
	}
}

func TestWizardFlow(t *testing.T) {
	app, token := newTestApp(t)

	code, out := call(t, app, token, http.MethodGet, "/api/v1/wizard", "")
	if code != fiber.StatusOK || out.State.CurrentStep != 1 || out.CanProceed {
		t.Fatalf("unexpected initial state: %d %+v", code, out)
	}

	code, out = call(t, app, token, http.MethodPut, "/api/v1/wizard/recipient", `{"value":"anne"}`)
	if code != fiber.StatusOK || !out.CanProceed {
		t.Fatalf("expected to proceed after recipient, got %d %+v", code, out)
	}

	_, out = call(t, app, token, http.MethodPost, "/api/v1/wizard/next", "")
	if out.State.CurrentStep != 2 {
		t.Fatalf("expected step 2, got %d", out.State.CurrentStep)
	}

	code, out = call(t, app, token, http.MethodPut, "/api/v1/wizard/budget", `{"value":2500}`)
	if code != fiber.StatusOK || out.State.Budget != 2500 {
		t.Fatalf("expected budget 2500, got %d %v", code, out.State.Budget)
	}

	for _, i := range []string{"kitap", "spor", "oyun", "moda"} {
		_, out = call(t, app, token, http.MethodPost, "/api/v1/wizard/interests/toggle", `{"value":"`+i+`"}`)
	}
	if len(out.State.Interests) != MaxInterests {
		t.Fatalf("expected %d interests, got %v", MaxInterests, out.State.Interests)
	}

	// state survives across requests of the same session
	_, out = call(t, app, token, http.MethodGet, "/api/v1/wizard", "")
	if out.State.Recipient == nil || *out.State.Recipient != RecipientMother {
		t.Fatalf("expected recipient to be persisted, got %+v", out.State)
	}

	_, out = call(t, app, token, http.MethodPost, "/api/v1/wizard/reset", "")
	if out.State.CurrentStep != 1 || out.State.Recipient != nil || len(out.State.Interests) != 0 {
		t.Fatalf("expected defaults after reset, got %+v", out.State)
	}
}

func TestWizardRejectsUnknownEnums(t *testing.T) {
	app, token := newTestApp(t)
	if code, _ := call(t, app, token, http.MethodPut, "/api/v1/wizard/recipient", `{"value":"komsu"}`); code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for unknown recipient, got %d", code)
	}
	if code, _ := call(t, app, token, http.MethodPut, "/api/v1/wizard/occasion", `{"value":"bayram"}`); code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for unknown occasion, got %d", code)
	}
	for _, body := range []string{`{}`, `{"value":0}`, `{"value":-500}`, `{"value":null}`} {
		if code, _ := call(t, app, token, http.MethodPut, "/api/v1/wizard/budget", body); code != fiber.StatusBadRequest {
			t.Fatalf("expected 400 for budget %s, got %d", body, code)
		}
	}
	if _, out := call(t, app, token, http.MethodGet, "/api/v1/wizard", ""); out.State.Budget != DefaultBudget {
		t.Fatalf("rejected budgets must not be stored, got %v", out.State.Budget)
	}
	if code, out := call(t, app, token, http.MethodPut, "/api/v1/wizard/occasion", `{"value":null}`); code != fiber.StatusOK || out.State.Occasion != nil {
		t.Fatalf("expected null occasion to clear, got %d", code)
	}
}
