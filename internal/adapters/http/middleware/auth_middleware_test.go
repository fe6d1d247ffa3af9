package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"memtrack/internal/config"
	"memtrack/internal/core/domain"
	"memtrack/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: testSecret, AccessTokenMins: 15},
	}
}

func newProtectedApp(t *testing.T, extra ...fiber.Handler) *fiber.App {
	t.Helper()
	app := fiber.New()
	handlers := append([]fiber.Handler{AuthMiddleware(testConfig())}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/protected", handlers...)
	return app
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.GenerateAccessToken(1, "user@example.com", role, testSecret, 15)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}
	return token
}

func doRequest(t *testing.T, app *fiber.App, token string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	app := newProtectedApp(t)
	if got := doRequest(t, app, ""); got != fiber.StatusUnauthorized {
		t.Errorf("expected 401, got %d", got)
	}
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	app := newProtectedApp(t)
	if got := doRequest(t, app, "not-a-token"); got != fiber.StatusUnauthorized {
		t.Errorf("expected 401, got %d", got)
	}
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	app := newProtectedApp(t)
	token, err := jwt.GenerateAccessToken(1, "user@example.com", "Admin", "other-secret", 15)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}
	if got := doRequest(t, app, token); got != fiber.StatusUnauthorized {
		t.Errorf("expected 401, got %d", got)
	}
}

func TestAuthMiddlewareAcceptsCookie(t *testing.T) {
	app := newProtectedApp(t)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: tokenFor(t, "Treasurer")})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRequirePermission(t *testing.T) {
	app := newProtectedApp(t, RequirePermission(domain.ActionDeleteMember))

	if got := doRequest(t, app, tokenFor(t, "Admin")); got != fiber.StatusOK {
		t.Errorf("Admin: expected 200, got %d", got)
	}
	if got := doRequest(t, app, tokenFor(t, "Treasurer")); got != fiber.StatusForbidden {
		t.Errorf("Treasurer: expected 403, got %d", got)
	}
}

func TestAdminOnly(t *testing.T) {
	app := newProtectedApp(t, AdminOnly())

	if got := doRequest(t, app, tokenFor(t, "Admin")); got != fiber.StatusOK {
		t.Errorf("Admin: expected 200, got %d", got)
	}
	if got := doRequest(t, app, tokenFor(t, "President")); got != fiber.StatusForbidden {
		t.Errorf("President: expected 403, got %d", got)
	}
}
