package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"evote-backend/internal/config"
	"evote-backend/internal/core/domain"
	"evote-backend/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

func newProtectedApp(t *testing.T, cfg *config.Config) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protected", AuthMiddleware(cfg), func(c *fiber.Ctx) error {
		userID, ok := UserID(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		return c.JSON(fiber.Map{"user_id": userID})
	})
	return app
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:          "test-secret",
			AccessTokenMins: 15,
		},
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	app := newProtectedApp(t, testConfig())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/protected", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	app := newProtectedApp(t, testConfig())

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	cfg := testConfig()
	app := newProtectedApp(t, cfg)

	token, err := jwt.GenerateAccessToken(7, domain.RoleVoter, cfg.JWT.Secret, cfg.JWT.AccessTokenMins)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAuthMiddlewareAcceptsCookie(t *testing.T) {
	cfg := testConfig()
	app := newProtectedApp(t, cfg)

	token, err := jwt.GenerateAccessToken(7, domain.RoleVoter, cfg.JWT.Secret, cfg.JWT.AccessTokenMins)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	cfg := testConfig()
	app := newProtectedApp(t, cfg)

	token, err := jwt.GenerateAccessToken(7, domain.RoleVoter, cfg.JWT.Secret, -1)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}
