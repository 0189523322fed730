package response

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"evote-backend/internal/core/domain"

	"github.com/gofiber/fiber/v2"
)

func TestDomainErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", fmt.Errorf("%w: bad input", domain.ErrValidation), fiber.StatusBadRequest},
		{"unauthorized", fmt.Errorf("%w: who are you", domain.ErrUnauthorized), fiber.StatusUnauthorized},
		{"forbidden", fmt.Errorf("%w: not yours", domain.ErrForbidden), fiber.StatusForbidden},
		{"not found", fmt.Errorf("%w: gone", domain.ErrNotFound), fiber.StatusNotFound},
		{"conflict", fmt.Errorf("%w: twice", domain.ErrConflict), fiber.StatusConflict},
		{"unknown", fmt.Errorf("driver exploded"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return DomainError(c, tc.err, "something went wrong")
			})

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, resp.StatusCode)
			}

			var body Response
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Success {
				t.Error("error responses must have success=false")
			}
			if body.Error == "" {
				t.Error("error responses must carry an error message")
			}
		})
	}
}

func TestDomainErrorHidesInternals(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return DomainError(c, fmt.Errorf("dsn user=root password=hunter2"), "Failed to do the thing")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var body Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "Failed to do the thing" {
		t.Errorf("internal errors must surface only the fallback message, got %q", body.Error)
	}
}
