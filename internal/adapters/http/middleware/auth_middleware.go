package middleware

import (
	"strings"

	"evote-backend/internal/config"
	"evote-backend/internal/pkg/jwt"
	"evote-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates the bearer token (or access_token cookie) and puts
// the caller's identity into request locals. Requests without a valid token
// never reach the core logic.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		// 1. Try cookie first
		accessToken = c.Cookies("access_token")

		// 2. Fall back to Authorization header
		if accessToken == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				accessToken = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		c.Locals("userID", claims.UserID)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// UserID returns the authenticated user's identifier from locals
func UserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("userID").(uint)
	return id, ok
}
