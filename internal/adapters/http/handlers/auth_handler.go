package handlers

import (
	"time"

	"evote-backend/internal/adapters/http/middleware"
	"evote-backend/internal/config"
	"evote-backend/internal/core/services"
	"evote-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles signup, login and token lifecycle endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// Signup godoc
// @Summary Register a new user
// @Description Creates a voter or the single admin account and returns a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body services.SignupInput true "Signup data"
// @Success 201 {object} response.Response{data=services.AuthResponse}
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /users/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input services.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.AadharCardNumber == "" || input.Password == "" {
		return response.BadRequest(c, "Aadhaar card number and password are required")
	}

	result, err := h.authService.Signup(c.Context(), &input)
	if err != nil {
		return response.DomainError(c, err, "Failed to register user")
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)

	return response.Created(c, "User registered successfully", result)
}

// Login godoc
// @Summary Login
// @Description Authenticates by aadhaar card number and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body services.LoginInput true "Login credentials"
// @Success 200 {object} response.Response{data=services.AuthResponse}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /users/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.AadharCardNumber == "" || input.Password == "" {
		return response.BadRequest(c, "Aadhaar card number and password are required")
	}

	result, err := h.authService.Login(c.Context(), &input)
	if err != nil {
		return response.DomainError(c, err, "Failed to login")
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)

	return response.Success(c, "Login successful", result)
}

// RefreshToken godoc
// @Summary Refresh tokens
// @Description Rotates the refresh token and issues a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Response{data=services.AuthResponse}
// @Failure 401 {object} response.Response
// @Router /users/refresh [post]
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	refreshToken := h.extractRefreshToken(c)
	if refreshToken == "" {
		return response.Unauthorized(c, "Refresh token required")
	}

	result, err := h.authService.RefreshToken(c.Context(), refreshToken)
	if err != nil {
		h.clearAuthCookies(c)
		return response.DomainError(c, err, "Failed to refresh token")
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)

	return response.Success(c, "Token refreshed successfully", result)
}

// Logout godoc
// @Summary Logout
// @Description Revokes the refresh token and clears auth cookies
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /users/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	refreshToken := h.extractRefreshToken(c)
	if refreshToken != "" {
		if err := h.authService.Logout(c.Context(), refreshToken); err != nil {
			return response.DomainError(c, err, "Failed to logout")
		}
	}

	h.clearAuthCookies(c)

	return response.Success(c, "Logged out successfully", nil)
}

// LogoutAll godoc
// @Summary Logout everywhere
// @Description Revokes all of the user's refresh tokens
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /users/logout-all [post]
func (h *AuthHandler) LogoutAll(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	if err := h.authService.LogoutAll(c.Context(), userID); err != nil {
		return response.DomainError(c, err, "Failed to logout")
	}

	h.clearAuthCookies(c)

	return response.Success(c, "Logged out from all devices", nil)
}

// extractRefreshToken reads the refresh token from cookie or body
func (h *AuthHandler) extractRefreshToken(c *fiber.Ctx) string {
	if token := c.Cookies("refresh_token"); token != "" {
		return token
	}

	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&body); err == nil {
		return body.RefreshToken
	}
	return ""
}

// setAuthCookies sets httpOnly auth cookies
func (h *AuthHandler) setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(time.Duration(h.cfg.JWT.AccessTokenMins) * time.Minute),
		HTTPOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
		Path:     "/",
	})

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  time.Now().Add(time.Duration(h.cfg.JWT.RefreshTokenDays) * 24 * time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
		Path:     "/",
	})
}

// clearAuthCookies expires both auth cookies
func (h *AuthHandler) clearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  expired,
		HTTPOnly: true,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  expired,
		HTTPOnly: true,
		Path:     "/",
	})
}
