package handlers

import (
	"evote-backend/internal/adapters/http/middleware"
	"evote-backend/internal/core/services"
	"evote-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles profile endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Profile godoc
// @Summary Get own profile
// @Description Returns the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=models.UserResponse}
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/profile [get]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	profile, err := h.userService.Profile(c.Context(), userID)
	if err != nil {
		return response.DomainError(c, err, "Failed to load profile")
	}

	return response.Success(c, "Profile retrieved successfully", profile)
}

// ChangePassword godoc
// @Summary Change password
// @Description Verifies the old password and replaces it with a new one
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.ChangePasswordInput true "Password change data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /users/profile/password [put]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	var input services.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.OldPassword == "" || input.NewPassword == "" {
		return response.BadRequest(c, "Old and new passwords are required")
	}

	if err := h.userService.ChangePassword(c.Context(), userID, &input); err != nil {
		return response.DomainError(c, err, "Failed to change password")
	}

	return response.Success(c, "Password changed successfully", nil)
}
