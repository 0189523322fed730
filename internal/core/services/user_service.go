package services

import (
	"context"
	"errors"
	"fmt"

	"evote-backend/internal/adapters/persistence/models"
	"evote-backend/internal/adapters/persistence/repositories"
	"evote-backend/internal/core/domain"
	"evote-backend/internal/pkg/password"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// User service errors
var (
	ErrOldPasswordWrong = fmt.Errorf("%w: old password is incorrect", domain.ErrValidation)
)

// UserService handles profile business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ChangePasswordInput represents change password input
type ChangePasswordInput struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Profile returns the user's own profile
func (s *UserService) Profile(ctx context.Context, userID uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// ChangePassword verifies the old password and stores a hash of the new one
func (s *UserService) ChangePassword(ctx context.Context, userID uint, input *ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !password.Verify(input.OldPassword, user.Password) {
		return ErrOldPasswordWrong
	}
	if !password.ValidatePassword(input.NewPassword) {
		return ErrWeakPassword
	}

	hashed, err := password.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hashed); err != nil {
		return err
	}

	logrus.WithField("user_id", userID).Info("password changed")
	return nil
}
