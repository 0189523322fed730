package services

import (
	"context"
	"errors"

	"evote-backend/internal/adapters/persistence/repositories"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuthorizationService decides whether a user identifier carries the admin
// role. Lookup failures are logged and treated as non-admin (fail closed).
type AuthorizationService struct {
	userRepo repositories.UserRepository
}

// NewAuthorizationService creates a new authorization service
func NewAuthorizationService(userRepo repositories.UserRepository) *AuthorizationService {
	return &AuthorizationService{userRepo: userRepo}
}

// IsAdmin reports whether the user exists and holds the admin role. No side
// effects.
func (s *AuthorizationService) IsAdmin(ctx context.Context, userID uint) bool {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Warn("admin role check failed, treating as non-admin")
		}
		return false
	}
	return user.Role.IsAdmin()
}
