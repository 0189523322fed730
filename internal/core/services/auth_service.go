package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"evote-backend/internal/adapters/persistence/models"
	"evote-backend/internal/adapters/persistence/repositories"
	"evote-backend/internal/config"
	"evote-backend/internal/core/domain"
	"evote-backend/internal/pkg/jwt"
	"evote-backend/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Auth errors
var (
	ErrRoleRequired       = fmt.Errorf("%w: role is required", domain.ErrValidation)
	ErrInvalidRole        = fmt.Errorf("%w: role must be 'admin' or 'voter'", domain.ErrValidation)
	ErrAdminExists        = fmt.Errorf("%w: admin user already exists", domain.ErrConflict)
	ErrInvalidAadhar      = fmt.Errorf("%w: aadhaar card number must be exactly 12 digits", domain.ErrValidation)
	ErrAadharTaken        = fmt.Errorf("%w: user with this aadhaar card number already exists", domain.ErrConflict)
	ErrWeakPassword       = fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid aadhaar number or password", domain.ErrUnauthorized)
	ErrInvalidToken       = fmt.Errorf("%w: invalid refresh token", domain.ErrUnauthorized)
	ErrTokenExpired       = fmt.Errorf("%w: refresh token expired", domain.ErrUnauthorized)
	ErrTokenRevoked       = fmt.Errorf("%w: refresh token revoked", domain.ErrUnauthorized)
	ErrUserNotFound       = fmt.Errorf("%w: user not found", domain.ErrNotFound)
)

var aadharPattern = regexp.MustCompile(`^\d{12}$`)

// AuthService handles registration and authentication business logic
type AuthService struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	cfg              *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		cfg:              cfg,
	}
}

// SignupInput represents registration input
type SignupInput struct {
	Name             string      `json:"name"`
	Age              int         `json:"age"`
	Email            string      `json:"email"`
	Mobile           string      `json:"mobile"`
	Address          string      `json:"address"`
	AadharCardNumber string      `json:"aadhar_card_number"`
	Password         string      `json:"password"`
	Role             domain.Role `json:"role"`
}

// LoginInput represents login input
type LoginInput struct {
	AadharCardNumber string `json:"aadhar_card_number"`
	Password         string `json:"password"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User         *models.UserResponse `json:"user"`
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
}

// Signup registers a new user and issues a token pair bound to the new user's
// identifier. At most one admin may exist system-wide; the pre-check here gives
// a clean conflict error and the unique admin_guard column makes the invariant
// hold even under concurrent signups.
func (s *AuthService) Signup(ctx context.Context, input *SignupInput) (*AuthResponse, error) {
	// 1. Role must be present and a member of the enum
	if input.Role == "" {
		return nil, ErrRoleRequired
	}
	if !input.Role.Valid() {
		return nil, ErrInvalidRole
	}

	// 2. Only one admin may ever exist
	if input.Role.IsAdmin() {
		count, err := s.userRepo.CountByRole(ctx, domain.RoleAdmin)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrAdminExists
		}
	}

	// 3. Aadhaar card number must be exactly 12 digits
	if !aadharPattern.MatchString(input.AadharCardNumber) {
		return nil, ErrInvalidAadhar
	}

	// 4. Aadhaar card number must be unique
	exists, err := s.userRepo.ExistsByAadhar(ctx, input.AadharCardNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAadharTaken
	}

	// 5. Hash password
	if !password.ValidatePassword(input.Password) {
		return nil, ErrWeakPassword
	}
	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	// 6. Create user (is_voted always starts false)
	user := &models.User{
		Name:             input.Name,
		Age:              input.Age,
		Email:            input.Email,
		Mobile:           input.Mobile,
		Address:          input.Address,
		AadharCardNumber: input.AadharCardNumber,
		Password:         hashedPassword,
		Role:             input.Role,
		IsVoted:          false,
		AdminGuard:       models.GuardForRole(input.Role),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race on one of the unique indexes.
			if input.Role.IsAdmin() {
				return nil, ErrAdminExists
			}
			return nil, ErrAadharTaken
		}
		return nil, err
	}

	// 7. Issue tokens
	tokens, err := s.generateTokens(user)
	if err != nil {
		return nil, err
	}
	if err := s.storeRefreshToken(ctx, user.ID, tokens.RefreshToken); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("user registered")

	return &AuthResponse{
		User:         user.ToResponse(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Login authenticates a user by aadhaar card number and password
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	user, err := s.userRepo.GetByAadhar(ctx, input.AadharCardNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.generateTokens(user)
	if err != nil {
		return nil, err
	}
	if err := s.storeRefreshToken(ctx, user.ID, tokens.RefreshToken); err != nil {
		return nil, err
	}

	logrus.WithField("user_id", user.ID).Info("user logged in")

	return &AuthResponse{
		User:         user.ToResponse(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// RefreshToken rotates the refresh token and issues a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	// 1. Validate refresh token JWT
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	// 2. Find the stored token by hash
	tokenHash := password.HashToken(refreshToken)
	storedToken, err := s.refreshTokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	if storedToken.IsRevoked() {
		return nil, ErrTokenRevoked
	}
	if storedToken.IsExpired() {
		return nil, ErrTokenExpired
	}

	// 3. Load the user
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	// 4. Rotate: revoke old, issue new
	if err := s.refreshTokenRepo.Revoke(ctx, storedToken.ID); err != nil {
		return nil, err
	}

	tokens, err := s.generateTokens(user)
	if err != nil {
		return nil, err
	}
	if err := s.storeRefreshToken(ctx, user.ID, tokens.RefreshToken); err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:         user.ToResponse(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Logout revokes the refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	tokenHash := password.HashToken(refreshToken)
	return s.refreshTokenRepo.RevokeByTokenHash(ctx, tokenHash)
}

// LogoutAll revokes all refresh tokens for a user
func (s *AuthService) LogoutAll(ctx context.Context, userID uint) error {
	return s.refreshTokenRepo.RevokeAllByUserID(ctx, userID)
}

// generateTokens generates access and refresh tokens
func (s *AuthService) generateTokens(user *models.User) (*domain.TokenPair, error) {
	accessToken, err := jwt.GenerateAccessToken(
		user.ID,
		user.Role,
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	tokenID := uuid.New().String()

	refreshToken, err := jwt.GenerateRefreshToken(
		user.ID,
		tokenID,
		s.cfg.JWT.RefreshSecret,
		s.cfg.JWT.RefreshTokenDays,
	)
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// storeRefreshToken stores a hashed refresh token in the database
func (s *AuthService) storeRefreshToken(ctx context.Context, userID uint, refreshToken string) error {
	token := &models.RefreshToken{
		UserID:    userID,
		TokenHash: password.HashToken(refreshToken),
		ExpiresAt: jwt.GetExpiryTime(s.cfg.JWT.RefreshTokenDays),
	}
	return s.refreshTokenRepo.Create(ctx, token)
}
