package repositories

import (
	"context"

	"evote-backend/internal/adapters/persistence/models"
	"evote-backend/internal/core/domain"

	"gorm.io/gorm"
)

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID gets a user by ID
func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByAadhar gets a user by aadhaar card number
func (r *userRepository) GetByAadhar(ctx context.Context, aadhar string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("aadhar_card_number = ?", aadhar).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByAadhar checks if a user with the aadhaar card number exists
func (r *userRepository) ExistsByAadhar(ctx context.Context, aadhar string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("aadhar_card_number = ?", aadhar).Count(&count).Error
	return count > 0, err
}

// CountByRole counts users holding the given role
func (r *userRepository) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

// UpdatePassword updates a user's password hash
func (r *userRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("password", passwordHash).Error
}
