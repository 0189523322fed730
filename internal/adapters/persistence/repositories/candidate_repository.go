package repositories

import (
	"context"

	"evote-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// candidateRepository implements CandidateRepository interface
type candidateRepository struct {
	db *gorm.DB
}

// NewCandidateRepository creates a new candidate repository
func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

// Create creates a new candidate
func (r *candidateRepository) Create(ctx context.Context, candidate *models.Candidate) error {
	return r.db.WithContext(ctx).Create(candidate).Error
}

// GetByID gets a candidate by ID
func (r *candidateRepository) GetByID(ctx context.Context, id uint) (*models.Candidate, error) {
	var candidate models.Candidate
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&candidate).Error
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

// Update updates a candidate
func (r *candidateRepository) Update(ctx context.Context, candidate *models.Candidate) error {
	return r.db.WithContext(ctx).Save(candidate).Error
}

// Delete soft deletes a candidate
func (r *candidateRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Candidate{}, id).Error
}

// List lists candidates with pagination
func (r *candidateRepository) List(ctx context.Context, offset, limit int) ([]*models.Candidate, int64, error) {
	var candidates []*models.Candidate
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Candidate{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&candidates).Error; err != nil {
		return nil, 0, err
	}

	return candidates, total, nil
}

// ListByVoteCountDesc lists all candidates ordered by vote count descending.
// Ties keep the store's natural order.
func (r *candidateRepository) ListByVoteCountDesc(ctx context.Context) ([]*models.Candidate, error) {
	var candidates []*models.Candidate
	err := r.db.WithContext(ctx).Order("vote_count DESC").Find(&candidates).Error
	if err != nil {
		return nil, err
	}
	return candidates, nil
}
