package repositories

import (
	"context"

	"evote-backend/internal/adapters/persistence/models"
	"evote-backend/internal/core/domain"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByAadhar(ctx context.Context, aadhar string) (*models.User, error)
	ExistsByAadhar(ctx context.Context, aadhar string) (bool, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
}

// CandidateRepository defines candidate repository interface
type CandidateRepository interface {
	Create(ctx context.Context, candidate *models.Candidate) error
	GetByID(ctx context.Context, id uint) (*models.Candidate, error)
	Update(ctx context.Context, candidate *models.Candidate) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.Candidate, int64, error)
	ListByVoteCountDesc(ctx context.Context) ([]*models.Candidate, error)
}

// VoteRepository defines the vote recording interface. Record is the only write
// path for votes: it must atomically flip the user's is_voted flag (conditional
// check-and-set), bump the candidate's vote_count and append the vote row, all
// or nothing.
type VoteRepository interface {
	Record(ctx context.Context, userID, candidateID uint) error
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) (int64, error)
}
