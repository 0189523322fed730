package repositories

import (
	"context"
	"errors"

	"evote-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// Vote repository errors
var (
	// ErrAlreadyVoted is returned when the conditional is_voted flip matched no
	// row, i.e. the user had already voted by the time the write ran.
	ErrAlreadyVoted = errors.New("user has already voted")
)

// voteRepository implements VoteRepository interface
type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new vote repository
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// Record casts a vote inside one transaction. The is_voted flip is a conditional
// update (WHERE is_voted = 0) and is the linearization point: users.is_voted is
// the source of truth for "did this user vote", so concurrent casts for the same
// user cannot both pass. The candidate counter is bumped with an atomic SQL
// expression rather than read-modify-write.
func (r *voteRepository) Record(ctx context.Context, userID, candidateID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ? AND is_voted = ?", userID, false).
			Update("is_voted", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyVoted
		}

		inc := tx.Model(&models.Candidate{}).
			Where("id = ?", candidateID).
			UpdateColumn("vote_count", gorm.Expr("vote_count + ?", 1))
		if inc.Error != nil {
			return inc.Error
		}
		if inc.RowsAffected == 0 {
			// Candidate vanished between the precondition check and the write.
			return gorm.ErrRecordNotFound
		}

		vote := models.Vote{
			CandidateID: candidateID,
			UserID:      userID,
		}
		return tx.Create(&vote).Error
	})
}
