package services

import (
	"context"
	"errors"
	"fmt"

	"evote-backend/internal/adapters/persistence/repositories"
	"evote-backend/internal/core/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Voting errors
var (
	ErrAdminCannotVote = fmt.Errorf("%w: admin is not allowed to vote", domain.ErrForbidden)
	ErrAlreadyVoted    = fmt.Errorf("%w: you have already voted", domain.ErrConflict)
)

// VotingService records votes. users.is_voted is the source of truth for
// whether a user has voted; the repository enforces it with an atomic
// check-and-set so retries and concurrent casts cannot double-count.
type VotingService struct {
	userRepo      repositories.UserRepository
	candidateRepo repositories.CandidateRepository
	voteRepo      repositories.VoteRepository
}

// NewVotingService creates a new voting service
func NewVotingService(
	userRepo repositories.UserRepository,
	candidateRepo repositories.CandidateRepository,
	voteRepo repositories.VoteRepository,
) *VotingService {
	return &VotingService{
		userRepo:      userRepo,
		candidateRepo: candidateRepo,
		voteRepo:      voteRepo,
	}
}

// CastVote validates eligibility and records one vote. Preconditions are
// checked in order and the first failure wins: candidate exists, user exists,
// user is not an admin, user has not voted yet.
func (s *VotingService) CastVote(ctx context.Context, userID, candidateID uint) error {
	// 1. Candidate must exist
	if _, err := s.candidateRepo.GetByID(ctx, candidateID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCandidateNotFound
		}
		return err
	}

	// 2. User must exist
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	// 3. Admins are not allowed to vote
	if user.Role.IsAdmin() {
		return ErrAdminCannotVote
	}

	// 4. One vote per user. This read is only a fast path; the authoritative
	// check is the conditional update inside Record.
	if user.IsVoted {
		return ErrAlreadyVoted
	}

	if err := s.voteRepo.Record(ctx, userID, candidateID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrAlreadyVoted):
			return ErrAlreadyVoted
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrCandidateNotFound
		default:
			return err
		}
	}

	logrus.WithFields(logrus.Fields{
		"user_id":      userID,
		"candidate_id": candidateID,
	}).Info("vote recorded")

	return nil
}
